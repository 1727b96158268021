package exchange

import (
	"fmt"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/utils"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// MailboxIdentityGeneratorLink emits mailbox identities gathered from the
// --mailbox flag and/or an input file, one string per downstream Process
// call.
type MailboxIdentityGeneratorLink struct {
	*chain.Base
}

func NewMailboxIdentityGeneratorLink(configs ...cfg.Config) chain.Link {
	l := &MailboxIdentityGeneratorLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *MailboxIdentityGeneratorLink) Params() []cfg.Param {
	return []cfg.Param{
		options.ExchangeMailbox(),
		options.InputFile(),
	}
}

func (l *MailboxIdentityGeneratorLink) Process(input any) error {
	identities, _ := cfg.As[[]string](l.Arg("mailbox"))

	if inputFile, err := cfg.As[string](l.Arg("input-file")); err == nil && inputFile != "" {
		fromFile, err := utils.ReadIdentityFile(inputFile)
		if err != nil {
			return err
		}
		identities = append(identities, fromFile...)
	}

	if len(identities) == 0 {
		return fmt.Errorf("no mailboxes given: use --mailbox or --input-file")
	}

	seen := make(map[string]bool, len(identities))
	for _, identity := range identities {
		if seen[identity] {
			continue
		}
		seen[identity] = true
		if err := l.Send(identity); err != nil {
			return err
		}
	}
	return nil
}

package exchange

import (
	"fmt"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// ExoConvertMailboxLink converts each mailbox identity flowing through it
// to a shared mailbox, or back to a regular one with --back. Failures are
// reported per mailbox and never stop the batch.
type ExoConvertMailboxLink struct {
	*chain.Base
	client *Client
}

func NewExoConvertMailboxLink(configs ...cfg.Config) chain.Link {
	l := &ExoConvertMailboxLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *ExoConvertMailboxLink) Params() []cfg.Param {
	return []cfg.Param{
		options.ExchangeConvertBack(),
		options.DryRun(),
	}
}

func (l *ExoConvertMailboxLink) Process(identity string) error {
	back, _ := cfg.As[bool](l.Arg("back"))
	dryRun, _ := cfg.As[bool](l.Arg("dry-run"))

	mailboxType := "Shared"
	if back {
		mailboxType = "Regular"
	}

	rec := types.ActionRecord{
		Target: identity,
		Action: fmt.Sprintf("convert-to-%s", mailboxType),
	}

	if dryRun {
		rec.Status = types.StatusDryRun
		rec.Detail = fmt.Sprintf("would set mailbox type to %s", mailboxType)
		return l.Send(rec)
	}

	if l.client == nil {
		client, err := NewClient(l.Context())
		if err != nil {
			return err
		}
		l.client = client
	}

	_, err := l.client.InvokeCmdlet(l.Context(), "Set-Mailbox", map[string]any{
		"Identity": identity,
		"Type":     mailboxType,
	})
	if err != nil {
		l.Logger.Warn("Failed to convert mailbox", "mailbox", identity, "error", err)
		rec.Status = types.StatusError
		rec.Detail = err.Error()
	} else {
		rec.Status = types.StatusOK
		rec.Detail = fmt.Sprintf("mailbox type set to %s", mailboxType)
	}

	return l.Send(rec)
}

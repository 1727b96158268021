package manage

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/exchange"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ExchangeSetAutoReply = chain.NewModule(
	cfg.NewMetadata(
		"Set Auto-Reply",
		"Enable, disable, or schedule automatic replies on the given mailboxes. Supports --dry-run.",
	).WithProperties(map[string]any{
		"id":          "set-autoreply",
		"platform":    "exchange",
		"opsec_level": "moderate",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/user-update-mailboxsettings",
		},
	}),
).WithLinks(
	exchange.NewMailboxIdentityGeneratorLink,
	exchange.NewSetAutoReplyLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "exo-set-autoreply.csv"),
).WithAutoRun()

func init() {
	registry.Register("exchange", "manage", "set-autoreply", *ExchangeSetAutoReply)
}

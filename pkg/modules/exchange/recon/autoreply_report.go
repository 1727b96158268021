package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/exchange"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ExchangeAutoReplyReport = chain.NewModule(
	cfg.NewMetadata(
		"Auto-Reply Report",
		"Report the automatic-replies state of the given mailboxes, including schedule windows and reply text.",
	).WithProperties(map[string]any{
		"id":          "autoreply-report",
		"platform":    "exchange",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/user-get-mailboxsettings",
		},
	}),
).WithLinks(
	exchange.NewMailboxIdentityGeneratorLink,
	exchange.NewAutoReplyReportLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "exo-autoreply.csv"),
).WithAutoRun()

func init() {
	registry.Register("exchange", "recon", "autoreply-report", *ExchangeAutoReplyReport)
}

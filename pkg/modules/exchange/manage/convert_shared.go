package manage

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/exchange"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ExchangeConvertShared = chain.NewModule(
	cfg.NewMetadata(
		"Convert To Shared",
		"Convert the given mailboxes to shared mailboxes, or back to regular with --back. Supports --dry-run; per-mailbox failures do not stop the batch.",
	).WithProperties(map[string]any{
		"id":          "convert-shared",
		"platform":    "exchange",
		"opsec_level": "moderate",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/powershell/module/exchange/set-mailbox",
		},
	}),
).WithLinks(
	exchange.NewMailboxIdentityGeneratorLink,
	exchange.NewExoConvertMailboxLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "exo-convert-shared.csv"),
).WithAutoRun()

func init() {
	registry.Register("exchange", "manage", "convert-shared", *ExchangeConvertShared)
}

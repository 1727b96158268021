package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/exchange"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ExchangeSharedMailboxes = chain.NewModule(
	cfg.NewMetadata(
		"Shared Mailboxes",
		"List shared mailboxes with size and item counts from mailbox statistics.",
	).WithProperties(map[string]any{
		"id":          "shared-mailboxes",
		"platform":    "exchange",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/powershell/module/exchange/get-mailbox",
			"https://learn.microsoft.com/en-us/powershell/module/exchange/get-mailboxstatistics",
		},
	}),
).WithLinks(
	exchange.NewExoSharedMailboxListLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "exo-shared-mailboxes.csv"),
	cfg.WithArg("xlsxoutfile", "exo-shared-mailboxes.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("exchange", "recon", "shared-mailboxes", *ExchangeSharedMailboxes)
}

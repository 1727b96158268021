package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/exchange"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ExchangeMailboxPermissions = chain.NewModule(
	cfg.NewMetadata(
		"Mailbox Permissions",
		"Audit the permission entries of the given mailboxes, one row per (mailbox, trustee, right). Self and system grants are dropped; --user narrows to one trustee.",
	).WithProperties(map[string]any{
		"id":          "mailbox-permissions",
		"platform":    "exchange",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/powershell/module/exchange/get-mailboxpermission",
		},
	}),
).WithLinks(
	exchange.NewMailboxIdentityGeneratorLink,
	exchange.NewExoMailboxResolveLink,
	exchange.NewExoMailboxPermissionLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "exo-mailbox-permissions.csv"),
	cfg.WithArg("xlsxoutfile", "exo-mailbox-permissions.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("exchange", "recon", "mailbox-permissions", *ExchangeMailboxPermissions)
}

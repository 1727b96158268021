package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/entra"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var EntraUsersList = chain.NewModule(
	cfg.NewMetadata(
		"List Users",
		"Enumerate tenant user accounts with sign-in state, optionally restricted to a UPN domain suffix or to disabled accounts only.",
	).WithProperties(map[string]any{
		"id":          "users-list",
		"platform":    "entra",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/user-list",
		},
	}),
).WithLinks(
	entra.NewEntraUserListLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "entra-users.csv"),
	cfg.WithArg("xlsxoutfile", "entra-users.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("entra", "recon", "users-list", *EntraUsersList)
}

package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/entra"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var EntraInactiveUsers = chain.NewModule(
	cfg.NewMetadata(
		"Inactive Users",
		"Report member accounts whose last sign-in is older than the stale window, including accounts that never signed in.",
	).WithProperties(map[string]any{
		"id":          "inactive-users",
		"platform":    "entra",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/resources/signinactivity",
		},
	}),
).WithLinks(
	entra.NewEntraInactiveUsersLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "entra-inactive-users.csv"),
	cfg.WithArg("xlsxoutfile", "entra-inactive-users.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("entra", "recon", "inactive-users", *EntraInactiveUsers)
}

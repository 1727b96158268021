package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/entra"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var EntraGuestReport = chain.NewModule(
	cfg.NewMetadata(
		"Guest Report",
		"Report guest accounts with invitation age and last sign-in, flagging guests that have been inactive past the stale window.",
	).WithProperties(map[string]any{
		"id":          "guest-report",
		"platform":    "entra",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/user-list",
			"https://learn.microsoft.com/en-us/graph/api/resources/signinactivity",
		},
	}),
).WithLinks(
	entra.NewEntraGuestCollectorLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "entra-guests.csv"),
	cfg.WithArg("xlsxoutfile", "entra-guests.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("entra", "recon", "guest-report", *EntraGuestReport)
}

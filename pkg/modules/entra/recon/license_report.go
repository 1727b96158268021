package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/entra"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var EntraLicenseReport = chain.NewModule(
	cfg.NewMetadata(
		"License Report",
		"Report the license SKUs assigned to each licensed user, one row per (user, SKU) pair.",
	).WithProperties(map[string]any{
		"id":          "license-report",
		"platform":    "entra",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/user-list-licensedetails",
		},
	}),
).WithLinks(
	entra.NewEntraLicenseCollectorLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "entra-licenses.csv"),
	cfg.WithArg("xlsxoutfile", "entra-licenses.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("entra", "recon", "license-report", *EntraLicenseReport)
}

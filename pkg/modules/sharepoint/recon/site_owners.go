package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/sharepoint"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var SharePointSiteOwners = chain.NewModule(
	cfg.NewMetadata(
		"Site Owners",
		"Report the owners of each site collection: site collection administrators plus members of the associated owners group.",
	).WithProperties(map[string]any{
		"id":          "site-owners",
		"platform":    "sharepoint",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/sharepoint/rest-user-group-endpoint",
		},
	}),
).WithLinks(
	sharepoint.NewSpoSiteGeneratorLink,
	sharepoint.NewSpoOwnerCollectorLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "spo-site-owners.csv"),
	cfg.WithArg("xlsxoutfile", "spo-site-owners.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("sharepoint", "recon", "site-owners", *SharePointSiteOwners)
}

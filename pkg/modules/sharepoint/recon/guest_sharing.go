package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/sharepoint"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var SharePointGuestSharing = chain.NewModule(
	cfg.NewMetadata(
		"Guest Sharing",
		"Report external principals granted access on each site collection, with the site groups that carry the grant.",
	).WithProperties(map[string]any{
		"id":          "guest-sharing",
		"platform":    "sharepoint",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/sharepoint/external-sharing-overview",
		},
	}),
).WithLinks(
	sharepoint.NewSpoSiteGeneratorLink,
	sharepoint.NewSpoGuestSharingLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "spo-guest-sharing.csv"),
	cfg.WithArg("xlsxoutfile", "spo-guest-sharing.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("sharepoint", "recon", "guest-sharing", *SharePointGuestSharing)
}

package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/ad"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ADEmptyGroups = chain.NewModule(
	cfg.NewMetadata(
		"Empty Groups",
		"Report groups beneath the search base that have no members.",
	).WithProperties(map[string]any{
		"id":          "empty-groups",
		"platform":    "ad",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/windows/win32/adschema/a-member",
		},
	}),
).WithLinks(
	ad.NewLdapEmptyGroupLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "ad-empty-groups.csv"),
).WithAutoRun()

func init() {
	registry.Register("ad", "recon", "empty-groups", *ADEmptyGroups)
}

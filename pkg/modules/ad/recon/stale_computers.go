package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/ad"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ADStaleComputers = chain.NewModule(
	cfg.NewMetadata(
		"Stale Computers",
		"Report computer objects that have not logged on within the stale window, including machines that never logged on.",
	).WithProperties(map[string]any{
		"id":          "stale-computers",
		"platform":    "ad",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/windows/win32/adschema/a-lastlogontimestamp",
		},
	}),
).WithLinks(
	ad.NewLdapStaleComputerLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "ad-stale-computers.csv"),
	cfg.WithArg("xlsxoutfile", "ad-stale-computers.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("ad", "recon", "stale-computers", *ADStaleComputers)
}

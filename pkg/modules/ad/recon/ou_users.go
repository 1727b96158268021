package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/ad"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ADOUUsers = chain.NewModule(
	cfg.NewMetadata(
		"OU Users",
		"Enumerate user accounts beneath an OU with paged LDAP searches, reporting enabled state, last logon, and password age.",
	).WithProperties(map[string]any{
		"id":          "ou-users",
		"platform":    "ad",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/windows/win32/adschema/a-lastlogontimestamp",
		},
	}),
).WithLinks(
	ad.NewLdapOUUserLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "ad-ou-users.csv"),
	cfg.WithArg("xlsxoutfile", "ad-ou-users.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("ad", "recon", "ou-users", *ADOUUsers)
}

package recon

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/entra"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var EntraGroupMembers = chain.NewModule(
	cfg.NewMetadata(
		"Group Members",
		"List the members of a group by display name or object ID, optionally expanding nested membership.",
	).WithProperties(map[string]any{
		"id":          "group-members",
		"platform":    "entra",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/group-list-members",
			"https://learn.microsoft.com/en-us/graph/api/group-list-transitivemembers",
		},
	}),
).WithLinks(
	entra.NewEntraGroupMemberLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "entra-group-members.csv"),
).WithAutoRun()

func init() {
	registry.Register("entra", "recon", "group-members", *EntraGroupMembers)
}

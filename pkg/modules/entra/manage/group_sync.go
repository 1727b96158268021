package manage

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/entra"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var EntraGroupSync = chain.NewModule(
	cfg.NewMetadata(
		"Group Sync",
		"Reconcile a group's membership against a desired UPN list, adding missing members and removing extras. Supports --dry-run.",
	).WithProperties(map[string]any{
		"id":          "group-sync",
		"platform":    "entra",
		"opsec_level": "moderate",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/graph/api/group-post-members",
			"https://learn.microsoft.com/en-us/graph/api/group-delete-members",
		},
	}),
).WithLinks(
	entra.NewEntraGroupSyncLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "entra-group-sync.csv"),
).WithAutoRun()

func init() {
	registry.Register("entra", "manage", "group-sync", *EntraGroupSync)
}

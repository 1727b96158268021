package manage

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/ad"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var ADGroupMembership = chain.NewModule(
	cfg.NewMetadata(
		"Group Membership",
		"Reconcile an AD group's member attribute against a desired account list. Supports --dry-run; per-entry failures do not stop the batch.",
	).WithProperties(map[string]any{
		"id":          "group-membership",
		"platform":    "ad",
		"opsec_level": "moderate",
		"authors":     []string{"Castellan Ops"},
		"references": []string{
			"https://learn.microsoft.com/en-us/windows/win32/adschema/a-member",
		},
	}),
).WithLinks(
	ad.NewLdapGroupSyncLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "ad-group-membership.csv"),
).WithAutoRun()

func init() {
	registry.Register("ad", "manage", "group-membership", *ADGroupMembership)
}

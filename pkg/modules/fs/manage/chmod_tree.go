package manage

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/fsacl"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var FsChmodTree = chain.NewModule(
	cfg.NewMetadata(
		"Chmod Tree",
		"Apply a permission mode or new owner to every matching entry beneath a root. Supports --dry-run; per-entry failures do not stop the walk.",
	).WithProperties(map[string]any{
		"id":          "chmod-tree",
		"platform":    "fs",
		"opsec_level": "moderate",
		"authors":     []string{"Castellan Ops"},
		"references":  []string{},
	}),
).WithLinks(
	fsacl.NewTreeChmodLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewTableConsoleOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "fs-chmod-tree.csv"),
).WithAutoRun()

func init() {
	registry.Register("fs", "manage", "chmod-tree", *FsChmodTree)
}

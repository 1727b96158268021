package audit

import (
	"github.com/castellanops/cumulus/internal/registry"
	"github.com/castellanops/cumulus/pkg/links/fsacl"
	"github.com/castellanops/cumulus/pkg/outputters"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

var FsAclReport = chain.NewModule(
	cfg.NewMetadata(
		"ACL Report",
		"Walk a directory tree and report owner, group, and mode of each entry. --identity narrows to one owner, --writable-by-others flags loose permissions.",
	).WithProperties(map[string]any{
		"id":          "acl-report",
		"platform":    "fs",
		"opsec_level": "stealth",
		"authors":     []string{"Castellan Ops"},
		"references":  []string{},
	}),
).WithLinks(
	fsacl.NewAclWalkLink,
).WithOutputters(
	outputters.NewTabularCSVOutputter,
	outputters.NewXLSXOutputter,
).WithConfigs(
	cfg.WithArg("csvoutfile", "fs-acl-report.csv"),
	cfg.WithArg("xlsxoutfile", "fs-acl-report.xlsx"),
).WithAutoRun()

func init() {
	registry.Register("fs", "audit", "acl-report", *FsAclReport)
}

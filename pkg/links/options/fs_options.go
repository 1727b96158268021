package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

func FsRoot() cfg.Param {
	return cfg.NewParam[string]("root", "directory tree to walk").
		WithShortcode("r").
		AsRequired()
}

func FsIdentity() cfg.Param {
	return cfg.NewParam[string]("identity", "only report entries owned by this user name or uid")
}

func FsWritableByOthers() cfg.Param {
	return cfg.NewParam[bool]("writable-by-others", "only report entries writable by group or world").
		WithDefault(false)
}

func FsMode() cfg.Param {
	return cfg.NewParam[string]("mode", "octal permission bits to apply, e.g. 0750")
}

func FsOwner() cfg.Param {
	return cfg.NewParam[string]("owner", "user name or uid to set as owner")
}

func FsDirsOnly() cfg.Param {
	return cfg.NewParam[bool]("dirs-only", "only apply to directories").
		WithDefault(false)
}

package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

func SpoSite() cfg.Param {
	return cfg.NewParam[[]string]("site", "site collection URLs; combine with --input-file for bulk runs").
		WithShortcode("s")
}

func SpoIncludeOneDrive() cfg.Param {
	return cfg.NewParam[bool]("include-onedrive", "include personal (OneDrive) site collections").
		WithDefault(false)
}

func SpoTemplate() cfg.Param {
	return cfg.NewParam[string]("template", "only report sites using this web template, e.g. STS, GROUP, SITEPAGEPUBLISHING")
}

func SpoAdminsOnly() cfg.Param {
	return cfg.NewParam[bool]("admins-only", "only report site collection administrators").
		WithDefault(false)
}

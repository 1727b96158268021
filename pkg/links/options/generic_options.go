package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

func OutputDir() cfg.Param {
	return cfg.NewParam[string]("output", "output directory for report files").
		WithShortcode("o").
		WithDefault("cumulus-output")
}

func DryRun() cfg.Param {
	return cfg.NewParam[bool]("dry-run", "print the planned changes without applying them").
		WithDefault(false)
}

func InputFile() cfg.Param {
	return cfg.NewParam[string]("input-file", "file with one identity per line").
		WithShortcode("f")
}

func StaleDays() cfg.Param {
	return cfg.NewParam[int]("days", "number of days of inactivity before an object counts as stale").
		WithShortcode("d").
		WithDefault(90)
}

func StaleFilterDays() cfg.Param {
	return cfg.NewParam[int]("stale-days", "only report objects inactive for at least this many days; 0 disables the filter").
		WithDefault(0)
}

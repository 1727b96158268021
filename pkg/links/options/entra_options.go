package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

func EntraDomain() cfg.Param {
	return cfg.NewParam[string]("domain", "restrict to accounts whose UPN ends with this domain suffix")
}

func EntraDisabledOnly() cfg.Param {
	return cfg.NewParam[bool]("disabled-only", "only include disabled accounts").
		WithDefault(false)
}

func EntraGroup() cfg.Param {
	return cfg.NewParam[string]("group", "group display name or object ID").
		WithShortcode("g").
		AsRequired()
}

func EntraTransitive() cfg.Param {
	return cfg.NewParam[bool]("transitive", "expand nested group membership").
		WithDefault(false)
}

func EntraMembersFile() cfg.Param {
	return cfg.NewParam[string]("members-file", "file with the desired member UPNs, one per line").
		WithShortcode("m").
		AsRequired()
}

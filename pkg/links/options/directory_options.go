package options

import (
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

func LdapURL() cfg.Param {
	return cfg.NewParam[string]("ldap-url", "directory server URL, e.g. ldaps://dc01.corp.example.com:636").
		AsRequired()
}

func LdapBindDN() cfg.Param {
	return cfg.NewParam[string]("bind-dn", "DN or UPN used to bind; password is read from CUMULUS_LDAP_PASSWORD").
		AsRequired()
}

func LdapBaseDN() cfg.Param {
	return cfg.NewParam[string]("base-dn", "search base, typically an OU DN").
		WithShortcode("b").
		AsRequired()
}

func LdapGroupDN() cfg.Param {
	return cfg.NewParam[string]("group-dn", "DN of the group to manage").
		WithShortcode("g").
		AsRequired()
}

func LdapMembersFile() cfg.Param {
	return cfg.NewParam[string]("members-file", "file with the desired member account names, one per line").
		WithShortcode("m").
		AsRequired()
}

func LdapDisabledOnly() cfg.Param {
	return cfg.NewParam[bool]("disabled-only", "only include disabled accounts").
		WithDefault(false)
}

func LdapPageSize() cfg.Param {
	return cfg.NewParam[int]("page-size", "LDAP paged search size").
		WithDefault(1000)
}

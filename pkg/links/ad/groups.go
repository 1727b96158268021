package ad

import (
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// LdapEmptyGroupLink reports groups that have no member attribute values.
type LdapEmptyGroupLink struct {
	*chain.Base
}

func NewLdapEmptyGroupLink(configs ...cfg.Config) chain.Link {
	l := &LdapEmptyGroupLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *LdapEmptyGroupLink) Params() []cfg.Param {
	return []cfg.Param{
		options.LdapURL(),
		options.LdapBindDN(),
		options.LdapBaseDN(),
		options.LdapPageSize(),
	}
}

func (l *LdapEmptyGroupLink) Process(input any) error {
	ldapURL, _ := cfg.As[string](l.Arg("ldap-url"))
	bindDN, _ := cfg.As[string](l.Arg("bind-dn"))
	baseDN, _ := cfg.As[string](l.Arg("base-dn"))
	pageSize, _ := cfg.As[int](l.Arg("page-size"))

	conn, err := Connect(ldapURL, bindDN)
	if err != nil {
		return err
	}
	defer conn.Close()

	attributes := []string{"distinguishedName", "name", "description", "member"}

	entries, err := search(conn, baseDN, "(objectClass=group)", attributes, pageSize)
	if err != nil {
		return err
	}

	empty := 0
	for _, entry := range entries {
		members := entry.GetAttributeValues("member")
		if len(members) > 0 {
			continue
		}
		empty++
		rec := types.LdapGroupRecord{
			DN:          entry.DN,
			Name:        entry.GetAttributeValue("name"),
			Description: entry.GetAttributeValue("description"),
			MemberCount: 0,
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	l.Logger.Info("Found empty groups", "base", baseDN, "count", empty)
	return nil
}

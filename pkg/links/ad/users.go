package ad

import (
	"time"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

const userFilter = "(&(objectCategory=person)(objectClass=user))"

// matches accounts with the ACCOUNTDISABLE bit set, server side
const disabledUserFilter = "(&(objectCategory=person)(objectClass=user)(userAccountControl:1.2.840.113556.1.4.803:=2))"

var userAttributes = []string{
	"distinguishedName",
	"sAMAccountName",
	"userPrincipalName",
	"displayName",
	"mail",
	"userAccountControl",
	"lastLogonTimestamp",
	"pwdLastSet",
}

// LdapOUUserLink enumerates user accounts beneath an OU with a paged
// subtree search.
type LdapOUUserLink struct {
	*chain.Base
}

func NewLdapOUUserLink(configs ...cfg.Config) chain.Link {
	l := &LdapOUUserLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *LdapOUUserLink) Params() []cfg.Param {
	return []cfg.Param{
		options.LdapURL(),
		options.LdapBindDN(),
		options.LdapBaseDN(),
		options.LdapDisabledOnly(),
		options.StaleFilterDays(),
		options.LdapPageSize(),
	}
}

func (l *LdapOUUserLink) Process(input any) error {
	ldapURL, _ := cfg.As[string](l.Arg("ldap-url"))
	bindDN, _ := cfg.As[string](l.Arg("bind-dn"))
	baseDN, _ := cfg.As[string](l.Arg("base-dn"))
	disabledOnly, _ := cfg.As[bool](l.Arg("disabled-only"))
	staleDays, _ := cfg.As[int](l.Arg("stale-days"))
	pageSize, _ := cfg.As[int](l.Arg("page-size"))

	conn, err := Connect(ldapURL, bindDN)
	if err != nil {
		return err
	}
	defer conn.Close()

	filter := userFilter
	if disabledOnly {
		filter = disabledUserFilter
	}

	entries, err := search(conn, baseDN, filter, userAttributes, pageSize)
	if err != nil {
		return err
	}

	now := time.Now()
	sent := 0
	for _, entry := range entries {
		rec := types.LdapUserRecord{
			DN:                entry.DN,
			SAMAccountName:    entry.GetAttributeValue("sAMAccountName"),
			UserPrincipalName: entry.GetAttributeValue("userPrincipalName"),
			DisplayName:       entry.GetAttributeValue("displayName"),
			Mail:              entry.GetAttributeValue("mail"),
			Enabled:           !IsAccountDisabled(entry.GetAttributeValue("userAccountControl")),
			LastLogon:         FiletimeToTime(entry.GetAttributeValue("lastLogonTimestamp")),
			PasswordLastSet:   FiletimeToTime(entry.GetAttributeValue("pwdLastSet")),
		}
		if staleDays > 0 && !IsStale(rec.LastLogon, staleDays, now) {
			continue
		}
		sent++
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	l.Logger.Info("Enumerated OU users", "base", baseDN, "matched", sent)
	return nil
}

// LdapStaleComputerLink reports computer objects that have not logged on
// within the stale window.
type LdapStaleComputerLink struct {
	*chain.Base
}

func NewLdapStaleComputerLink(configs ...cfg.Config) chain.Link {
	l := &LdapStaleComputerLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *LdapStaleComputerLink) Params() []cfg.Param {
	return []cfg.Param{
		options.LdapURL(),
		options.LdapBindDN(),
		options.LdapBaseDN(),
		options.StaleDays(),
		options.LdapPageSize(),
	}
}

func (l *LdapStaleComputerLink) Process(input any) error {
	ldapURL, _ := cfg.As[string](l.Arg("ldap-url"))
	bindDN, _ := cfg.As[string](l.Arg("bind-dn"))
	baseDN, _ := cfg.As[string](l.Arg("base-dn"))
	days, _ := cfg.As[int](l.Arg("days"))
	pageSize, _ := cfg.As[int](l.Arg("page-size"))

	conn, err := Connect(ldapURL, bindDN)
	if err != nil {
		return err
	}
	defer conn.Close()

	attributes := []string{
		"distinguishedName",
		"name",
		"dNSHostName",
		"operatingSystem",
		"userAccountControl",
		"lastLogonTimestamp",
	}

	entries, err := search(conn, baseDN, "(objectClass=computer)", attributes, pageSize)
	if err != nil {
		return err
	}

	now := time.Now()
	stale := 0
	for _, entry := range entries {
		lastLogon := FiletimeToTime(entry.GetAttributeValue("lastLogonTimestamp"))
		if !IsStale(lastLogon, days, now) {
			continue
		}
		stale++
		rec := types.LdapComputerRecord{
			DN:              entry.DN,
			Name:            entry.GetAttributeValue("name"),
			DNSHostName:     entry.GetAttributeValue("dNSHostName"),
			OperatingSystem: entry.GetAttributeValue("operatingSystem"),
			Enabled:         !IsAccountDisabled(entry.GetAttributeValue("userAccountControl")),
			LastLogon:       lastLogon,
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	l.Logger.Info("Found stale computers", "base", baseDN, "days", days, "count", stale)
	return nil
}

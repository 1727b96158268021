package ad

import (
	"fmt"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/castellanops/cumulus/pkg/utils"
	"github.com/go-ldap/ldap/v3"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// LdapGroupSyncLink reconciles a group's member attribute against a
// desired account list. Each add and remove is its own modify request,
// so one failure does not stop the rest of the batch.
type LdapGroupSyncLink struct {
	*chain.Base
}

func NewLdapGroupSyncLink(configs ...cfg.Config) chain.Link {
	l := &LdapGroupSyncLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *LdapGroupSyncLink) Params() []cfg.Param {
	return []cfg.Param{
		options.LdapURL(),
		options.LdapBindDN(),
		options.LdapBaseDN(),
		options.LdapGroupDN(),
		options.LdapMembersFile(),
		options.LdapPageSize(),
		options.DryRun(),
	}
}

func (l *LdapGroupSyncLink) Process(input any) error {
	ldapURL, _ := cfg.As[string](l.Arg("ldap-url"))
	bindDN, _ := cfg.As[string](l.Arg("bind-dn"))
	baseDN, _ := cfg.As[string](l.Arg("base-dn"))
	groupDN, _ := cfg.As[string](l.Arg("group-dn"))
	membersFile, _ := cfg.As[string](l.Arg("members-file"))
	pageSize, _ := cfg.As[int](l.Arg("page-size"))
	dryRun, _ := cfg.As[bool](l.Arg("dry-run"))

	names, err := utils.ReadIdentityFile(membersFile)
	if err != nil {
		return fmt.Errorf("failed to read member list: %w", err)
	}

	conn, err := Connect(ldapURL, bindDN)
	if err != nil {
		return err
	}
	defer conn.Close()

	current, err := groupMembers(conn, groupDN)
	if err != nil {
		return err
	}

	desired := make([]string, 0, len(names))
	unresolved := 0
	for _, name := range names {
		dn, err := resolveAccountDN(conn, baseDN, name, pageSize)
		if err != nil {
			l.Logger.Warn("Failed to resolve account", "account", name, "error", err)
			unresolved++
			rec := types.ActionRecord{Target: name, Action: "resolve", Status: types.StatusError, Detail: err.Error()}
			if err := l.Send(rec); err != nil {
				return err
			}
			continue
		}
		desired = append(desired, dn)
	}

	toAdd, toRemove, suppressed := PlanSync(current, desired, unresolved)
	if len(toAdd) == 0 && len(toRemove) == 0 && len(suppressed) == 0 {
		l.Logger.Info("Group already in sync", "group", groupDN)
		return nil
	}

	for _, dn := range toAdd {
		if err := l.apply(conn, groupDN, dn, "add", dryRun); err != nil {
			return err
		}
	}
	for _, dn := range toRemove {
		if err := l.apply(conn, groupDN, dn, "remove", dryRun); err != nil {
			return err
		}
	}
	for _, dn := range suppressed {
		rec := types.ActionRecord{
			Target: dn,
			Action: "remove",
			Status: types.StatusSkipped,
			Detail: fmt.Sprintf("removal suppressed: %d desired accounts failed to resolve", unresolved),
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	return nil
}

// PlanSync computes the membership changes needed to move current to
// desired. When any desired account failed to resolve, the removal leg is
// suppressed entirely: an unresolved name would otherwise be missing from
// desired and its member deleted, turning a lookup failure into a
// destructive change.
func PlanSync(current, desired []string, unresolved int) (toAdd, toRemove, suppressed []string) {
	toAdd, toRemove = helpers.DiffFold(current, desired)
	if unresolved > 0 {
		return toAdd, nil, toRemove
	}
	return toAdd, toRemove, nil
}

func (l *LdapGroupSyncLink) apply(conn *ldap.Conn, groupDN, memberDN, action string, dryRun bool) error {
	rec := types.ActionRecord{Target: memberDN, Action: action}

	if dryRun {
		rec.Status = types.StatusDryRun
		rec.Detail = fmt.Sprintf("would %s member on %s", action, groupDN)
		return l.Send(rec)
	}

	req := ldap.NewModifyRequest(groupDN, nil)
	if action == "add" {
		req.Add("member", []string{memberDN})
	} else {
		req.Delete("member", []string{memberDN})
	}

	if err := conn.Modify(req); err != nil {
		l.Logger.Warn("Modify failed", "group", groupDN, "member", memberDN, "action", action, "error", err)
		rec.Status = types.StatusError
		rec.Detail = err.Error()
	} else {
		rec.Status = types.StatusOK
		rec.Detail = groupDN
	}

	return l.Send(rec)
}

func groupMembers(conn *ldap.Conn, groupDN string) ([]string, error) {
	req := ldap.NewSearchRequest(
		groupDN,
		ldap.ScopeBaseObject,
		ldap.NeverDerefAliases,
		0, 0, false,
		"(objectClass=group)",
		[]string{"member"},
		nil,
	)

	res, err := conn.Search(req)
	if err != nil {
		return nil, fmt.Errorf("failed to read group %s: %w", groupDN, err)
	}
	if len(res.Entries) == 0 {
		return nil, fmt.Errorf("group %s not found", groupDN)
	}

	return res.Entries[0].GetAttributeValues("member"), nil
}

func resolveAccountDN(conn *ldap.Conn, baseDN, name string, pageSize int) (string, error) {
	escaped := ldap.EscapeFilter(name)
	filter := fmt.Sprintf("(&(objectClass=user)(|(sAMAccountName=%s)(userPrincipalName=%s)))", escaped, escaped)

	entries, err := search(conn, baseDN, filter, []string{"distinguishedName"}, pageSize)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("no account matches %q under %s", name, baseDN)
	}
	if len(entries) > 1 {
		return "", fmt.Errorf("%d accounts match %q under %s", len(entries), name, baseDN)
	}

	return entries[0].DN, nil
}

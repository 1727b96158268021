package exchange

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

type exoPermission struct {
	User         string   `json:"User"`
	AccessRights []string `json:"AccessRights"`
	IsInherited  bool     `json:"IsInherited"`
	Deny         bool     `json:"Deny"`
}

type exoRecipientPermission struct {
	Trustee      string   `json:"Trustee"`
	AccessRights []string `json:"AccessRights"`
	IsInherited  bool     `json:"IsInherited"`
}

// ExoMailboxPermissionLink audits the permission entries of each mailbox
// flowing through it. Self-grants are dropped, inherited entries are
// dropped unless requested, and a failed lookup becomes an Error status
// row so the remaining mailboxes still get audited.
type ExoMailboxPermissionLink struct {
	*chain.Base
	client *Client
}

func NewExoMailboxPermissionLink(configs ...cfg.Config) chain.Link {
	l := &ExoMailboxPermissionLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *ExoMailboxPermissionLink) Params() []cfg.Param {
	return []cfg.Param{
		options.ExchangeTrustee(),
		options.ExchangeIncludeInherited(),
	}
}

func (l *ExoMailboxPermissionLink) Process(mbx types.MailboxRecord) error {
	trustee, _ := cfg.As[string](l.Arg("user"))
	includeInherited, _ := cfg.As[bool](l.Arg("include-inherited"))

	if l.client == nil {
		client, err := NewClient(l.Context())
		if err != nil {
			return err
		}
		l.client = client
	}

	raw, err := l.client.GetAll(l.Context(), fmt.Sprintf("/Mailbox('%s')/MailboxPermission", mbx.PrimarySmtpAddress), nil)
	if err != nil {
		l.Logger.Warn("Failed to get mailbox permissions", "mailbox", mbx.PrimarySmtpAddress, "error", err)
		return l.Send(types.MailboxPermissionRecord{
			Mailbox:     mbx.DisplayName,
			SmtpAddress: mbx.PrimarySmtpAddress,
			Status:      types.StatusError,
		})
	}

	for _, item := range raw {
		var perm exoPermission
		if err := json.Unmarshal(item, &perm); err != nil {
			continue
		}
		if err := l.sendRights(mbx, perm.User, perm.AccessRights, perm.IsInherited, trustee, includeInherited); err != nil {
			return err
		}
	}

	return l.auditSendAs(mbx, trustee, includeInherited)
}

// auditSendAs adds SendAs grants, which live on the recipient rather than
// the mailbox permission set.
func (l *ExoMailboxPermissionLink) auditSendAs(mbx types.MailboxRecord, trustee string, includeInherited bool) error {
	raw, err := l.client.InvokeCmdlet(l.Context(), "Get-RecipientPermission", map[string]any{
		"Identity": mbx.PrimarySmtpAddress,
	})
	if err != nil {
		l.Logger.Warn("Failed to get recipient permissions", "mailbox", mbx.PrimarySmtpAddress, "error", err)
		return nil
	}

	for _, item := range raw {
		var perm exoRecipientPermission
		if err := json.Unmarshal(item, &perm); err != nil {
			continue
		}
		if err := l.sendRights(mbx, perm.Trustee, perm.AccessRights, perm.IsInherited, trustee, includeInherited); err != nil {
			return err
		}
	}
	return nil
}

func (l *ExoMailboxPermissionLink) sendRights(mbx types.MailboxRecord, user string, rights []string, inherited bool, trustee string, includeInherited bool) error {
	for _, right := range rights {
		if !KeepPermission(user, right, inherited, trustee, includeInherited) {
			continue
		}
		rec := types.MailboxPermissionRecord{
			Mailbox:     mbx.DisplayName,
			SmtpAddress: mbx.PrimarySmtpAddress,
			Trustee:     user,
			AccessRight: right,
			Inherited:   inherited,
			Status:      types.StatusOK,
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}
	return nil
}

// KeepPermission decides whether a permission entry belongs in the audit
// report. System self-grants are always excluded.
func KeepPermission(user, right string, inherited bool, trustee string, includeInherited bool) bool {
	if isSystemTrustee(user) {
		return false
	}
	if inherited && !includeInherited {
		return false
	}
	if trustee != "" && !strings.EqualFold(user, trustee) {
		return false
	}
	return right != ""
}

func isSystemTrustee(user string) bool {
	upper := strings.ToUpper(user)
	return strings.HasPrefix(upper, "NT AUTHORITY\\") || strings.HasPrefix(upper, "S-1-5-")
}

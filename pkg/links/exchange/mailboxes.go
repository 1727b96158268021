package exchange

import (
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// exoMailbox mirrors the fields of the admin API Mailbox entity we
// report on.
type exoMailbox struct {
	Identity             string `json:"Identity"`
	Guid                 string `json:"Guid"`
	DisplayName          string `json:"DisplayName"`
	PrimarySmtpAddress   string `json:"PrimarySmtpAddress"`
	UserPrincipalName    string `json:"UserPrincipalName"`
	RecipientTypeDetails string `json:"RecipientTypeDetails"`
}

type exoMailboxStatistics struct {
	ItemCount            int64  `json:"ItemCount"`
	TotalItemSizeInBytes int64  `json:"TotalItemSizeInBytes"`
	LastLogonTime        string `json:"LastLogonTime"`
}

func (s exoMailboxStatistics) lastLogon() time.Time {
	if s.LastLogonTime == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s.LastLogonTime)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ExoSharedMailboxListLink lists shared mailboxes and enriches each with
// folder statistics. A failed statistics lookup degrades that row, not
// the run.
type ExoSharedMailboxListLink struct {
	*chain.Base
	client *Client
}

func NewExoSharedMailboxListLink(configs ...cfg.Config) chain.Link {
	l := &ExoSharedMailboxListLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *ExoSharedMailboxListLink) Params() []cfg.Param {
	return []cfg.Param{}
}

func (l *ExoSharedMailboxListLink) Process(input any) error {
	if l.client == nil {
		client, err := NewClient(l.Context())
		if err != nil {
			return err
		}
		l.client = client
	}

	query := url.Values{}
	query.Set("$filter", "RecipientTypeDetails eq 'SharedMailbox'")

	raw, err := l.client.GetAll(l.Context(), "/Mailbox", query)
	if err != nil {
		return fmt.Errorf("failed to list shared mailboxes: %w", err)
	}

	for _, item := range raw {
		var mbx exoMailbox
		if err := json.Unmarshal(item, &mbx); err != nil {
			l.Logger.Warn("Skipping undecodable mailbox entry", "error", err)
			continue
		}

		rec := types.MailboxRecord{
			Identity:             mbx.Identity,
			DisplayName:          mbx.DisplayName,
			PrimarySmtpAddress:   mbx.PrimarySmtpAddress,
			UserPrincipalName:    mbx.UserPrincipalName,
			RecipientTypeDetails: mbx.RecipientTypeDetails,
		}

		if stats, err := l.mailboxStatistics(mbx.PrimarySmtpAddress); err != nil {
			l.Logger.Warn("Failed to get mailbox statistics", "mailbox", mbx.PrimarySmtpAddress, "error", err)
		} else {
			rec.ItemCount = stats.ItemCount
			rec.TotalItemSizeBytes = stats.TotalItemSizeInBytes
			rec.LastLogonTime = stats.lastLogon()
		}

		if err := l.Send(rec); err != nil {
			return err
		}
	}

	l.Logger.Info("Listed shared mailboxes", "count", len(raw))
	return nil
}

// ExoMailboxResolveLink turns mailbox identities into MailboxRecords so
// the permission audit can run over an arbitrary mailbox list.
type ExoMailboxResolveLink struct {
	*chain.Base
	client *Client
}

func NewExoMailboxResolveLink(configs ...cfg.Config) chain.Link {
	l := &ExoMailboxResolveLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *ExoMailboxResolveLink) Params() []cfg.Param {
	return []cfg.Param{}
}

func (l *ExoMailboxResolveLink) Process(identity string) error {
	if l.client == nil {
		client, err := NewClient(l.Context())
		if err != nil {
			return err
		}
		l.client = client
	}

	escaped := helpers.EscapeODataString(identity)
	query := url.Values{}
	query.Set("$filter", fmt.Sprintf("PrimarySmtpAddress eq '%s' or UserPrincipalName eq '%s'", escaped, escaped))

	raw, err := l.client.GetAll(l.Context(), "/Mailbox", query)
	if err != nil {
		l.Logger.Warn("Failed to resolve mailbox", "mailbox", identity, "error", err)
		return l.Send(types.MailboxRecord{Identity: identity, PrimarySmtpAddress: identity})
	}
	if len(raw) == 0 {
		l.Logger.Warn("Mailbox not found", "mailbox", identity)
		return nil
	}

	var mbx exoMailbox
	if err := json.Unmarshal(raw[0], &mbx); err != nil {
		return fmt.Errorf("failed to decode mailbox %s: %w", identity, err)
	}

	return l.Send(types.MailboxRecord{
		Identity:             mbx.Identity,
		DisplayName:          mbx.DisplayName,
		PrimarySmtpAddress:   mbx.PrimarySmtpAddress,
		UserPrincipalName:    mbx.UserPrincipalName,
		RecipientTypeDetails: mbx.RecipientTypeDetails,
	})
}

func (l *ExoSharedMailboxListLink) mailboxStatistics(identity string) (*exoMailboxStatistics, error) {
	raw, err := l.client.InvokeCmdlet(l.Context(), "Get-MailboxStatistics", map[string]any{
		"Identity": identity,
	})
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no statistics returned for %s", identity)
	}

	var stats exoMailboxStatistics
	if err := json.Unmarshal(raw[0], &stats); err != nil {
		return nil, fmt.Errorf("failed to decode statistics: %w", err)
	}
	return &stats, nil
}

package types

import "time"

// MailboxRecord is one mailbox as returned by the Exchange admin API.
type MailboxRecord struct {
	Identity             string `json:"Identity"`
	DisplayName          string `json:"DisplayName"`
	PrimarySmtpAddress   string `json:"PrimarySmtpAddress"`
	UserPrincipalName    string `json:"UserPrincipalName"`
	RecipientTypeDetails string `json:"RecipientTypeDetails"`
	TotalItemSizeBytes   int64  `json:"TotalItemSizeBytes"`
	ItemCount            int64  `json:"ItemCount"`
	LastLogonTime        time.Time
}

func (r MailboxRecord) Headers() []string {
	return []string{"DisplayName", "PrimarySmtpAddress", "UserPrincipalName", "RecipientTypeDetails", "TotalItemSizeBytes", "ItemCount", "LastLogonTime"}
}

func (r MailboxRecord) Values() []string {
	return []string{r.DisplayName, r.PrimarySmtpAddress, r.UserPrincipalName, r.RecipientTypeDetails, int64String(r.TotalItemSizeBytes), int64String(r.ItemCount), timeString(r.LastLogonTime)}
}

// MailboxPermissionRecord is one (mailbox, trustee, right) grant.
type MailboxPermissionRecord struct {
	Mailbox     string
	SmtpAddress string
	Trustee     string
	AccessRight string
	Inherited   bool
	Status      string
}

func (r MailboxPermissionRecord) Headers() []string {
	return []string{"Mailbox", "SmtpAddress", "Trustee", "AccessRight", "Inherited", "Status"}
}

func (r MailboxPermissionRecord) Values() []string {
	return []string{r.Mailbox, r.SmtpAddress, r.Trustee, r.AccessRight, boolString(r.Inherited), r.Status}
}

// AutoReplyRecord is one mailbox's automatic-replies configuration.
type AutoReplyRecord struct {
	Mailbox         string
	State           string
	ScheduledStart  time.Time
	ScheduledEnd    time.Time
	InternalMessage string
	ExternalMessage string
	Status          string
}

func (r AutoReplyRecord) Headers() []string {
	return []string{"Mailbox", "State", "ScheduledStart", "ScheduledEnd", "InternalMessage", "ExternalMessage", "Status"}
}

func (r AutoReplyRecord) Values() []string {
	return []string{r.Mailbox, r.State, timeString(r.ScheduledStart), timeString(r.ScheduledEnd), r.InternalMessage, r.ExternalMessage, r.Status}
}

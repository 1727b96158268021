package types

import "time"

// LdapUserRecord is one on-prem directory user.
type LdapUserRecord struct {
	DN                string
	SAMAccountName    string
	UserPrincipalName string
	DisplayName       string
	Mail              string
	Enabled           bool
	LastLogon         time.Time
	PasswordLastSet   time.Time
}

func (r LdapUserRecord) Headers() []string {
	return []string{"DN", "SAMAccountName", "UserPrincipalName", "DisplayName", "Mail", "Enabled", "LastLogon", "PasswordLastSet"}
}

func (r LdapUserRecord) Values() []string {
	return []string{r.DN, r.SAMAccountName, r.UserPrincipalName, r.DisplayName, r.Mail, boolString(r.Enabled), timeString(r.LastLogon), timeString(r.PasswordLastSet)}
}

// LdapComputerRecord is one computer object.
type LdapComputerRecord struct {
	DN              string
	Name            string
	DNSHostName     string
	OperatingSystem string
	Enabled         bool
	LastLogon       time.Time
}

func (r LdapComputerRecord) Headers() []string {
	return []string{"DN", "Name", "DNSHostName", "OperatingSystem", "Enabled", "LastLogon"}
}

func (r LdapComputerRecord) Values() []string {
	return []string{r.DN, r.Name, r.DNSHostName, r.OperatingSystem, boolString(r.Enabled), timeString(r.LastLogon)}
}

// LdapGroupRecord is one group object, used by the empty-groups report.
type LdapGroupRecord struct {
	DN          string
	Name        string
	Description string
	MemberCount int
}

func (r LdapGroupRecord) Headers() []string {
	return []string{"DN", "Name", "Description", "MemberCount"}
}

func (r LdapGroupRecord) Values() []string {
	return []string{r.DN, r.Name, r.Description, intString(r.MemberCount)}
}

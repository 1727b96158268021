package types

import "time"

// UserRecord is one directory user, flattened for reporting.
type UserRecord struct {
	ID                string
	UserPrincipalName string
	DisplayName       string
	Mail              string
	Department        string
	JobTitle          string
	AccountEnabled    bool
	UserType          string
}

func (r UserRecord) Headers() []string {
	return []string{"UserPrincipalName", "DisplayName", "Mail", "Department", "JobTitle", "AccountEnabled", "UserType"}
}

func (r UserRecord) Values() []string {
	return []string{r.UserPrincipalName, r.DisplayName, r.Mail, r.Department, r.JobTitle, boolString(r.AccountEnabled), r.UserType}
}

// GuestRecord is one guest identity with its invitation and activity state.
type GuestRecord struct {
	ID                string
	UserPrincipalName string
	DisplayName       string
	Mail              string
	AccountEnabled    bool
	CreatedDateTime   time.Time
	LastSignIn        time.Time
}

func (r GuestRecord) Headers() []string {
	return []string{"UserPrincipalName", "DisplayName", "Mail", "AccountEnabled", "Created", "LastSignIn"}
}

func (r GuestRecord) Values() []string {
	return []string{r.UserPrincipalName, r.DisplayName, r.Mail, boolString(r.AccountEnabled), timeString(r.CreatedDateTime), timeString(r.LastSignIn)}
}

// InactiveUserRecord is a user whose last interactive sign-in is older
// than the configured cutoff.
type InactiveUserRecord struct {
	UserPrincipalName string
	DisplayName       string
	AccountEnabled    bool
	LastSignIn        time.Time
	DaysInactive      int
}

func (r InactiveUserRecord) Headers() []string {
	return []string{"UserPrincipalName", "DisplayName", "AccountEnabled", "LastSignIn", "DaysInactive"}
}

func (r InactiveUserRecord) Values() []string {
	return []string{r.UserPrincipalName, r.DisplayName, boolString(r.AccountEnabled), timeString(r.LastSignIn), intString(r.DaysInactive)}
}

// LicenseRecord is one assigned SKU for one user.
type LicenseRecord struct {
	UserPrincipalName string
	DisplayName       string
	SkuID             string
	SkuPartNumber     string
}

func (r LicenseRecord) Headers() []string {
	return []string{"UserPrincipalName", "DisplayName", "SkuId", "SkuPartNumber"}
}

func (r LicenseRecord) Values() []string {
	return []string{r.UserPrincipalName, r.DisplayName, r.SkuID, r.SkuPartNumber}
}

// GroupMemberRecord is one membership edge of a group.
type GroupMemberRecord struct {
	GroupName         string
	GroupID           string
	MemberID          string
	UserPrincipalName string
	DisplayName       string
	MemberType        string
}

func (r GroupMemberRecord) Headers() []string {
	return []string{"Group", "UserPrincipalName", "DisplayName", "MemberType"}
}

func (r GroupMemberRecord) Values() []string {
	return []string{r.GroupName, r.UserPrincipalName, r.DisplayName, r.MemberType}
}

package types

// SiteOwnerRecord is one (site, owner) pair.
type SiteOwnerRecord struct {
	SiteURL     string
	SiteTitle   string
	LoginName   string
	DisplayName string
	Email       string
	IsSiteAdmin bool
}

func (r SiteOwnerRecord) Headers() []string {
	return []string{"SiteUrl", "SiteTitle", "LoginName", "DisplayName", "Email", "IsSiteAdmin"}
}

func (r SiteOwnerRecord) Values() []string {
	return []string{r.SiteURL, r.SiteTitle, r.LoginName, r.DisplayName, r.Email, boolString(r.IsSiteAdmin)}
}

// SharingRecord is one external principal with access to a site.
type SharingRecord struct {
	SiteURL     string
	LoginName   string
	DisplayName string
	Email       string
	IsSiteAdmin bool
	Groups      string
}

func (r SharingRecord) Headers() []string {
	return []string{"SiteUrl", "LoginName", "DisplayName", "Email", "IsSiteAdmin", "Groups"}
}

func (r SharingRecord) Values() []string {
	return []string{r.SiteURL, r.LoginName, r.DisplayName, r.Email, boolString(r.IsSiteAdmin), r.Groups}
}

package sharepoint

import (
	"strings"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// SpoOwnerCollectorLink reports who owns each site collection flowing
// through it: site collection administrators plus members of the
// associated owners group.
type SpoOwnerCollectorLink struct {
	*chain.Base
}

func NewSpoOwnerCollectorLink(configs ...cfg.Config) chain.Link {
	l := &SpoOwnerCollectorLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *SpoOwnerCollectorLink) Params() []cfg.Param {
	return []cfg.Param{
		options.SpoAdminsOnly(),
		options.SpoTemplate(),
	}
}

func (l *SpoOwnerCollectorLink) Process(siteURL string) error {
	adminsOnly, _ := cfg.As[bool](l.Arg("admins-only"))
	template, _ := cfg.As[string](l.Arg("template"))

	sp, err := NewSP(siteURL)
	if err != nil {
		return err
	}

	web, err := getWeb(sp)
	if err != nil {
		l.Logger.Warn("Failed to read site", "site", siteURL, "error", err)
		return nil
	}
	if !MatchesTemplate(web.Template, template) {
		l.Logger.Debug("Skipping site with non-matching template", "site", siteURL, "template", web.Template)
		return nil
	}

	users, err := getSiteUsers(sp)
	if err != nil {
		l.Logger.Warn("Failed to enumerate site users", "site", siteURL, "error", err)
		return nil
	}

	for _, user := range users {
		if !IsOwner(user.IsSiteAdmin, user.groupTitles()) {
			continue
		}
		if adminsOnly && !user.IsSiteAdmin {
			continue
		}
		rec := types.SiteOwnerRecord{
			SiteURL:     web.URL,
			SiteTitle:   web.Title,
			LoginName:   user.LoginName,
			DisplayName: user.Title,
			Email:       user.Email,
			IsSiteAdmin: user.IsSiteAdmin,
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	return nil
}

// MatchesTemplate reports whether a web's template passes the optional
// template filter. An empty filter matches everything.
func MatchesTemplate(webTemplate, want string) bool {
	if want == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(webTemplate), strings.TrimSpace(want))
}

// IsOwner reports whether a site user counts as an owner. Site collection
// administrators always do; otherwise membership in the associated owners
// group (the "<site> Owners" group SharePoint provisions) qualifies.
func IsOwner(isSiteAdmin bool, groups []string) bool {
	if isSiteAdmin {
		return true
	}
	for _, g := range groups {
		if strings.HasSuffix(strings.ToLower(strings.TrimSpace(g)), " owners") {
			return true
		}
	}
	return false
}

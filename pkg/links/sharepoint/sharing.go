package sharepoint

import (
	"strings"

	"github.com/castellanops/cumulus/pkg/types"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// SpoGuestSharingLink reports the external (guest) principals that have
// been granted access on each site collection flowing through it.
type SpoGuestSharingLink struct {
	*chain.Base
}

func NewSpoGuestSharingLink(configs ...cfg.Config) chain.Link {
	l := &SpoGuestSharingLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *SpoGuestSharingLink) Params() []cfg.Param {
	return []cfg.Param{}
}

func (l *SpoGuestSharingLink) Process(siteURL string) error {
	sp, err := NewSP(siteURL)
	if err != nil {
		return err
	}

	web, err := getWeb(sp)
	if err != nil {
		l.Logger.Warn("Failed to read site", "site", siteURL, "error", err)
		return nil
	}

	users, err := getSiteUsers(sp)
	if err != nil {
		l.Logger.Warn("Failed to enumerate site users", "site", siteURL, "error", err)
		return nil
	}

	for _, user := range users {
		if !IsExternalPrincipal(user.LoginName) {
			continue
		}
		rec := types.SharingRecord{
			SiteURL:     web.URL,
			LoginName:   user.LoginName,
			DisplayName: user.Title,
			Email:       user.Email,
			IsSiteAdmin: user.IsSiteAdmin,
			Groups:      strings.Join(user.groupTitles(), "; "),
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	return nil
}

// IsExternalPrincipal reports whether a site user login name identifies a
// guest. Invited guests carry #ext# in their claim, ad-hoc recipients get
// urn:spo:guest logins, and the "everyone except external users" claim is
// excluded because it is a tenant-wide pseudo principal.
func IsExternalPrincipal(loginName string) bool {
	login := strings.ToLower(loginName)
	if strings.Contains(login, "spo-grid-all-users") {
		return false
	}
	return strings.Contains(login, "#ext#") ||
		strings.Contains(login, "urn:spo:guest") ||
		strings.Contains(login, "%23ext%23")
}

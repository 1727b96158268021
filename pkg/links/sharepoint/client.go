package sharepoint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/koltyakov/gosip"
	"github.com/koltyakov/gosip/api"
	"github.com/koltyakov/gosip/auth/azureenv"
)

// NewSP builds a gosip client for one site collection. Auth comes from the
// same AZURE_* environment variables the Graph credential chain uses.
func NewSP(siteURL string) (*api.SP, error) {
	authCnfg := &azureenv.AuthCnfg{SiteURL: strings.TrimRight(siteURL, "/")}
	client := &gosip.SPClient{AuthCnfg: authCnfg}
	return api.NewSP(client), nil
}

// spoWeb is the subset of web metadata the site reports need.
type spoWeb struct {
	Title    string `json:"Title"`
	URL      string `json:"Url"`
	Template string `json:"WebTemplate"`
}

// spoUser is one entry from the site user information list, with the
// site groups the user belongs to expanded inline.
type spoUser struct {
	ID          int    `json:"Id"`
	Title       string `json:"Title"`
	LoginName   string `json:"LoginName"`
	Email       string `json:"Email"`
	IsSiteAdmin bool   `json:"IsSiteAdmin"`
	Groups      []struct {
		Title string `json:"Title"`
	} `json:"Groups"`
}

func (u spoUser) groupTitles() []string {
	titles := make([]string, 0, len(u.Groups))
	for _, g := range u.Groups {
		titles = append(titles, g.Title)
	}
	return titles
}

const (
	webFields      = "Title,Url,WebTemplate"
	siteUserFields = "Id,Title,LoginName,Email,IsSiteAdmin,Groups/Title"
)

func getWeb(sp *api.SP) (spoWeb, error) {
	res, err := sp.Web().Select(webFields).Get()
	if err != nil {
		return spoWeb{}, fmt.Errorf("get web: %w", err)
	}
	var web spoWeb
	if err := json.Unmarshal(res.Normalized(), &web); err != nil {
		return spoWeb{}, fmt.Errorf("decode web: %w", err)
	}
	return web, nil
}

func getSiteUsers(sp *api.SP) ([]spoUser, error) {
	res, err := sp.Web().SiteUsers().Select(siteUserFields).Expand("Groups").Get()
	if err != nil {
		return nil, fmt.Errorf("get site users: %w", err)
	}
	return parseSiteUsers(res.Normalized())
}

func parseSiteUsers(data []byte) ([]spoUser, error) {
	var users []spoUser
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("decode site users: %w", err)
	}
	return users, nil
}

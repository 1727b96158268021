package sharepoint

import (
	"fmt"
	"strings"

	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/utils"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// SpoSiteGeneratorLink merges --site values and an optional input file
// into a deduplicated stream of site collection URLs.
type SpoSiteGeneratorLink struct {
	*chain.Base
}

func NewSpoSiteGeneratorLink(configs ...cfg.Config) chain.Link {
	l := &SpoSiteGeneratorLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *SpoSiteGeneratorLink) Params() []cfg.Param {
	return []cfg.Param{
		options.SpoSite(),
		options.InputFile(),
		options.SpoIncludeOneDrive(),
	}
}

func (l *SpoSiteGeneratorLink) Process(input any) error {
	sites, _ := cfg.As[[]string](l.Arg("site"))
	inputFile, _ := cfg.As[string](l.Arg("input-file"))
	includeOneDrive, _ := cfg.As[bool](l.Arg("include-onedrive"))

	if inputFile != "" {
		fromFile, err := utils.ReadIdentityFile(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read site list: %w", err)
		}
		sites = append(sites, fromFile...)
	}

	if len(sites) == 0 {
		return fmt.Errorf("no sites provided; use --site or --input-file")
	}

	seen := make(map[string]bool)
	for _, site := range sites {
		site = strings.TrimRight(strings.TrimSpace(site), "/")
		if site == "" || seen[strings.ToLower(site)] {
			continue
		}
		seen[strings.ToLower(site)] = true
		if !includeOneDrive && IsOneDriveSite(site) {
			l.Logger.Debug("Skipping personal site", "site", site)
			continue
		}
		if err := l.Send(site); err != nil {
			return err
		}
	}

	return nil
}

// IsOneDriveSite reports whether a site URL is a personal (OneDrive)
// site collection.
func IsOneDriveSite(siteURL string) bool {
	lower := strings.ToLower(siteURL)
	return strings.Contains(lower, "-my.sharepoint.com") || strings.Contains(lower, "/personal/")
}

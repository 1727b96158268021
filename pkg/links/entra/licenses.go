package entra

import (
	"fmt"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/users"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// EntraLicenseCollectorLink emits one LicenseRecord per (user, SKU). A
// user whose license lookup fails is logged and skipped; the run
// continues with the remaining users.
type EntraLicenseCollectorLink struct {
	*chain.Base
}

func NewEntraLicenseCollectorLink(configs ...cfg.Config) chain.Link {
	l := &EntraLicenseCollectorLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *EntraLicenseCollectorLink) Params() []cfg.Param {
	return []cfg.Param{
		options.EntraDomain(),
	}
}

func (l *EntraLicenseCollectorLink) Process(input any) error {
	domain, _ := cfg.As[string](l.Arg("domain"))

	client, err := helpers.NewGraphClient()
	if err != nil {
		return err
	}

	requestConfig := &users.UsersRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UsersRequestBuilderGetQueryParameters{
			Select: []string{"id", "userPrincipalName", "displayName", "assignedLicenses"},
			Top:    helpers.Int32Ptr(999),
		},
	}

	result, err := client.Users().Get(l.Context(), requestConfig)
	if err != nil {
		return fmt.Errorf("failed to get users: %w", helpers.GraphError(err))
	}

	pageIterator, err := msgraphcore.NewPageIterator[models.Userable](result, client.GetAdapter(), models.CreateUserCollectionResponseFromDiscriminatorValue)
	if err != nil {
		return fmt.Errorf("failed to create page iterator: %w", err)
	}

	err = pageIterator.Iterate(l.Context(), func(user models.Userable) bool {
		upn := helpers.StrValue(user.GetUserPrincipalName())
		if !HasUPNSuffix(upn, domain) {
			return true
		}
		if len(user.GetAssignedLicenses()) == 0 {
			return true
		}

		details, err := client.Users().ByUserId(helpers.StrValue(user.GetId())).LicenseDetails().Get(l.Context(), nil)
		if err != nil {
			l.Logger.Warn("Failed to get license details", "user", upn, "error", err)
			return true
		}

		for _, detail := range details.GetValue() {
			rec := types.LicenseRecord{
				UserPrincipalName: upn,
				DisplayName:       helpers.StrValue(user.GetDisplayName()),
				SkuPartNumber:     helpers.StrValue(detail.GetSkuPartNumber()),
			}
			if skuID := detail.GetSkuId(); skuID != nil {
				rec.SkuID = skuID.String()
			}
			if l.Send(rec) != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("failed to iterate users: %w", helpers.GraphError(err))
	}

	return nil
}

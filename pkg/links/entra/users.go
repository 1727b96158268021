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

// EntraUserListLink enumerates directory users and emits one UserRecord
// per user passing the domain/enabled filters.
type EntraUserListLink struct {
	*chain.Base
}

func NewEntraUserListLink(configs ...cfg.Config) chain.Link {
	l := &EntraUserListLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *EntraUserListLink) Params() []cfg.Param {
	return []cfg.Param{
		options.EntraDomain(),
		options.EntraDisabledOnly(),
	}
}

func (l *EntraUserListLink) Process(input any) error {
	domain, _ := cfg.As[string](l.Arg("domain"))
	disabledOnly, _ := cfg.As[bool](l.Arg("disabled-only"))

	client, err := helpers.NewGraphClient()
	if err != nil {
		return err
	}

	requestConfig := &users.UsersRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UsersRequestBuilderGetQueryParameters{
			Select: []string{
				"id", "userPrincipalName", "displayName", "mail",
				"accountEnabled", "userType", "department", "jobTitle",
			},
			Top: helpers.Int32Ptr(999),
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

	count := 0
	err = pageIterator.Iterate(l.Context(), func(user models.Userable) bool {
		rec := userRecord(user)
		if !HasUPNSuffix(rec.UserPrincipalName, domain) {
			return true
		}
		if disabledOnly && rec.AccountEnabled {
			return true
		}
		count++
		return l.Send(rec) == nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate users: %w", helpers.GraphError(err))
	}

	l.Logger.Info("Enumerated directory users", "matched", count)
	return nil
}

func userRecord(user models.Userable) types.UserRecord {
	return types.UserRecord{
		ID:                helpers.StrValue(user.GetId()),
		UserPrincipalName: helpers.StrValue(user.GetUserPrincipalName()),
		DisplayName:       helpers.StrValue(user.GetDisplayName()),
		Mail:              helpers.StrValue(user.GetMail()),
		Department:        helpers.StrValue(user.GetDepartment()),
		JobTitle:          helpers.StrValue(user.GetJobTitle()),
		AccountEnabled:    helpers.BoolValue(user.GetAccountEnabled()),
		UserType:          helpers.StrValue(user.GetUserType()),
	}
}

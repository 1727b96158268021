package entra

import (
	"fmt"
	"time"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/microsoftgraph/msgraph-sdk-go/users"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// EntraInactiveUsersLink reports member accounts whose last sign-in is
// older than the cutoff, including accounts that never signed in.
type EntraInactiveUsersLink struct {
	*chain.Base
}

func NewEntraInactiveUsersLink(configs ...cfg.Config) chain.Link {
	l := &EntraInactiveUsersLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *EntraInactiveUsersLink) Params() []cfg.Param {
	return []cfg.Param{
		options.StaleDays(),
		options.EntraDomain(),
	}
}

func (l *EntraInactiveUsersLink) Process(input any) error {
	days, _ := cfg.As[int](l.Arg("days"))
	domain, _ := cfg.As[string](l.Arg("domain"))
	if days <= 0 {
		days = 90
	}

	client, err := helpers.NewGraphClient()
	if err != nil {
		return err
	}

	filter := "userType eq 'Member'"
	requestConfig := &users.UsersRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UsersRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{
				"id", "userPrincipalName", "displayName",
				"accountEnabled", "signInActivity",
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

	now := time.Now()
	count := 0
	err = pageIterator.Iterate(l.Context(), func(user models.Userable) bool {
		upn := helpers.StrValue(user.GetUserPrincipalName())
		if !HasUPNSuffix(upn, domain) {
			return true
		}

		var lastSignIn time.Time
		if activity := user.GetSignInActivity(); activity != nil {
			if last := activity.GetLastSignInDateTime(); last != nil {
				lastSignIn = *last
			}
		}
		if !IsStale(lastSignIn, days, now) {
			return true
		}

		count++
		return l.Send(types.InactiveUserRecord{
			UserPrincipalName: upn,
			DisplayName:       helpers.StrValue(user.GetDisplayName()),
			AccountEnabled:    helpers.BoolValue(user.GetAccountEnabled()),
			LastSignIn:        lastSignIn,
			DaysInactive:      DaysInactive(lastSignIn, now),
		}) == nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate users: %w", helpers.GraphError(err))
	}

	l.Logger.Info("Found inactive users", "count", count, "cutoff_days", days)
	return nil
}

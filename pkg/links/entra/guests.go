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

// EntraGuestCollectorLink enumerates guest identities with their sign-in
// activity. Reading signInActivity requires AuditLog.Read.All in addition
// to User.Read.All.
type EntraGuestCollectorLink struct {
	*chain.Base
}

func NewEntraGuestCollectorLink(configs ...cfg.Config) chain.Link {
	l := &EntraGuestCollectorLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *EntraGuestCollectorLink) Params() []cfg.Param {
	return []cfg.Param{
		options.StaleFilterDays(),
	}
}

func (l *EntraGuestCollectorLink) Process(input any) error {
	staleDays, _ := cfg.As[int](l.Arg("stale-days"))

	client, err := helpers.NewGraphClient()
	if err != nil {
		return err
	}

	filter := "userType eq 'Guest'"
	requestConfig := &users.UsersRequestBuilderGetRequestConfiguration{
		QueryParameters: &users.UsersRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{
				"id", "userPrincipalName", "displayName", "mail",
				"accountEnabled", "createdDateTime", "signInActivity",
			},
			Top: helpers.Int32Ptr(999),
		},
	}

	result, err := client.Users().Get(l.Context(), requestConfig)
	if err != nil {
		return fmt.Errorf("failed to get guest users: %w", helpers.GraphError(err))
	}

	pageIterator, err := msgraphcore.NewPageIterator[models.Userable](result, client.GetAdapter(), models.CreateUserCollectionResponseFromDiscriminatorValue)
	if err != nil {
		return fmt.Errorf("failed to create page iterator: %w", err)
	}

	now := time.Now()
	count := 0
	err = pageIterator.Iterate(l.Context(), func(user models.Userable) bool {
		rec := guestRecord(user)
		if staleDays > 0 && !IsStale(rec.LastSignIn, staleDays, now) {
			return true
		}
		count++
		return l.Send(rec) == nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate guest users: %w", helpers.GraphError(err))
	}

	l.Logger.Info("Enumerated guest users", "matched", count)
	return nil
}

func guestRecord(user models.Userable) types.GuestRecord {
	rec := types.GuestRecord{
		ID:                helpers.StrValue(user.GetId()),
		UserPrincipalName: helpers.StrValue(user.GetUserPrincipalName()),
		DisplayName:       helpers.StrValue(user.GetDisplayName()),
		Mail:              helpers.StrValue(user.GetMail()),
		AccountEnabled:    helpers.BoolValue(user.GetAccountEnabled()),
	}
	if created := user.GetCreatedDateTime(); created != nil {
		rec.CreatedDateTime = *created
	}
	if activity := user.GetSignInActivity(); activity != nil {
		if last := activity.GetLastSignInDateTime(); last != nil {
			rec.LastSignIn = *last
		}
	}
	return rec
}

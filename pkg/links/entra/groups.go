package entra

import (
	"context"
	"fmt"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/google/uuid"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/groups"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// EntraGroupMemberLink lists the members of one group, direct or
// transitive, and emits one GroupMemberRecord per member.
type EntraGroupMemberLink struct {
	*chain.Base
}

func NewEntraGroupMemberLink(configs ...cfg.Config) chain.Link {
	l := &EntraGroupMemberLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *EntraGroupMemberLink) Params() []cfg.Param {
	return []cfg.Param{
		options.EntraGroup(),
		options.EntraTransitive(),
	}
}

func (l *EntraGroupMemberLink) Process(input any) error {
	groupArg, err := cfg.As[string](l.Arg("group"))
	if err != nil || groupArg == "" {
		return fmt.Errorf("group is required")
	}
	transitive, _ := cfg.As[bool](l.Arg("transitive"))

	client, err := helpers.NewGraphClient()
	if err != nil {
		return err
	}

	groupID, groupName, err := resolveGroup(l.Context(), client, groupArg)
	if err != nil {
		return err
	}

	builder := client.Groups().ByGroupId(groupID)
	var result models.DirectoryObjectCollectionResponseable
	if transitive {
		result, err = builder.TransitiveMembers().Get(l.Context(), nil)
	} else {
		result, err = builder.Members().Get(l.Context(), nil)
	}
	if err != nil {
		return fmt.Errorf("failed to get members of %s: %w", groupName, helpers.GraphError(err))
	}

	pageIterator, err := msgraphcore.NewPageIterator[models.DirectoryObjectable](result, client.GetAdapter(), models.CreateDirectoryObjectCollectionResponseFromDiscriminatorValue)
	if err != nil {
		return fmt.Errorf("failed to create page iterator: %w", err)
	}

	count := 0
	err = pageIterator.Iterate(l.Context(), func(member models.DirectoryObjectable) bool {
		rec := types.GroupMemberRecord{
			GroupName: groupName,
			GroupID:   groupID,
			MemberID:  helpers.StrValue(member.GetId()),
		}
		switch m := member.(type) {
		case models.Userable:
			rec.UserPrincipalName = helpers.StrValue(m.GetUserPrincipalName())
			rec.DisplayName = helpers.StrValue(m.GetDisplayName())
			rec.MemberType = "User"
		case models.Groupable:
			rec.DisplayName = helpers.StrValue(m.GetDisplayName())
			rec.MemberType = "Group"
		default:
			rec.MemberType = "DirectoryObject"
		}
		count++
		return l.Send(rec) == nil
	})
	if err != nil {
		return fmt.Errorf("failed to iterate members: %w", helpers.GraphError(err))
	}

	l.Logger.Info("Enumerated group members", "group", groupName, "count", count)
	return nil
}

// resolveGroup accepts an object ID or a display name and returns the
// group's ID and display name.
func resolveGroup(ctx context.Context, client *msgraphsdk.GraphServiceClient, nameOrID string) (string, string, error) {
	if _, err := uuid.Parse(nameOrID); err == nil {
		group, err := client.Groups().ByGroupId(nameOrID).Get(ctx, nil)
		if err != nil {
			return "", "", fmt.Errorf("failed to get group %s: %w", nameOrID, helpers.GraphError(err))
		}
		return helpers.StrValue(group.GetId()), helpers.StrValue(group.GetDisplayName()), nil
	}

	filter := fmt.Sprintf("displayName eq '%s'", helpers.EscapeODataString(nameOrID))
	requestConfig := &groups.GroupsRequestBuilderGetRequestConfiguration{
		QueryParameters: &groups.GroupsRequestBuilderGetQueryParameters{
			Filter: &filter,
			Select: []string{"id", "displayName"},
		},
	}

	result, err := client.Groups().Get(ctx, requestConfig)
	if err != nil {
		return "", "", fmt.Errorf("failed to search for group %q: %w", nameOrID, helpers.GraphError(err))
	}

	matches := result.GetValue()
	if len(matches) == 0 {
		return "", "", fmt.Errorf("no group found with display name %q", nameOrID)
	}
	if len(matches) > 1 {
		return "", "", fmt.Errorf("display name %q matches %d groups, use the object ID", nameOrID, len(matches))
	}

	return helpers.StrValue(matches[0].GetId()), helpers.StrValue(matches[0].GetDisplayName()), nil
}

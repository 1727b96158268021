package entra

import (
	"fmt"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	"github.com/castellanops/cumulus/pkg/utils"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	msgraphcore "github.com/microsoftgraph/msgraph-sdk-go-core"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// EntraGroupSyncLink reconciles a group's user membership against a
// desired list of UPNs. Additions and removals are computed as a diff;
// each change is applied independently and reported as an ActionRecord,
// so one failed member never aborts the rest of the sync.
type EntraGroupSyncLink struct {
	*chain.Base
}

func NewEntraGroupSyncLink(configs ...cfg.Config) chain.Link {
	l := &EntraGroupSyncLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *EntraGroupSyncLink) Params() []cfg.Param {
	return []cfg.Param{
		options.EntraGroup(),
		options.EntraMembersFile(),
		options.DryRun(),
	}
}

func (l *EntraGroupSyncLink) Process(input any) error {
	groupArg, err := cfg.As[string](l.Arg("group"))
	if err != nil || groupArg == "" {
		return fmt.Errorf("group is required")
	}
	membersFile, err := cfg.As[string](l.Arg("members-file"))
	if err != nil || membersFile == "" {
		return fmt.Errorf("members-file is required")
	}
	dryRun, _ := cfg.As[bool](l.Arg("dry-run"))

	desired, err := utils.ReadIdentityFile(membersFile)
	if err != nil {
		return err
	}

	client, err := helpers.NewGraphClient()
	if err != nil {
		return err
	}

	groupID, groupName, err := resolveGroup(l.Context(), client, groupArg)
	if err != nil {
		return err
	}

	// current user members, keyed by UPN
	currentByUPN := make(map[string]string)
	result, err := client.Groups().ByGroupId(groupID).Members().Get(l.Context(), nil)
	if err != nil {
		return fmt.Errorf("failed to get members of %s: %w", groupName, helpers.GraphError(err))
	}
	pageIterator, err := msgraphcore.NewPageIterator[models.DirectoryObjectable](result, client.GetAdapter(), models.CreateDirectoryObjectCollectionResponseFromDiscriminatorValue)
	if err != nil {
		return fmt.Errorf("failed to create page iterator: %w", err)
	}
	err = pageIterator.Iterate(l.Context(), func(member models.DirectoryObjectable) bool {
		if user, ok := member.(models.Userable); ok {
			currentByUPN[helpers.StrValue(user.GetUserPrincipalName())] = helpers.StrValue(user.GetId())
		}
		return true
	})
	if err != nil {
		return fmt.Errorf("failed to iterate members: %w", helpers.GraphError(err))
	}

	current := make([]string, 0, len(currentByUPN))
	for upn := range currentByUPN {
		current = append(current, upn)
	}

	toAdd, toRemove := helpers.DiffFold(current, desired)
	l.Logger.Info("Computed membership diff", "group", groupName, "add", len(toAdd), "remove", len(toRemove))

	for _, upn := range toAdd {
		rec := types.ActionRecord{Target: upn, Action: "add-member"}
		if dryRun {
			rec.Status = types.StatusDryRun
			rec.Detail = fmt.Sprintf("would add to %s", groupName)
			if err := l.Send(rec); err != nil {
				return err
			}
			continue
		}
		if err := l.addMember(client, groupID, upn); err != nil {
			l.Logger.Warn("Failed to add member", "group", groupName, "user", upn, "error", err)
			rec.Status = types.StatusError
			rec.Detail = err.Error()
		} else {
			rec.Status = types.StatusOK
			rec.Detail = fmt.Sprintf("added to %s", groupName)
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	for _, upn := range toRemove {
		rec := types.ActionRecord{Target: upn, Action: "remove-member"}
		if dryRun {
			rec.Status = types.StatusDryRun
			rec.Detail = fmt.Sprintf("would remove from %s", groupName)
			if err := l.Send(rec); err != nil {
				return err
			}
			continue
		}
		if err := l.removeMember(client, groupID, currentByUPN[upn]); err != nil {
			l.Logger.Warn("Failed to remove member", "group", groupName, "user", upn, "error", err)
			rec.Status = types.StatusError
			rec.Detail = err.Error()
		} else {
			rec.Status = types.StatusOK
			rec.Detail = fmt.Sprintf("removed from %s", groupName)
		}
		if err := l.Send(rec); err != nil {
			return err
		}
	}

	return nil
}

func (l *EntraGroupSyncLink) addMember(client *msgraphsdk.GraphServiceClient, groupID, upn string) error {
	user, err := client.Users().ByUserId(upn).Get(l.Context(), nil)
	if err != nil {
		return fmt.Errorf("failed to resolve user %s: %w", upn, err)
	}

	refBody := models.NewReferenceCreate()
	refBody.SetOdataId(helpers.StrPtr("https://graph.microsoft.com/v1.0/directoryObjects/" + helpers.StrValue(user.GetId())))

	if err := client.Groups().ByGroupId(groupID).Members().Ref().Post(l.Context(), refBody, nil); err != nil {
		return fmt.Errorf("failed to add member: %w", helpers.GraphError(err))
	}
	return nil
}

func (l *EntraGroupSyncLink) removeMember(client *msgraphsdk.GraphServiceClient, groupID, memberID string) error {
	if err := client.Groups().ByGroupId(groupID).Members().ByDirectoryObjectId(memberID).Ref().Delete(l.Context(), nil); err != nil {
		return fmt.Errorf("failed to remove member: %w", helpers.GraphError(err))
	}
	return nil
}

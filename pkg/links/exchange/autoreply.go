package exchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/castellanops/cumulus/internal/helpers"
	"github.com/castellanops/cumulus/pkg/links/options"
	"github.com/castellanops/cumulus/pkg/types"
	msgraphsdk "github.com/microsoftgraph/msgraph-sdk-go"
	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/praetorian-inc/janus-framework/pkg/chain"
	"github.com/praetorian-inc/janus-framework/pkg/chain/cfg"
)

// graphDateTimeLayout is the fractional-seconds layout Graph uses inside
// dateTimeTimeZone values.
const graphDateTimeLayout = "2006-01-02T15:04:05.0000000"

// AutoReplyReportLink reads the automatic-replies configuration of each
// mailbox identity flowing through it. Mailbox settings live on the Graph
// user resource, so this goes through Graph rather than the admin API.
type AutoReplyReportLink struct {
	*chain.Base
	client *msgraphsdk.GraphServiceClient
}

func NewAutoReplyReportLink(configs ...cfg.Config) chain.Link {
	l := &AutoReplyReportLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *AutoReplyReportLink) Params() []cfg.Param {
	return []cfg.Param{}
}

func (l *AutoReplyReportLink) Process(identity string) error {
	if l.client == nil {
		client, err := helpers.NewGraphClient()
		if err != nil {
			return err
		}
		l.client = client
	}

	settings, err := l.client.Users().ByUserId(identity).MailboxSettings().Get(l.Context(), nil)
	if err != nil {
		l.Logger.Warn("Failed to get mailbox settings", "mailbox", identity, "error", helpers.GraphError(err))
		return l.Send(types.AutoReplyRecord{Mailbox: identity, Status: types.StatusError})
	}

	rec := types.AutoReplyRecord{Mailbox: identity, Status: types.StatusOK}
	if ar := settings.GetAutomaticRepliesSetting(); ar != nil {
		if status := ar.GetStatus(); status != nil {
			rec.State = status.String()
		}
		rec.InternalMessage = stripHTML(helpers.StrValue(ar.GetInternalReplyMessage()))
		rec.ExternalMessage = stripHTML(helpers.StrValue(ar.GetExternalReplyMessage()))
		if start := ar.GetScheduledStartDateTime(); start != nil {
			rec.ScheduledStart = parseGraphDateTime(helpers.StrValue(start.GetDateTime()))
		}
		if end := ar.GetScheduledEndDateTime(); end != nil {
			rec.ScheduledEnd = parseGraphDateTime(helpers.StrValue(end.GetDateTime()))
		}
	}

	return l.Send(rec)
}

// SetAutoReplyLink sets or clears automatic replies on each mailbox
// identity flowing through it.
type SetAutoReplyLink struct {
	*chain.Base
	client *msgraphsdk.GraphServiceClient
}

func NewSetAutoReplyLink(configs ...cfg.Config) chain.Link {
	l := &SetAutoReplyLink{}
	l.Base = chain.NewBase(l, configs...)
	return l
}

func (l *SetAutoReplyLink) Params() []cfg.Param {
	return []cfg.Param{
		options.ExchangeAutoReplyState(),
		options.ExchangeAutoReplyMessage(),
		options.ExchangeScheduleStart(),
		options.ExchangeScheduleEnd(),
		options.DryRun(),
	}
}

func (l *SetAutoReplyLink) Process(identity string) error {
	state, _ := cfg.As[string](l.Arg("state"))
	replyMessage, _ := cfg.As[string](l.Arg("reply-message"))
	start, _ := cfg.As[string](l.Arg("start"))
	end, _ := cfg.As[string](l.Arg("end"))
	dryRun, _ := cfg.As[bool](l.Arg("dry-run"))

	status, err := parseAutoReplyState(state)
	if err != nil {
		return err
	}

	rec := types.ActionRecord{Target: identity, Action: "set-autoreply"}

	if dryRun {
		rec.Status = types.StatusDryRun
		rec.Detail = fmt.Sprintf("would set auto-reply state to %s", state)
		return l.Send(rec)
	}

	if l.client == nil {
		client, err := helpers.NewGraphClient()
		if err != nil {
			return err
		}
		l.client = client
	}

	ar := models.NewAutomaticRepliesSetting()
	ar.SetStatus(&status)
	if replyMessage != "" {
		ar.SetInternalReplyMessage(helpers.StrPtr(replyMessage))
		ar.SetExternalReplyMessage(helpers.StrPtr(replyMessage))
	}
	if status == models.SCHEDULED_AUTOMATICREPLIESSTATUS {
		window, err := scheduleWindow(start, end)
		if err != nil {
			return err
		}
		ar.SetScheduledStartDateTime(window[0])
		ar.SetScheduledEndDateTime(window[1])
	}

	settings := models.NewMailboxSettings()
	settings.SetAutomaticRepliesSetting(ar)

	if _, err := l.client.Users().ByUserId(identity).MailboxSettings().Patch(l.Context(), settings, nil); err != nil {
		l.Logger.Warn("Failed to set auto-reply", "mailbox", identity, "error", helpers.GraphError(err))
		rec.Status = types.StatusError
		rec.Detail = helpers.GraphError(err).Error()
	} else {
		rec.Status = types.StatusOK
		rec.Detail = fmt.Sprintf("auto-reply state set to %s", state)
	}

	return l.Send(rec)
}

func parseAutoReplyState(state string) (models.AutomaticRepliesStatus, error) {
	switch strings.ToLower(state) {
	case "enabled":
		return models.ALWAYSENABLED_AUTOMATICREPLIESSTATUS, nil
	case "disabled":
		return models.DISABLED_AUTOMATICREPLIESSTATUS, nil
	case "scheduled":
		return models.SCHEDULED_AUTOMATICREPLIESSTATUS, nil
	default:
		return 0, fmt.Errorf("invalid auto-reply state %q: want enabled, disabled, or scheduled", state)
	}
}

func scheduleWindow(start, end string) ([2]models.DateTimeTimeZoneable, error) {
	startTime, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return [2]models.DateTimeTimeZoneable{}, fmt.Errorf("invalid --start: %w", err)
	}
	endTime, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return [2]models.DateTimeTimeZoneable{}, fmt.Errorf("invalid --end: %w", err)
	}
	if !endTime.After(startTime) {
		return [2]models.DateTimeTimeZoneable{}, fmt.Errorf("--end must be after --start")
	}

	var window [2]models.DateTimeTimeZoneable
	for i, t := range []time.Time{startTime, endTime} {
		dtz := models.NewDateTimeTimeZone()
		dtz.SetDateTime(helpers.StrPtr(t.UTC().Format(graphDateTimeLayout)))
		dtz.SetTimeZone(helpers.StrPtr("UTC"))
		window[i] = dtz
	}
	return window, nil
}

func parseGraphDateTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{graphDateTimeLayout, time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// stripHTML flattens the HTML bodies Graph returns for reply messages
// into single-line text suitable for a report cell.
func stripHTML(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

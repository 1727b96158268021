package exchange

import (
	"testing"
	"time"

	"github.com/microsoftgraph/msgraph-sdk-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAutoReplyState(t *testing.T) {
	status, err := parseAutoReplyState("enabled")
	require.NoError(t, err)
	assert.Equal(t, models.ALWAYSENABLED_AUTOMATICREPLIESSTATUS, status)

	status, err = parseAutoReplyState("Disabled")
	require.NoError(t, err)
	assert.Equal(t, models.DISABLED_AUTOMATICREPLIESSTATUS, status)

	status, err = parseAutoReplyState("scheduled")
	require.NoError(t, err)
	assert.Equal(t, models.SCHEDULED_AUTOMATICREPLIESSTATUS, status)

	_, err = parseAutoReplyState("sometimes")
	assert.Error(t, err)
}

func TestScheduleWindow(t *testing.T) {
	window, err := scheduleWindow("2026-09-01T09:00:00Z", "2026-09-15T17:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01T09:00:00.0000000", *window[0].GetDateTime())
	assert.Equal(t, "UTC", *window[0].GetTimeZone())
	assert.Equal(t, "2026-09-15T17:00:00.0000000", *window[1].GetDateTime())
}

func TestScheduleWindowRejectsInvertedRange(t *testing.T) {
	_, err := scheduleWindow("2026-09-15T17:00:00Z", "2026-09-01T09:00:00Z")
	assert.Error(t, err)

	_, err = scheduleWindow("not-a-time", "2026-09-01T09:00:00Z")
	assert.Error(t, err)
}

func TestParseGraphDateTime(t *testing.T) {
	got := parseGraphDateTime("2026-09-01T09:30:00.0000000")
	assert.Equal(t, time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC), got)

	assert.True(t, parseGraphDateTime("").IsZero())
	assert.True(t, parseGraphDateTime("garbage").IsZero())
}

func TestStripHTML(t *testing.T) {
	in := "<html><body>Out of office.<br>\nBack <b>Monday</b>.</body></html>"
	assert.Equal(t, "Out of office. Back Monday.", stripHTML(in))
	assert.Equal(t, "plain text", stripHTML("plain text"))
}

package ad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFiletimeToTime(t *testing.T) {
	// 2021-01-01T00:00:00Z expressed as FILETIME
	got := FiletimeToTime("132539328000000000")
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), got)

	assert.True(t, FiletimeToTime("0").IsZero(), "zero means never")
	assert.True(t, FiletimeToTime("").IsZero())
	assert.True(t, FiletimeToTime("not-a-number").IsZero())
}

func TestIsAccountDisabled(t *testing.T) {
	assert.False(t, IsAccountDisabled("512"), "NORMAL_ACCOUNT")
	assert.True(t, IsAccountDisabled("514"), "NORMAL_ACCOUNT | ACCOUNTDISABLE")
	assert.True(t, IsAccountDisabled("66050"), "disabled with DONT_EXPIRE_PASSWORD")
	assert.False(t, IsAccountDisabled(""))
}

func TestIsStale(t *testing.T) {
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsStale(time.Time{}, 90, now), "never logged on counts as stale")
	assert.True(t, IsStale(now.AddDate(0, 0, -120), 90, now))
	assert.False(t, IsStale(now.AddDate(0, 0, -30), 90, now))
	assert.False(t, IsStale(time.Time{}, 0, now), "zero days disables the check")
	assert.False(t, IsStale(now.AddDate(0, 0, -120), -1, now))
}

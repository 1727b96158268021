package entra

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasUPNSuffix(t *testing.T) {
	tests := []struct {
		name   string
		upn    string
		domain string
		want   bool
	}{
		{"empty domain matches everything", "alice@contoso.com", "", true},
		{"matching domain", "alice@contoso.com", "contoso.com", true},
		{"case insensitive", "alice@Contoso.COM", "contoso.com", true},
		{"leading at tolerated", "alice@contoso.com", "@contoso.com", true},
		{"other domain", "alice@fabrikam.com", "contoso.com", false},
		{"subdomain is not the domain", "alice@mail.contoso.com", "contoso.com", false},
		{"no at sign", "alice", "contoso.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasUPNSuffix(tt.upn, tt.domain))
		})
	}
}

func TestIsStale(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, IsStale(time.Time{}, 90, now), "never signed in counts as stale")
	assert.True(t, IsStale(now.AddDate(0, 0, -91), 90, now))
	assert.False(t, IsStale(now.AddDate(0, 0, -89), 90, now))
	assert.False(t, IsStale(time.Time{}, 0, now), "zero window disables the check")
}

func TestDaysInactive(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, -1, DaysInactive(time.Time{}, now))
	assert.Equal(t, 0, DaysInactive(now.Add(-2*time.Hour), now))
	assert.Equal(t, 30, DaysInactive(now.AddDate(0, 0, -30), now))
}

package entra

import (
	"strings"
	"time"
)

// HasUPNSuffix reports whether the UPN belongs to the given domain.
// An empty domain matches everything.
func HasUPNSuffix(upn, domain string) bool {
	if domain == "" {
		return true
	}
	at := strings.LastIndex(upn, "@")
	if at < 0 {
		return false
	}
	return strings.EqualFold(upn[at+1:], strings.TrimPrefix(domain, "@"))
}

// IsStale reports whether last activity is older than days. A zero last
// activity (never signed in) always counts as stale.
func IsStale(last time.Time, days int, now time.Time) bool {
	if days <= 0 {
		return false
	}
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > time.Duration(days)*24*time.Hour
}

// DaysInactive returns whole days since the last activity, or -1 when the
// object never signed in.
func DaysInactive(last time.Time, now time.Time) int {
	if last.IsZero() {
		return -1
	}
	return int(now.Sub(last).Hours() / 24)
}

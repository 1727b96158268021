package ad

import (
	"strconv"
	"time"
)

// userAccountControl bit for a disabled account.
const uacAccountDisable = 0x2

// Active Directory stores lastLogonTimestamp and pwdLastSet as FILETIME:
// 100-nanosecond intervals since 1601-01-01 UTC.
const filetimeEpochOffset = 116444736000000000

// FiletimeToTime converts an AD FILETIME attribute value to a time.Time.
// Zero, empty, and unparseable values map to the zero time, which the
// staleness checks treat as "never".
func FiletimeToTime(value string) time.Time {
	ft, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ft <= 0 {
		return time.Time{}
	}
	secs := (ft - filetimeEpochOffset) / 10000000
	nsecs := ((ft - filetimeEpochOffset) % 10000000) * 100
	if secs < 0 {
		return time.Time{}
	}
	return time.Unix(secs, nsecs).UTC()
}

// IsAccountDisabled reads the ACCOUNTDISABLE bit out of a
// userAccountControl attribute value.
func IsAccountDisabled(uac string) bool {
	v, err := strconv.ParseInt(uac, 10, 64)
	if err != nil {
		return false
	}
	return v&uacAccountDisable != 0
}

// IsStale reports whether a last-logon time is older than the given
// number of days. Non-positive day counts disable the check; a zero time
// means the account never logged on, which counts as stale.
func IsStale(last time.Time, days int, now time.Time) bool {
	if days <= 0 {
		return false
	}
	if last.IsZero() {
		return true
	}
	return now.Sub(last) > time.Duration(days)*24*time.Hour
}

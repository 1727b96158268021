package types

import (
	"strconv"
	"time"
)

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

func intString(i int) string {
	return strconv.Itoa(i)
}

func int64String(i int64) string {
	return strconv.FormatInt(i, 10)
}

func timeString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

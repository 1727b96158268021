package helpers

import (
	"slices"
	"strings"
)

func SameStringSlice(slice1, slice2 []string) bool {
	if len(slice1) != len(slice2) {
		return false
	}
	for _, elem := range slice1 {
		if !slices.Contains(slice2, elem) {
			return false
		}
	}
	for _, elem := range slice2 {
		if !slices.Contains(slice1, elem) {
			return false
		}
	}
	return true
}

// EscapeODataString doubles single quotes so a value can be embedded in
// an OData $filter string literal.
func EscapeODataString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// DiffFold computes the additions and removals needed to move current to
// desired. Comparison is case-insensitive, matching how UPNs and DNs
// behave in the directory.
func DiffFold(current, desired []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]string, len(current))
	for _, c := range current {
		currentSet[strings.ToLower(c)] = c
	}
	desiredSet := make(map[string]string, len(desired))
	for _, d := range desired {
		desiredSet[strings.ToLower(d)] = d
	}

	for key, d := range desiredSet {
		if _, ok := currentSet[key]; !ok {
			toAdd = append(toAdd, d)
		}
	}
	for key, c := range currentSet {
		if _, ok := desiredSet[key]; !ok {
			toRemove = append(toRemove, c)
		}
	}

	slices.Sort(toAdd)
	slices.Sort(toRemove)
	return toAdd, toRemove
}

func StrValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func BoolValue(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

func Int32Ptr(i int) *int32 {
	v := int32(i)
	return &v
}

func StrPtr(s string) *string {
	return &s
}

func BoolPtr(b bool) *bool {
	return &b
}

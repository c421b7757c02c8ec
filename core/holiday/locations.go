package holiday

import (
	"sort"
	"strings"
)

// locationSeparator joins location labels in a calendar event's location
// display string. Splitting with the same separator is the inverse.
const locationSeparator = ", "

// MergeLocations returns the case-sensitive deduplicated union of the two
// label lists, sorted lexicographically ascending. Inputs are not modified.
// Both the pack merger and the event reconciler use this so their notion of
// a merged location list is identical.
func MergeLocations(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	merged := make([]string, 0, len(existing)+len(incoming))
	for _, list := range [][]string{existing, incoming} {
		for _, l := range list {
			if _, ok := seen[l]; ok {
				continue
			}
			seen[l] = struct{}{}
			merged = append(merged, l)
		}
	}
	sort.Strings(merged)
	if len(merged) == 0 {
		return nil
	}
	return merged
}

// SortedLocations returns a sorted copy of the labels.
func SortedLocations(locations []string) []string {
	out := make([]string, len(locations))
	copy(out, locations)
	sort.Strings(out)
	return out
}

// JoinLocations serializes labels into an event location display string.
// Returns "" for an empty list.
func JoinLocations(locations []string) string {
	return strings.Join(locations, locationSeparator)
}

// SplitLocations parses an event location display string back into labels.
// Returns nil for "".
func SplitLocations(display string) []string {
	if display == "" {
		return nil
	}
	return strings.Split(display, locationSeparator)
}

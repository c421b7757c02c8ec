package reconcile

import "holiday-manager/core/holiday"

// ResolveOutOfOffice decides whether a holiday marks the subject as
// out-of-office.
//
// A holiday with no location list applies everywhere but never changes
// free/busy status, and a holiday with OutOfOffice disabled never does
// either. Otherwise the subject is out-of-office iff any of its four
// location attributes case-insensitively matches any label in the
// holiday's location list.
func ResolveOutOfOffice(h holiday.Holiday, subject Subject) bool {
	if len(h.Locations) == 0 || !h.OutOfOffice {
		return false
	}
	for _, label := range h.Locations {
		if subject.matches(label) {
			return true
		}
	}
	return false
}

func showAsFor(h holiday.Holiday, subject Subject) string {
	if ResolveOutOfOffice(h, subject) {
		return ShowAsOutOfOffice
	}
	return ShowAsFree
}

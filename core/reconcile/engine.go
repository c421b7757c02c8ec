package reconcile

import (
	"context"
	"fmt"

	"holiday-manager/core/holiday"
)

// BuildPlan diffs the canonical holiday list against a subject's existing
// holiday events and returns the ordered operations that bring the calendar
// in line. It is pure: the events slice is a read-only snapshot taken once
// before any writes, and sibling holidays never observe each other's
// planned operations.
//
// Per holiday, in input order:
//
//   - remove set: a matching event (same subject and start date) is
//     deleted; deleting a missing event is a no-op, not an error.
//   - no matching event: an all-day event spanning [date, date+1) in the
//     subject's time zone is created, out-of-office when the resolver says
//     so.
//   - matching event: nothing happens when the holiday has no locations,
//     or when the event's location display already equals the holiday's own
//     sorted, joined location list. Otherwise the event is patched with the
//     union of its current labels and the holiday's, and its free/busy
//     status is recomputed.
func BuildPlan(holidays []holiday.Holiday, events []Event, subject Subject, timeZone string) *Plan {
	plan := &Plan{Summary: Summary{Holidays: len(holidays)}}

	for _, h := range holidays {
		existing := findEvent(events, h.Name, h.Date)

		if h.Remove {
			if existing == nil {
				plan.Summary.Unchanged++
				continue
			}
			plan.Summary.Deletes++
			plan.Operations = append(plan.Operations, Operation{
				Type:    OpDelete,
				Key:     h.Key(),
				EventID: existing.ID,
				Reason:  "holiday marked for removal",
			})
			continue
		}

		if existing == nil {
			plan.Summary.Creates++
			plan.Operations = append(plan.Operations, Operation{
				Type:   OpCreate,
				Key:    h.Key(),
				Event:  NewEvent(h, timeZone, ResolveOutOfOffice(h, subject)),
				Reason: "no matching event",
			})
			continue
		}

		if len(h.Locations) == 0 {
			// Applies everywhere; the existing event's location is left as-is.
			plan.Summary.Unchanged++
			continue
		}

		// The equality target is the holiday's own sorted list, not the
		// merged union: an external edit that differs from both gets
		// overwritten by the union below.
		if existing.Location == holiday.JoinLocations(holiday.SortedLocations(h.Locations)) {
			plan.Summary.Unchanged++
			continue
		}

		merged := holiday.MergeLocations(holiday.SplitLocations(existing.Location), h.Locations)
		plan.Summary.Updates++
		plan.Operations = append(plan.Operations, Operation{
			Type:    OpUpdate,
			Key:     h.Key(),
			EventID: existing.ID,
			Patch: Patch{
				Location: holiday.JoinLocations(merged),
				ShowAs:   showAsFor(h, subject),
			},
			Reason: fmt.Sprintf("location %q differs", existing.Location),
		})
	}

	return plan
}

// NewEvent builds the all-day calendar event for a holiday, spanning
// [date 00:00, date+1 00:00) wall-clock in the given time zone.
func NewEvent(h holiday.Holiday, timeZone string, outOfOffice bool) Event {
	showAs := ShowAsFree
	if outOfOffice {
		showAs = ShowAsOutOfOffice
	}

	event := Event{
		Subject:    h.Name,
		Start:      DateTime{DateTime: h.Date.String() + "T00:00:00", TimeZone: timeZone},
		End:        DateTime{DateTime: h.Date.Next().String() + "T00:00:00", TimeZone: timeZone},
		IsAllDay:   true,
		ShowAs:     showAs,
		Categories: []string{h.Category},
		Body:       h.Info,
	}
	if len(h.Locations) > 0 {
		event.Location = holiday.JoinLocations(holiday.SortedLocations(h.Locations))
	}
	return event
}

// Apply executes the plan's operations in order against the store. The
// first store failure aborts the remaining operations for this subject;
// nothing already applied is rolled back, since every operation is
// idempotent on a re-run against the new calendar state. Returns the number
// of operations applied.
func Apply(ctx context.Context, store Store, subjectID string, plan *Plan, opts Options) (int, error) {
	if opts.DryRun {
		return 0, nil
	}

	applied := 0
	for _, op := range plan.Operations {
		var err error
		switch op.Type {
		case OpCreate:
			_, err = store.CreateEvent(ctx, subjectID, op.Event)
		case OpUpdate:
			err = store.PatchEvent(ctx, subjectID, op.EventID, op.Patch)
		case OpDelete:
			err = store.DeleteEvent(ctx, subjectID, op.EventID)
		default:
			err = fmt.Errorf("unknown operation type %q", op.Type)
		}
		if err != nil {
			return applied, fmt.Errorf("%s %s on %s: %w", op.Type, op.Key.Name, op.Key.Date, err)
		}
		applied++
	}
	return applied, nil
}

// findEvent returns the first event whose subject equals the holiday name
// and whose start date parses to the holiday date, or nil.
func findEvent(events []Event, name string, date holiday.Date) *Event {
	for i := range events {
		if events[i].Subject != name {
			continue
		}
		d, err := events[i].Start.Date()
		if err != nil {
			continue
		}
		if d == date {
			return &events[i]
		}
	}
	return nil
}

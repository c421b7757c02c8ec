package reconcile

import (
	"context"
	"strings"
	"time"

	"holiday-manager/core/holiday"
)

// Free/busy statuses an event can carry. Values match the calendar store's
// showAs field.
const (
	ShowAsFree        = "free"
	ShowAsOutOfOffice = "oof"
)

// wallClockLayout is the zone-less wall-clock format the calendar store
// uses for event start and end times.
const wallClockLayout = "2006-01-02T15:04:05"

// DateTime is a wall-clock time paired with a time zone name, as stored on
// calendar events.
type DateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// Date parses the calendar date from the wall-clock string.
func (dt DateTime) Date() (holiday.Date, error) {
	t, err := time.Parse(wallClockLayout, dt.DateTime)
	if err != nil {
		return holiday.Date{}, err
	}
	return holiday.DateOf(t), nil
}

// Event is a calendar event as seen by the engine. Only events whose
// subject and start date match a canonical holiday are ever mutated; the
// caller pre-filters the calendar by holiday category so unrelated events
// are never visible here.
type Event struct {
	ID         string
	Subject    string
	Start      DateTime
	End        DateTime
	IsAllDay   bool
	ShowAs     string
	Location   string
	Categories []string
	Body       string
}

// Subject holds the location attributes of the calendar owner that the
// out-of-office resolver consults.
type Subject struct {
	OfficeLocation string
	City           string
	State          string
	Country        string
}

// matches reports whether any attribute case-insensitively equals the
// label. Empty attributes never match.
func (s Subject) matches(label string) bool {
	for _, attr := range []string{s.OfficeLocation, s.City, s.State, s.Country} {
		if attr != "" && strings.EqualFold(attr, label) {
			return true
		}
	}
	return false
}

// OpType identifies a planned calendar mutation.
type OpType string

const (
	OpCreate OpType = "create"
	OpUpdate OpType = "update"
	OpDelete OpType = "delete"
)

// Patch carries the fields an update rewrites on an existing event.
type Patch struct {
	Location string `json:"location"`
	ShowAs   string `json:"showAs"`
}

// Operation is one planned calendar mutation. Event is populated for
// creates, EventID and Patch for updates, EventID for deletes.
type Operation struct {
	Type    OpType      `json:"type"`
	Key     holiday.Key `json:"key"`
	EventID string      `json:"event_id,omitempty"`
	Event   Event       `json:"-"`
	Patch   Patch       `json:"patch,omitempty"`
	Reason  string      `json:"reason"`
}

// Summary provides aggregate counts for a plan.
type Summary struct {
	// Holidays is the number of canonical holidays examined.
	Holidays int `json:"holidays"`

	// Creates counts planned event creations.
	Creates int `json:"creates"`

	// Updates counts planned location/status updates.
	Updates int `json:"updates"`

	// Deletes counts planned event deletions.
	Deletes int `json:"deletes"`

	// Unchanged counts holidays whose event already matches.
	Unchanged int `json:"unchanged"`
}

// Plan contains the ordered operations for one subject plus counts.
type Plan struct {
	Operations []Operation `json:"operations"`
	Summary    Summary     `json:"summary"`
}

// Options controls plan application.
type Options struct {
	// DryRun prevents execution of any mutation if true.
	DryRun bool
}

// Store is the calendar mutation surface a plan is applied against.
// Implementations wrap the actual calendar API; each mutation is assumed
// atomic at the store layer.
type Store interface {
	// CreateEvent creates an event on the subject's calendar and returns
	// the new event ID.
	CreateEvent(ctx context.Context, subjectID string, event Event) (string, error)
	// PatchEvent rewrites the location and free/busy status of an event.
	PatchEvent(ctx context.Context, subjectID, eventID string, patch Patch) error
	// DeleteEvent removes an event from the subject's calendar.
	DeleteEvent(ctx context.Context, subjectID, eventID string) error
}

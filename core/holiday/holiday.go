package holiday

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar date without a time-of-day component.
// It marshals to/from the "2006-01-02" form used by pack documents.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

const dateLayout = "2006-01-02"

// ParseDate parses a "2006-01-02" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight at the start of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Next returns the following calendar day.
func (d Date) Next() Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, 1))
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	return d.Time(time.UTC).Format(dateLayout)
}

// MarshalJSON encodes the date as a "2006-01-02" JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a "2006-01-02" JSON string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Holiday is a single holiday record. Inside a pack the Category field is
// empty and inherited from the pack during merge; after Combine it always
// carries the owning pack's category.
type Holiday struct {
	// Name is the holiday name, used as the calendar event subject.
	Name string `json:"name"`

	// Date is the calendar date the holiday falls on.
	Date Date `json:"date"`

	// Locations lists the office locations the holiday applies to.
	// An empty or absent list means the holiday applies everywhere.
	Locations []string `json:"location,omitempty"`

	// Category is the calendar category the holiday event is tagged with.
	Category string `json:"category,omitempty"`

	// Info is free-text placed in the event body.
	Info string `json:"info,omitempty"`

	// Remove marks the record as a removal: a matching calendar event is
	// deleted instead of created.
	Remove bool `json:"remove,omitempty"`

	// OutOfOffice controls whether the holiday may ever mark a subject as
	// out-of-office. Defaults to true when absent from the document.
	OutOfOffice bool `json:"outOfOffice"`
}

// UnmarshalJSON applies the outOfOffice=true default for records that omit
// the field.
func (h *Holiday) UnmarshalJSON(data []byte) error {
	type alias Holiday
	aux := alias{OutOfOffice: true}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*h = Holiday(aux)
	return nil
}

// Key identifies a holiday across packs. Two records with the same Key are
// the same holiday and have their locations merged.
type Key struct {
	Name string
	Date Date
}

// Key returns the canonical identity of the record.
func (h Holiday) Key() Key {
	return Key{Name: h.Name, Date: h.Date}
}

// Pack is one versioned holiday pack document. Packs are immutable once
// loaded; one pack corresponds to one object in the pack bucket.
type Pack struct {
	// ID is the opaque pack identifier, typically a UUID.
	ID string `json:"id"`

	// Category is the calendar category applied to every holiday in the pack.
	Category string `json:"category"`

	// Holidays is the ordered list of records. A nil list is a valid pack
	// contributing zero records.
	Holidays []Holiday `json:"holidays"`
}

// Validate checks a pack for records the merger would reject.
func (p Pack) Validate() error {
	for i, h := range p.Holidays {
		if h.Name == "" {
			return fmt.Errorf("%w: pack %s holiday %d has no name", ErrMalformedRecord, p.ID, i)
		}
		if h.Date.IsZero() {
			return fmt.Errorf("%w: pack %s holiday %q has no date", ErrMalformedRecord, p.ID, h.Name)
		}
	}
	return nil
}

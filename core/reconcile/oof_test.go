package reconcile

import (
	"testing"

	"holiday-manager/core/holiday"

	"github.com/stretchr/testify/assert"
)

func TestResolveOutOfOffice(t *testing.T) {
	tests := []struct {
		name    string
		holiday holiday.Holiday
		subject Subject
		want    bool
	}{
		{
			name:    "OfficeMatches",
			holiday: holiday.Holiday{Locations: []string{"LON"}, OutOfOffice: true},
			subject: Subject{OfficeLocation: "LON"},
			want:    true,
		},
		{
			name:    "CaseInsensitive",
			holiday: holiday.Holiday{Locations: []string{"lon"}, OutOfOffice: true},
			subject: Subject{OfficeLocation: "LON"},
			want:    true,
		},
		{
			name:    "CityMatches",
			holiday: holiday.Holiday{Locations: []string{"New York"}, OutOfOffice: true},
			subject: Subject{City: "new york"},
			want:    true,
		},
		{
			name:    "StateMatches",
			holiday: holiday.Holiday{Locations: []string{"Bavaria"}, OutOfOffice: true},
			subject: Subject{State: "Bavaria"},
			want:    true,
		},
		{
			name:    "CountryMatches",
			holiday: holiday.Holiday{Locations: []string{"France"}, OutOfOffice: true},
			subject: Subject{Country: "France"},
			want:    true,
		},
		{
			name:    "NoAttributeMatches",
			holiday: holiday.Holiday{Locations: []string{"LON"}, OutOfOffice: true},
			subject: Subject{OfficeLocation: "NYC", City: "New York", Country: "US"},
			want:    false,
		},
		{
			name:    "AllAttributesEmpty",
			holiday: holiday.Holiday{Locations: []string{"LON"}, OutOfOffice: true},
			subject: Subject{},
			want:    false,
		},
		{
			name:    "NoLocations",
			holiday: holiday.Holiday{OutOfOffice: true},
			subject: Subject{OfficeLocation: "LON"},
			want:    false,
		},
		{
			name:    "OutOfOfficeDisabled",
			holiday: holiday.Holiday{Locations: []string{"LON"}, OutOfOffice: false},
			subject: Subject{OfficeLocation: "LON"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOutOfOffice(tt.holiday, tt.subject))
		})
	}
}

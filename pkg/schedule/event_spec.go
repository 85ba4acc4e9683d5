package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/slotsync/slotsync/pkg/slot"
)

// exdateLayout is the local date-time form used for EXDATE entries.
const exdateLayout = "20060102T150405"

// EventSpec is one fully parameterized weekly recurring event, ready to hand
// to any calendar backend. It has no persistent identity; rebuilding the same
// batch yields an identical list.
type EventSpec struct {
	Summary     string `json:"summary"`
	Location    string `json:"location"`
	Description string `json:"description"`

	// Start and End are the first occurrence's instants in the named zone.
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	TimeZone string    `json:"timeZone"`

	// Day is the weekday the event recurs on.
	Day slot.Weekday `json:"weekday"`

	// RecurrenceRule is the weekly rule without the "RRULE:" prefix,
	// bounded by an UNTIL at the semester's end.
	RecurrenceRule string `json:"recurrenceRule"`

	// ExclusionDates are concrete instants, at this event's own clock time,
	// on which no occurrence fires.
	ExclusionDates []time.Time `json:"exclusionDates,omitempty"`

	// ReminderMinutes are popup-style minutes-before-start offsets.
	ReminderMinutes []int `json:"reminderMinutes,omitempty"`
}

// RecurrenceLines renders the recurrence in the RFC 5545 form calendar
// backends expect: an RRULE line plus, when exclusions exist, one EXDATE line
// carrying the zone id.
func (s EventSpec) RecurrenceLines() []string {
	lines := []string{"RRULE:" + s.RecurrenceRule}
	if len(s.ExclusionDates) > 0 {
		values := make([]string, 0, len(s.ExclusionDates))
		for _, d := range s.ExclusionDates {
			values = append(values, d.Format(exdateLayout))
		}
		lines = append(lines, fmt.Sprintf("EXDATE;TZID=%s:%s", s.TimeZone, strings.Join(values, ",")))
	}
	return lines
}

package sync

import (
	"fmt"
	"time"

	"github.com/slotsync/slotsync/pkg/schedule"
	"github.com/slotsync/slotsync/pkg/slot"
	"github.com/slotsync/slotsync/pkg/timetable"
)

const dateLayout = "2006-01-02"

// SyncRequest carries everything one batch run needs: the timetable rows, the
// semester bounds, and optionally a custom slot catalog and a target calendar
// name. Nothing in it is persisted.
type SyncRequest struct {
	Rows         []timetable.Row `json:"rows"`
	Semester     SemesterDTO     `json:"semester"`
	Catalog      *CatalogDTO     `json:"catalog,omitempty"`
	CalendarName string          `json:"calendarName,omitempty"`
}

type SemesterDTO struct {
	StartDate        string         `json:"startDate"`
	EndDate          string         `json:"endDate"`
	Timezone         string         `json:"timezone,omitempty"`
	ExclusionWindows []DateRangeDTO `json:"exclusionWindows,omitempty"`
	ReminderMinutes  []int          `json:"reminderMinutes,omitempty"`
}

type DateRangeDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// CatalogDTO is an optional per-request slot catalog replacing the built-in
// tables, e.g. for a semester with changed timings.
type CatalogDTO struct {
	Theory map[string][]slot.RawMeeting `json:"theory"`
	Lab    map[string][]slot.RawMeeting `json:"lab"`
}

// toConfig parses the wire form into a SemesterConfig, falling back to the
// service-wide default time zone when none is given.
func (d SemesterDTO) toConfig(defaultTimezone string) (schedule.SemesterConfig, error) {
	start, err := time.Parse(dateLayout, d.StartDate)
	if err != nil {
		return schedule.SemesterConfig{}, fmt.Errorf("invalid startDate %q: expected YYYY-MM-DD", d.StartDate)
	}
	end, err := time.Parse(dateLayout, d.EndDate)
	if err != nil {
		return schedule.SemesterConfig{}, fmt.Errorf("invalid endDate %q: expected YYYY-MM-DD", d.EndDate)
	}

	timezone := d.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}

	windows := make([]schedule.DateRange, 0, len(d.ExclusionWindows))
	for _, w := range d.ExclusionWindows {
		from, err := time.Parse(dateLayout, w.From)
		if err != nil {
			return schedule.SemesterConfig{}, fmt.Errorf("invalid exclusion window start %q: expected YYYY-MM-DD", w.From)
		}
		to, err := time.Parse(dateLayout, w.To)
		if err != nil {
			return schedule.SemesterConfig{}, fmt.Errorf("invalid exclusion window end %q: expected YYYY-MM-DD", w.To)
		}
		windows = append(windows, schedule.DateRange{From: from, To: to})
	}

	return schedule.SemesterConfig{
		StartDate:        start,
		EndDate:          end,
		Timezone:         timezone,
		ExclusionWindows: windows,
		ReminderMinutes:  d.ReminderMinutes,
	}, nil
}

// BatchResponse is the JSON result of a batch run.
type BatchResponse struct {
	Summary         schedule.Summary      `json:"summary"`
	Outcomes        []schedule.RowOutcome `json:"outcomes"`
	Specs           []schedule.EventSpec  `json:"specs,omitempty"`
	CatalogWarnings []string              `json:"catalogWarnings,omitempty"`
}

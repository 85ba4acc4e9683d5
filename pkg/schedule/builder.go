package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/slotsync/slotsync/pkg/slot"
	"github.com/slotsync/slotsync/pkg/timetable"
)

// Rows carrying these markers never produce events: embedded/no-credit
// project entries have no meetings, and NIL-ONL venues denote online
// placeholders.
const (
	embeddedProjectMarker = "EMBEDDED PROJECT"
	onlineVenueMarker     = "NIL-ONL"
)

var rruleWeekdays = [7]rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA, rrule.SU}

// Builder turns a timetable row plus its resolved meetings into recurring
// event specifications. One builder serves one batch; it precomputes the
// location, the recurrence end boundary, and the active reminder set.
type Builder struct {
	cfg       SemesterConfig
	loc       *time.Location
	until     time.Time
	reminders []int
}

// NewBuilder validates the semester configuration and prepares a builder.
func NewBuilder(cfg SemesterConfig) (*Builder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid semester config: %w", err)
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", cfg.Timezone, err)
	}

	// The end date is inclusive, so the recurrence runs until the last
	// moment of that day.
	end := cfg.EndDate
	until := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 0, loc)

	return &Builder{
		cfg:       cfg,
		loc:       loc,
		until:     until,
		reminders: cfg.activeReminders(),
	}, nil
}

// SkipRow reports whether the row is excluded by the business-rule filter,
// before any slot resolution happens. Skipping is not an error.
func (b *Builder) SkipRow(row timetable.Row) bool {
	if strings.Contains(strings.ToUpper(row.Course), embeddedProjectMarker) {
		return true
	}
	if strings.Contains(strings.ToUpper(row.Venue), onlineVenueMarker) {
		return true
	}
	return false
}

// Build emits one EventSpec per resolved meeting. All specs of a row share
// the same summary ("<Course> [<raw slot field>]"), location, and
// description. Rows the filter skips yield nil.
func (b *Builder) Build(row timetable.Row, meetings []slot.Meeting) ([]EventSpec, error) {
	row = row.Trimmed()
	if b.SkipRow(row) {
		return nil, nil
	}

	summary := fmt.Sprintf("%s [%s]", row.Course, row.Slot)

	specs := make([]EventSpec, 0, len(meetings))
	for _, meeting := range meetings {
		firstDate := FirstOnOrAfter(b.cfg.StartDate, meeting.Day)
		start := meeting.Start.On(firstDate, b.loc)
		end := meeting.End.On(firstDate, b.loc)

		rule, err := b.weeklyRule(meeting.Day)
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence rule for %s: %w", summary, err)
		}

		specs = append(specs, EventSpec{
			Summary:         summary,
			Location:        row.Venue,
			Description:     row.Faculty,
			Start:           start,
			End:             end,
			TimeZone:        b.cfg.Timezone,
			Day:             meeting.Day,
			RecurrenceRule:  rule,
			ExclusionDates:  b.exclusionDates(meeting.Start),
			ReminderMinutes: b.reminders,
		})
	}
	return specs, nil
}

// weeklyRule builds the RRULE body for a weekly recurrence on the given day,
// bounded by the semester end.
func (b *Builder) weeklyRule(day slot.Weekday) (string, error) {
	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rruleWeekdays[day]},
		Until:     b.until.UTC(),
	}
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", err
	}
	return opt.RRuleString(), nil
}

// exclusionDates expands every exclusion window to the event's own clock
// time, one entry per date in the window's inclusive range.
func (b *Builder) exclusionDates(at slot.TimeOfDay) []time.Time {
	var dates []time.Time
	for _, window := range b.cfg.ExclusionWindows {
		for d := window.From; !d.After(window.To); d = d.AddDate(0, 0, 1) {
			dates = append(dates, at.On(d, b.loc))
		}
	}
	return dates
}

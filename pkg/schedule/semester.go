package schedule

import (
	"fmt"
	"time"
)

// maxReminders is the most reminder offsets a semester configuration may carry.
const maxReminders = 3

// DateRange is a closed interval of calendar dates.
type DateRange struct {
	From time.Time
	To   time.Time
}

// SemesterConfig bounds the recurring events of one batch: the first day a
// recurrence may occur, the last day (inclusive), the named time zone attached
// to every event, break periods during which no occurrence fires, and the
// reminder offsets applied uniformly to every generated event.
type SemesterConfig struct {
	StartDate        time.Time
	EndDate          time.Time
	Timezone         string
	ExclusionWindows []DateRange
	ReminderMinutes  []int
}

// Validate checks the configuration before a batch run.
func (c SemesterConfig) Validate() error {
	if c.StartDate.IsZero() {
		return fmt.Errorf("semester start date is required")
	}
	if c.EndDate.IsZero() {
		return fmt.Errorf("semester end date is required")
	}
	if c.EndDate.Before(c.StartDate) {
		return fmt.Errorf("semester end date %s is before start date %s",
			c.EndDate.Format("2006-01-02"), c.StartDate.Format("2006-01-02"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	if len(c.ReminderMinutes) > maxReminders {
		return fmt.Errorf("at most %d reminders are allowed, got %d", maxReminders, len(c.ReminderMinutes))
	}
	for _, minutes := range c.ReminderMinutes {
		if minutes < 0 {
			return fmt.Errorf("reminder offset must not be negative, got %d", minutes)
		}
	}
	for _, w := range c.ExclusionWindows {
		if w.To.Before(w.From) {
			return fmt.Errorf("exclusion window ends %s before it starts %s",
				w.To.Format("2006-01-02"), w.From.Format("2006-01-02"))
		}
	}
	return nil
}

// activeReminders drops zero-valued offsets; a zero means "omit this
// reminder", not "fire immediately".
func (c SemesterConfig) activeReminders() []int {
	reminders := make([]int, 0, len(c.ReminderMinutes))
	for _, minutes := range c.ReminderMinutes {
		if minutes >= 1 {
			reminders = append(reminders, minutes)
		}
	}
	return reminders
}

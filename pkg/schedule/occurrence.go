package schedule

import (
	"time"

	"github.com/slotsync/slotsync/pkg/slot"
)

// FirstOnOrAfter returns the first calendar date on or after start that falls
// on the target weekday. The result is always within [start, start+6] days.
// Only the date part of start is significant.
func FirstOnOrAfter(start time.Time, target slot.Weekday) time.Time {
	delta := int(target) - int(slot.FromStd(start.Weekday()))
	if delta < 0 {
		delta += 7
	}
	return start.AddDate(0, 0, delta)
}

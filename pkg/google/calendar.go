package google

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/slotsync/slotsync/pkg/schedule"
	gcal "google.golang.org/api/calendar/v3"
)

// Calendar submits recurring event specifications to one Google calendar.
type Calendar struct {
	service    *gcal.Service
	calendarId string
}

func newCalendar(service *gcal.Service, calendarId string) *Calendar {
	return &Calendar{
		service:    service,
		calendarId: calendarId,
	}
}

// Id returns the Google calendar identifier events are inserted into.
func (c *Calendar) Id() string {
	return c.calendarId
}

// InsertRecurring creates one weekly recurring event from the spec and
// returns the created event's id.
func (c *Calendar) InsertRecurring(ctx context.Context, spec schedule.EventSpec) (string, error) {
	log.Debugf("Inserting recurring event %q into calendar %s", spec.Summary, c.calendarId)

	result, err := c.service.Events.Insert(c.calendarId, eventFromSpec(spec)).Context(ctx).Do()
	if err != nil {
		err := fmt.Errorf("unable to insert event in Google Calendar: %v", err)
		log.Error(err)
		return "", err
	}
	return result.Id, nil
}

// eventFromSpec maps an engine EventSpec onto the Google Calendar wire type.
func eventFromSpec(spec schedule.EventSpec) *gcal.Event {
	overrides := make([]*gcal.EventReminder, 0, len(spec.ReminderMinutes))
	for _, minutes := range spec.ReminderMinutes {
		overrides = append(overrides, &gcal.EventReminder{
			Method:  "popup",
			Minutes: int64(minutes),
		})
	}

	return &gcal.Event{
		Summary:     spec.Summary,
		Location:    spec.Location,
		Description: spec.Description,
		Start: &gcal.EventDateTime{
			DateTime: spec.Start.Format(time.RFC3339),
			TimeZone: spec.TimeZone,
		},
		End: &gcal.EventDateTime{
			DateTime: spec.End.Format(time.RFC3339),
			TimeZone: spec.TimeZone,
		},
		Recurrence: spec.RecurrenceLines(),
		Reminders: &gcal.EventReminders{
			UseDefault:      false,
			Overrides:       overrides,
			ForceSendFields: []string{"UseDefault"},
		},
	}
}

package ics

import (
	"fmt"

	ical "github.com/arran4/golang-ical"
	"github.com/slotsync/slotsync/pkg/schedule"
)

const utcLayout = "20060102T150405Z"

// Render serializes a batch's event specifications into an iCalendar
// document, as an offline alternative to submitting them to Google Calendar.
// Output is deterministic for identical input.
func Render(name string, specs []schedule.EventSpec) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//slotsync//timetable//EN")
	cal.SetXWRCalName(name)

	for i, spec := range specs {
		// Stable per-spec UID so re-rendering the same batch produces an
		// identical document.
		uid := fmt.Sprintf("%d-%s-%s@slotsync", i, spec.Day.Code(), spec.Start.UTC().Format(utcLayout))

		ev := cal.AddEvent(uid)
		ev.SetSummary(spec.Summary)
		if spec.Location != "" {
			ev.SetLocation(spec.Location)
		}
		if spec.Description != "" {
			ev.SetDescription(spec.Description)
		}
		ev.SetStartAt(spec.Start)
		ev.SetEndAt(spec.End)
		ev.AddRrule(spec.RecurrenceRule)
		for _, exdate := range spec.ExclusionDates {
			ev.AddExdate(exdate.UTC().Format(utcLayout))
		}
	}

	return cal.Serialize()
}

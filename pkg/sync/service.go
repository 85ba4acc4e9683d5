package sync

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/slotsync/slotsync/internal/config"
	"github.com/slotsync/slotsync/internal/event_bus"
	"github.com/slotsync/slotsync/pkg/google"
	"github.com/slotsync/slotsync/pkg/schedule"
	"github.com/slotsync/slotsync/pkg/slot"
)

// EventInserter creates one recurring event in a calendar backend.
type EventInserter interface {
	InsertRecurring(ctx context.Context, spec schedule.EventSpec) (string, error)
}

// CalendarGateway resolves a named calendar to an inserter. The Google
// implementation is the only one wired in; tests use stubs.
type CalendarGateway interface {
	EnsureCalendar(ctx context.Context, name string, timezone string) (EventInserter, error)
}

type googleGateway struct {
	service google.Service
}

// NewGoogleGateway adapts the Google calendar service to the gateway
// interface.
func NewGoogleGateway(service google.Service) CalendarGateway {
	return googleGateway{service: service}
}

func (g googleGateway) EnsureCalendar(ctx context.Context, name string, timezone string) (EventInserter, error) {
	cal, err := g.service.EnsureCalendar(ctx, name, timezone)
	if err != nil {
		return nil, err
	}
	return cal, nil
}

// Service runs timetable batches: the pure engine first, then (for a full
// sync) submission of the emitted specs to the calendar backend. Submission
// failures are folded back into the per-row outcomes.
type Service struct {
	gateway  CalendarGateway
	bus      *event_bus.EventBus
	catalog  *slot.Catalog
	defaults config.Schedule
}

func NewService(gateway CalendarGateway, bus *event_bus.EventBus, defaults config.Schedule) *Service {
	return &Service{
		gateway:  gateway,
		bus:      bus,
		catalog:  slot.DefaultCatalog(),
		defaults: defaults,
	}
}

// Preview runs the engine without touching any calendar backend and returns
// the emitted specs alongside the per-row outcomes.
func (s *Service) Preview(ctx context.Context, req SyncRequest) (schedule.BatchResult, []string, error) {
	return s.runBatch(ctx, req)
}

// SyncToGoogle runs the engine and then inserts every emitted spec into the
// requested Google calendar. A failed insert marks its row failed but does
// not stop the remaining inserts.
func (s *Service) SyncToGoogle(ctx context.Context, req SyncRequest) (schedule.BatchResult, []string, error) {
	result, catalogWarnings, err := s.runBatch(ctx, req)
	if err != nil {
		return schedule.BatchResult{}, nil, err
	}
	if len(result.Specs) == 0 {
		return result, catalogWarnings, nil
	}

	name := req.CalendarName
	if name == "" {
		name = s.defaults.CalendarName
	}
	timezone := req.Semester.Timezone
	if timezone == "" {
		timezone = s.defaults.Timezone
	}

	inserter, err := s.gateway.EnsureCalendar(ctx, name, timezone)
	if err != nil {
		return schedule.BatchResult{}, nil, fmt.Errorf("failed to prepare calendar %q: %w", name, err)
	}

	for i := range result.Outcomes {
		outcome := &result.Outcomes[i]
		for _, specIdx := range outcome.SpecIndexes {
			spec := result.Specs[specIdx]
			eventId, err := inserter.InsertRecurring(ctx, spec)
			if err != nil {
				log.Errorf("row %d (%s): failed to submit event: %v", outcome.Row, outcome.Course, err)
				outcome.Status = schedule.RowFailed
				outcome.Error = fmt.Sprintf("failed to submit event: %v", err)
				result.Success = false
				continue
			}
			s.publish(ctx, event_bus.EventSubmittedEvent, event_bus.EventSubmitted{
				Summary:    spec.Summary,
				CalendarId: name,
				EventId:    eventId,
			})
		}
	}

	return result, catalogWarnings, nil
}

// runBatch prepares the catalog and builder and runs the pure engine,
// publishing progress on the event bus as rows complete.
func (s *Service) runBatch(ctx context.Context, req SyncRequest) (schedule.BatchResult, []string, error) {
	cfg, err := req.Semester.toConfig(s.defaults.Timezone)
	if err != nil {
		return schedule.BatchResult{}, nil, err
	}

	catalog := s.catalog
	var catalogWarnings []string
	if req.Catalog != nil {
		catalog, catalogWarnings = slot.NewCatalogFromRaw(req.Catalog.Theory, req.Catalog.Lab)
	}

	builder, err := schedule.NewBuilder(cfg)
	if err != nil {
		return schedule.BatchResult{}, nil, err
	}

	progress := func(done, total, percent int) {
		s.publish(ctx, event_bus.SyncProgressEvent, event_bus.SyncProgress{
			RowsTotal: total,
			RowsDone:  done,
			Percent:   percent,
		})
	}

	result := schedule.RunBatch(req.Rows, catalog, builder, progress)
	return result, catalogWarnings, nil
}

func (s *Service) publish(ctx context.Context, eventType event_bus.EventType, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, data)); err != nil {
		log.Debugf("failed to publish %s event: %v", eventType, err)
	}
}

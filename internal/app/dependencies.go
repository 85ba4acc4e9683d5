package app

import (
	"context"
	"database/sql"

	log "github.com/sirupsen/logrus"
	"github.com/slotsync/slotsync/internal/config"
	"github.com/slotsync/slotsync/internal/event_bus"
	"github.com/slotsync/slotsync/internal/utils"
	"github.com/slotsync/slotsync/pkg/google"
	"github.com/slotsync/slotsync/pkg/sync"
	"github.com/slotsync/slotsync/pkg/timetable"
	"github.com/slotsync/slotsync/pkg/user"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	TimetableHandler *timetable.Handler

	SyncService *sync.Service
	SyncHandler *sync.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg, deps.Clock)
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.TimetableHandler = timetable.NewHandler()

	deps.SyncService = sync.NewService(sync.NewGoogleGateway(deps.GoogleService), deps.EventBus, cfg.Schedule)
	deps.SyncHandler = sync.NewHandler(deps.SyncService)

	// Progress is logged server-side; the UI receives it in the sync response.
	event_bus.SubscribeTyped(deps.EventBus, event_bus.SyncProgressEvent,
		func(_ context.Context, p event_bus.SyncProgress) error {
			log.Infof("sync progress: %d/%d rows (%d%%)", p.RowsDone, p.RowsTotal, p.Percent)
			return nil
		})

	return deps
}

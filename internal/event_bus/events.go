package event_bus

// Event types published by the sync pipeline.
const (
	SyncProgressEvent   EventType = "sync.progress"
	EventSubmittedEvent EventType = "sync.event_submitted"
)

// SyncProgress reports batch completion. Percent is monotonically
// non-decreasing and reaches 100 exactly once per batch.
type SyncProgress struct {
	RowsTotal int
	RowsDone  int
	Percent   int
}

// EventSubmitted is published after a recurring event has been accepted by the
// calendar backend.
type EventSubmitted struct {
	Summary    string
	CalendarId string
	EventId    string
}

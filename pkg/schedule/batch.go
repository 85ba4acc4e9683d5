package schedule

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/slotsync/slotsync/pkg/slot"
	"github.com/slotsync/slotsync/pkg/timetable"
)

// RowStatus classifies what happened to one timetable row.
type RowStatus string

const (
	// RowCompleted means every resolved meeting produced a spec.
	RowCompleted RowStatus = "completed"
	// RowSkipped means the business-rule filter excluded the row. Not a failure.
	RowSkipped RowStatus = "skipped"
	// RowWarning means resolution was partial or empty (unknown slot codes).
	RowWarning RowStatus = "warning"
	// RowFailed means building the row failed unexpectedly.
	RowFailed RowStatus = "failed"
)

// RowOutcome records the result for a single row.
type RowOutcome struct {
	Row         int       `json:"row"`
	Course      string    `json:"course"`
	Status      RowStatus `json:"status"`
	Warnings    []string  `json:"warnings,omitempty"`
	Error       string    `json:"error,omitempty"`
	SpecIndexes []int     `json:"specIndexes,omitempty"`
}

// BatchResult aggregates a full run: the emitted specs, one outcome per row,
// and the overall verdict. Success stays true through skips and warnings; only
// unexpected failures flip it.
type BatchResult struct {
	Specs    []EventSpec  `json:"specs"`
	Outcomes []RowOutcome `json:"outcomes"`
	Success  bool         `json:"success"`
}

// Summary condenses a BatchResult for reporting.
type Summary struct {
	Total     int  `json:"total"`
	Completed int  `json:"completed"`
	Skipped   int  `json:"skipped"`
	Warnings  int  `json:"warnings"`
	Failed    int  `json:"failed"`
	Success   bool `json:"success"`
}

func (r BatchResult) Summary() Summary {
	s := Summary{Total: len(r.Outcomes), Success: r.Success}
	for _, o := range r.Outcomes {
		switch o.Status {
		case RowCompleted:
			s.Completed++
		case RowSkipped:
			s.Skipped++
		case RowWarning:
			s.Warnings++
		case RowFailed:
			s.Failed++
		}
	}
	return s
}

// SpecBuilder is the per-row builder the driver invokes. *Builder is the real
// implementation; tests substitute stubs.
type SpecBuilder interface {
	SkipRow(row timetable.Row) bool
	Build(row timetable.Row, meetings []slot.Meeting) ([]EventSpec, error)
}

// ProgressFunc receives batch completion updates. percent is monotonically
// non-decreasing and reaches 100 exactly once, also for an empty batch.
type ProgressFunc func(done, total, percent int)

// RunBatch processes rows strictly in order. A failure in one row never
// prevents processing of subsequent rows; the driver is the single place
// where per-row errors (including panics) are caught and aggregated.
func RunBatch(rows []timetable.Row, catalog *slot.Catalog, builder SpecBuilder, progress ProgressFunc) BatchResult {
	result := BatchResult{Success: true}
	total := len(rows)

	report := func(done int) {
		if progress == nil {
			return
		}
		percent := 100
		if total > 0 {
			percent = done * 100 / total
		}
		progress(done, total, percent)
	}

	for i, raw := range rows {
		row := raw.Trimmed()
		outcome := RowOutcome{Row: i, Course: row.Course}

		if builder.SkipRow(row) {
			log.Debugf("row %d (%s): skipped by filter", i, row.Course)
			outcome.Status = RowSkipped
			result.Outcomes = append(result.Outcomes, outcome)
			report(i + 1)
			continue
		}

		specs, warnings, err := buildRow(row, catalog, builder)
		outcome.Warnings = warnings
		switch {
		case err != nil:
			log.Errorf("row %d (%s): %v", i, row.Course, err)
			outcome.Status = RowFailed
			outcome.Error = err.Error()
			result.Success = false
		case len(specs) == 0:
			// Already warned during classification.
			outcome.Status = RowWarning
		case len(warnings) > 0:
			outcome.Status = RowWarning
		default:
			outcome.Status = RowCompleted
		}

		for range specs {
			outcome.SpecIndexes = append(outcome.SpecIndexes, len(result.Specs)+len(outcome.SpecIndexes))
		}
		result.Specs = append(result.Specs, specs...)
		result.Outcomes = append(result.Outcomes, outcome)
		report(i + 1)
	}

	if total == 0 {
		report(0)
	}
	return result
}

// buildRow resolves and builds one row, converting any panic into a row-level
// error.
func buildRow(row timetable.Row, catalog *slot.Catalog, builder SpecBuilder) (specs []EventSpec, warnings []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			specs = nil
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	classification := slot.Classify(row.Slot, catalog)
	for _, miss := range classification.Misses {
		warnings = append(warnings, fmt.Sprintf("%s slot %q not found in catalog", classification.Kind, miss))
	}

	specs, err = builder.Build(row, classification.Meetings)
	return specs, warnings, err
}

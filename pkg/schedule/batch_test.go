package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slotsync/slotsync/pkg/slot"
	"github.com/slotsync/slotsync/pkg/timetable"
)

// stubSpecBuilder emits one empty spec per row and misbehaves on demand, keyed
// by course name.
type stubSpecBuilder struct {
	failCourse  string
	panicCourse string
}

func (s *stubSpecBuilder) SkipRow(row timetable.Row) bool {
	return false
}

func (s *stubSpecBuilder) Build(row timetable.Row, meetings []slot.Meeting) ([]EventSpec, error) {
	if row.Course == s.failCourse {
		return nil, errors.New("boom")
	}
	if row.Course == s.panicCourse {
		panic("unexpected state")
	}
	return []EventSpec{{Summary: row.Course}}, nil
}

func TestRunBatch(t *testing.T) {
	catalog := slot.DefaultCatalog()

	rows := func(courses ...string) []timetable.Row {
		out := make([]timetable.Row, 0, len(courses))
		for _, c := range courses {
			out = append(out, timetable.Row{Course: c, Slot: "A1", Venue: "AB1-101"})
		}
		return out
	}

	t.Run("failure in one row does not stop the batch", func(t *testing.T) {
		builder := &stubSpecBuilder{failCourse: "C3"}
		result := RunBatch(rows("C1", "C2", "C3", "C4", "C5"), catalog, builder, nil)

		assert.False(t, result.Success)
		require.Len(t, result.Outcomes, 5)
		require.Len(t, result.Specs, 4)

		assert.Equal(t, RowFailed, result.Outcomes[2].Status)
		assert.Contains(t, result.Outcomes[2].Error, "boom")
		assert.Empty(t, result.Outcomes[2].SpecIndexes)

		for _, i := range []int{0, 1, 3, 4} {
			assert.Equal(t, RowCompleted, result.Outcomes[i].Status, "row %d", i)
		}
		assert.Equal(t, []int{0}, result.Outcomes[0].SpecIndexes)
		assert.Equal(t, []int{1}, result.Outcomes[1].SpecIndexes)
		assert.Equal(t, []int{2}, result.Outcomes[3].SpecIndexes)
		assert.Equal(t, []int{3}, result.Outcomes[4].SpecIndexes)

		summary := result.Summary()
		assert.Equal(t, 5, summary.Total)
		assert.Equal(t, 4, summary.Completed)
		assert.Equal(t, 1, summary.Failed)
		assert.False(t, summary.Success)
	})

	t.Run("a panicking row is contained as a failure", func(t *testing.T) {
		builder := &stubSpecBuilder{panicCourse: "C2"}
		result := RunBatch(rows("C1", "C2", "C3"), catalog, builder, nil)

		assert.False(t, result.Success)
		require.Len(t, result.Outcomes, 3)
		assert.Equal(t, RowFailed, result.Outcomes[1].Status)
		assert.Contains(t, result.Outcomes[1].Error, "unexpected failure")
		assert.Equal(t, RowCompleted, result.Outcomes[0].Status)
		assert.Equal(t, RowCompleted, result.Outcomes[2].Status)
	})

	t.Run("filtered rows are skipped without building", func(t *testing.T) {
		builder, err := NewBuilder(testSemesterConfig())
		require.NoError(t, err)

		input := []timetable.Row{
			{Course: "CSE1001", Slot: "A1", Venue: "AB1-101"},
			{Course: "Embedded Project", Slot: "NIL", Venue: "AB1-102"},
			{Course: "CSE1002", Slot: "B1", Venue: "NIL-ONL"},
		}
		result := RunBatch(input, catalog, builder, nil)

		assert.True(t, result.Success)
		require.Len(t, result.Outcomes, 3)
		assert.Equal(t, RowCompleted, result.Outcomes[0].Status)
		assert.Equal(t, RowSkipped, result.Outcomes[1].Status)
		assert.Equal(t, RowSkipped, result.Outcomes[2].Status)
	})

	t.Run("unknown slot codes warn but do not fail", func(t *testing.T) {
		builder, err := NewBuilder(testSemesterConfig())
		require.NoError(t, err)

		input := []timetable.Row{
			{Course: "CSE1003", Slot: "L99", Venue: "AB1-103"},
			{Course: "CSE1004", Slot: "A1+Z9", Venue: "AB1-104"},
		}
		result := RunBatch(input, catalog, builder, nil)

		assert.True(t, result.Success)
		require.Len(t, result.Outcomes, 2)

		assert.Equal(t, RowWarning, result.Outcomes[0].Status)
		assert.Empty(t, result.Outcomes[0].SpecIndexes)
		require.Len(t, result.Outcomes[0].Warnings, 1)
		assert.Contains(t, result.Outcomes[0].Warnings[0], "L99")

		assert.Equal(t, RowWarning, result.Outcomes[1].Status)
		assert.NotEmpty(t, result.Outcomes[1].SpecIndexes)
	})

	t.Run("progress is monotonic and ends at 100", func(t *testing.T) {
		builder := &stubSpecBuilder{}
		var percents []int
		RunBatch(rows("C1", "C2", "C3", "C4", "C5"), catalog, builder, func(done, total, percent int) {
			assert.Equal(t, 5, total)
			percents = append(percents, percent)
		})

		require.Len(t, percents, 5)
		for i := 1; i < len(percents); i++ {
			assert.GreaterOrEqual(t, percents[i], percents[i-1])
		}
		assert.Equal(t, 100, percents[len(percents)-1])
		assert.Equal(t, 1, countOf(percents, 100))
	})

	t.Run("empty batch reports 100 once and succeeds", func(t *testing.T) {
		builder := &stubSpecBuilder{}
		var calls int
		result := RunBatch(nil, catalog, builder, func(done, total, percent int) {
			calls++
			assert.Equal(t, 0, done)
			assert.Equal(t, 0, total)
			assert.Equal(t, 100, percent)
		})

		assert.Equal(t, 1, calls)
		assert.True(t, result.Success)
		assert.Empty(t, result.Specs)
		assert.Empty(t, result.Outcomes)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		builder, err := NewBuilder(SemesterConfig{
			StartDate: time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC),
			Timezone:  "Asia/Kolkata",
			ExclusionWindows: []DateRange{{
				From: time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			}},
			ReminderMinutes: []int{10},
		})
		require.NoError(t, err)

		input := []timetable.Row{
			{Course: "CSE1001", Slot: "A1+TA1", Venue: "AB1-101", Faculty: "Prof. Rao"},
			{Course: "CSE1002", Slot: "L1+L2", Venue: "AB1-LAB", Faculty: "Prof. Iyer"},
		}
		first := RunBatch(input, catalog, builder, nil)
		second := RunBatch(input, catalog, builder, nil)
		assert.Equal(t, first, second)
	})
}

func countOf(values []int, target int) int {
	n := 0
	for _, v := range values {
		if v == target {
			n++
		}
	}
	return n
}

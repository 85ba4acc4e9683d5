package timetable

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Run("parses rows with trimmed fields", func(t *testing.T) {
		input := "Course,Slot,Venue,Faculty Details\n" +
			"CSE1001 - Intro , A1+TA1 , AB1-101 , Prof. Rao\n" +
			"CSE1002 - Lab,L1+L2,AB1-LAB,Prof. Iyer\n"

		rows, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, Row{
			Course:  "CSE1001 - Intro",
			Slot:    "A1+TA1",
			Venue:   "AB1-101",
			Faculty: "Prof. Rao",
		}, rows[0])
	})

	t.Run("header matching is case-insensitive and order-independent", func(t *testing.T) {
		input := "VENUE,faculty details,COURSE,slot\n" +
			"AB1-101,Prof. Rao,CSE1001,A1\n"

		rows, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "CSE1001", rows[0].Course)
		assert.Equal(t, "A1", rows[0].Slot)
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		input := "Course,Slot,Venue,Faculty Details,Credits\n" +
			"CSE1001,A1,AB1-101,Prof. Rao,4\n"

		rows, err := ParseCSV(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, rows, 1)
	})

	t.Run("missing column is an error", func(t *testing.T) {
		input := "Course,Slot,Venue\nCSE1001,A1,AB1-101\n"
		_, err := ParseCSV(strings.NewReader(input))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "faculty details")
	})

	t.Run("empty input is an error", func(t *testing.T) {
		_, err := ParseCSV(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("header only yields no rows", func(t *testing.T) {
		rows, err := ParseCSV(strings.NewReader("Course,Slot,Venue,Faculty Details\n"))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

package timetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Column headers expected in an uploaded timetable CSV. Matching is
// case-insensitive and whitespace around header names is ignored.
const (
	columnCourse  = "course"
	columnSlot    = "slot"
	columnVenue   = "venue"
	columnFaculty = "faculty details"
)

// ParseCSV reads timetable rows from CSV data. The first record must be a
// header naming the four expected columns in any order; extra columns are
// ignored. Field values are trimmed.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{columnCourse, columnSlot, columnVenue, columnFaculty} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}
		row := Row{
			Course:  record[columns[columnCourse]],
			Slot:    record[columns[columnSlot]],
			Venue:   record[columns[columnVenue]],
			Faculty: record[columns[columnFaculty]],
		}
		rows = append(rows, row.Trimmed())
	}

	return rows, nil
}

package timetable

import "strings"

// Row is one line of an uploaded timetable: a course, its raw slot field
// (possibly combining several theory codes with "+", or one compound lab
// key), the venue, and the faculty details.
type Row struct {
	Course  string `json:"course"`
	Slot    string `json:"slot"`
	Venue   string `json:"venue"`
	Faculty string `json:"facultyDetails"`
}

// Trimmed returns a copy with insignificant leading/trailing whitespace
// removed from every field.
func (r Row) Trimmed() Row {
	return Row{
		Course:  strings.TrimSpace(r.Course),
		Slot:    strings.TrimSpace(r.Slot),
		Venue:   strings.TrimSpace(r.Venue),
		Faculty: strings.TrimSpace(r.Faculty),
	}
}

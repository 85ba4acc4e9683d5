package slot

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// RawMeeting is the string form a custom catalog arrives in: a two-letter
// weekday code and fixed-format HH:MM times.
type RawMeeting struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewCatalogFromRaw builds a catalog from string tables, e.g. a per-semester
// catalog supplied with a sync request. A malformed triple is skipped with a
// warning rather than failing the whole catalog; the returned warnings
// identify every skipped triple.
func NewCatalogFromRaw(theory, lab map[string][]RawMeeting) (*Catalog, []string) {
	var warnings []string

	convert := func(kind string, code string, raw []RawMeeting) []Meeting {
		meetings := make([]Meeting, 0, len(raw))
		for _, rm := range raw {
			meeting, err := parseRawMeeting(rm)
			if err != nil {
				warning := fmt.Sprintf("%s slot %q: %v", kind, code, err)
				log.Warn(warning)
				warnings = append(warnings, warning)
				continue
			}
			meetings = append(meetings, meeting)
		}
		return meetings
	}

	theoryTable := make(map[string][]Meeting, len(theory))
	for code, raw := range theory {
		theoryTable[code] = convert("theory", code, raw)
	}
	labTable := make(map[string][]Meeting, len(lab))
	for code, raw := range lab {
		labTable[code] = convert("lab", code, raw)
	}

	return NewCatalog(theoryTable, labTable), warnings
}

func parseRawMeeting(rm RawMeeting) (Meeting, error) {
	day, err := ParseWeekdayCode(rm.Day)
	if err != nil {
		return Meeting{}, err
	}
	start, err := ParseTimeOfDay(rm.Start)
	if err != nil {
		return Meeting{}, err
	}
	end, err := ParseTimeOfDay(rm.End)
	if err != nil {
		return Meeting{}, err
	}
	if !start.Before(end) {
		return Meeting{}, fmt.Errorf("start %s is not before end %s", start, end)
	}
	return Meeting{Day: day, Start: start, End: end}, nil
}

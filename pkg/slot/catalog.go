package slot

import (
	"fmt"
	"strings"
)

// Meeting is one weekly occurrence pattern of a slot: a weekday plus a
// wall-clock start and end. Start is always before End.
type Meeting struct {
	Day   Weekday
	Start TimeOfDay
	End   TimeOfDay
}

// Catalog maps slot codes to their weekly meetings. Theory codes are atomic
// (e.g. "A1"); lab codes are compound and matched as a whole (e.g. "L1+L2").
// Keys are canonicalized to uppercase at construction and the catalog is not
// mutated afterwards, so concurrent lookups are safe.
type Catalog struct {
	theory map[string][]Meeting
	lab    map[string][]Meeting
}

// NewCatalog builds a catalog from theory and lab tables. Keys are
// case-insensitive; meeting order within a slot is preserved.
func NewCatalog(theory, lab map[string][]Meeting) *Catalog {
	c := &Catalog{
		theory: make(map[string][]Meeting, len(theory)),
		lab:    make(map[string][]Meeting, len(lab)),
	}
	for code, meetings := range theory {
		c.theory[strings.ToUpper(code)] = meetings
	}
	for code, meetings := range lab {
		c.lab[strings.ToUpper(code)] = meetings
	}
	return c
}

// LookupTheory resolves an atomic theory slot code. A missing key is not an
// error at this layer; callers decide how to react.
func (c *Catalog) LookupTheory(code string) ([]Meeting, bool) {
	meetings, ok := c.theory[strings.ToUpper(code)]
	return meetings, ok
}

// LookupLab resolves a compound lab slot key.
func (c *Catalog) LookupLab(code string) ([]Meeting, bool) {
	meetings, ok := c.lab[strings.ToUpper(code)]
	return meetings, ok
}

// hasLab reports whether the key exists in the lab table.
func (c *Catalog) hasLab(code string) bool {
	_, ok := c.lab[strings.ToUpper(code)]
	return ok
}

// m builds a Meeting from a weekday code and HH:MM strings. It panics on bad
// input, which is acceptable only because it is used for the static tables
// below.
func m(dayCode, start, end string) Meeting {
	day, err := ParseWeekdayCode(dayCode)
	if err != nil {
		panic(err)
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	if !s.Before(e) {
		panic(fmt.Sprintf("slot meeting %s %s-%s: start must be before end", dayCode, start, end))
	}
	return Meeting{Day: day, Start: s, End: e}
}

// defaultTheory is the VIT-AP theory slot grid. Full slots (A1..G1, A2..G2)
// meet twice a week; the T-prefixed companion slots meet once.
var defaultTheory = map[string][]Meeting{
	// Morning half.
	"A1": {m("TU", "09:00", "09:50"), m("SA", "12:00", "12:50")},
	"B1": {m("WE", "09:00", "09:50"), m("SA", "11:00", "11:50")},
	"C1": {m("TH", "09:00", "09:50"), m("SA", "10:00", "10:50")},
	"D1": {m("FR", "09:00", "09:50"), m("MO", "11:00", "11:50")},
	"E1": {m("MO", "09:00", "09:50"), m("TH", "11:00", "11:50")},
	"F1": {m("MO", "10:00", "10:50"), m("WE", "11:00", "11:50")},
	"G1": {m("TU", "11:00", "11:50"), m("FR", "10:00", "10:50")},

	"TA1": {m("MO", "12:00", "12:50")},
	"TB1": {m("TU", "12:00", "12:50")},
	"TC1": {m("WE", "12:00", "12:50")},
	"TD1": {m("TH", "12:00", "12:50")},
	"TE1": {m("FR", "12:00", "12:50")},
	"TF1": {m("TU", "10:00", "10:50")},
	"TG1": {m("TH", "10:00", "10:50")},

	// Afternoon half.
	"A2": {m("TU", "15:00", "15:50"), m("SA", "16:00", "16:50")},
	"B2": {m("WE", "15:00", "15:50"), m("SA", "17:00", "17:50")},
	"C2": {m("TH", "15:00", "15:50"), m("SA", "14:00", "14:50")},
	"D2": {m("FR", "15:00", "15:50"), m("MO", "17:00", "17:50")},
	"E2": {m("MO", "15:00", "15:50"), m("TH", "17:00", "17:50")},
	"F2": {m("MO", "16:00", "16:50"), m("WE", "17:00", "17:50")},
	"G2": {m("TU", "17:00", "17:50"), m("FR", "16:00", "16:50")},

	"TA2": {m("MO", "14:00", "14:50")},
	"TB2": {m("TU", "14:00", "14:50")},
	"TC2": {m("WE", "14:00", "14:50")},
	"TD2": {m("TH", "14:00", "14:50")},
	"TE2": {m("FR", "14:00", "14:50")},
	"TF2": {m("TU", "16:00", "16:50")},
	"TG2": {m("TH", "16:00", "16:50")},
}

// defaultLab is the VIT-AP lab slot grid. Lab sessions span two nominal
// periods, so every key is a compound of two period numbers; the individual
// period numbers (L1, L2, ...) are not keys themselves. L1-L30 are morning
// periods, L31 upwards afternoon.
var defaultLab = map[string][]Meeting{
	"L1+L2":   {m("MO", "08:00", "09:40")},
	"L3+L4":   {m("MO", "10:00", "11:40")},
	"L5+L6":   {m("TU", "08:00", "09:40")},
	"L7+L8":   {m("TU", "10:00", "11:40")},
	"L9+L10":  {m("WE", "08:00", "09:40")},
	"L11+L12": {m("WE", "10:00", "11:40")},
	"L13+L14": {m("TH", "08:00", "09:40")},
	"L15+L16": {m("TH", "10:00", "11:40")},
	"L17+L18": {m("FR", "08:00", "09:40")},
	"L19+L20": {m("FR", "10:00", "11:40")},

	"L31+L32": {m("MO", "14:00", "15:40")},
	"L33+L34": {m("MO", "16:00", "17:40")},
	"L35+L36": {m("TU", "14:00", "15:40")},
	"L37+L38": {m("TU", "16:00", "17:40")},
	"L39+L40": {m("WE", "14:00", "15:40")},
	"L41+L42": {m("WE", "16:00", "17:40")},
	"L43+L44": {m("TH", "14:00", "15:40")},
	"L45+L46": {m("TH", "16:00", "17:40")},
	"L47+L48": {m("FR", "14:00", "15:40")},
	"L49+L50": {m("FR", "16:00", "17:40")},
}

// DefaultCatalog returns a catalog populated with the built-in VIT-AP slot
// tables. The catalog can be swapped per semester without touching the
// classifier.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultTheory, defaultLab)
}

package slot

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

// Kind distinguishes the two families of slot codes.
type Kind int

const (
	Theory Kind = iota
	Lab
)

func (k Kind) String() string {
	if k == Lab {
		return "lab"
	}
	return "theory"
}

// Classification is the result of resolving a raw slot field against a
// catalog. For a lab field Keys holds exactly one compound key; for a theory
// field it holds every token that resolved. Meetings are the resolved weekly
// meetings in token order, then catalog order. Misses lists the codes that
// were not found; a miss is a warning, not an error.
type Classification struct {
	Kind     Kind
	Keys     []string
	Meetings []Meeting
	Misses   []string
}

// Classify decides whether a raw slot field denotes a lab or theory slot and
// resolves it against the catalog.
//
// The whole field is tried against the lab table first because lab keys are
// compound ("L31+L32") and their individual legs are not valid keys. Failing
// that, the first token that is a lab key or starts with "L" makes the field
// a lab keyed by that token. Anything else is a combination of independent
// theory codes, resolved token by token.
func Classify(field string, catalog *Catalog) Classification {
	tokens := splitTokens(field)

	wholeField := strings.ToUpper(strings.TrimSpace(field))
	if catalog.hasLab(wholeField) {
		return classifyLab(wholeField, catalog)
	}

	for _, tok := range tokens {
		if catalog.hasLab(tok) || strings.HasPrefix(tok, "L") {
			return classifyLab(tok, catalog)
		}
	}

	c := Classification{Kind: Theory}
	for _, tok := range tokens {
		meetings, ok := catalog.LookupTheory(tok)
		if !ok {
			log.Warnf("theory slot %q not found in catalog, skipping token", tok)
			c.Misses = append(c.Misses, tok)
			continue
		}
		c.Keys = append(c.Keys, tok)
		c.Meetings = append(c.Meetings, meetings...)
	}
	return c
}

func classifyLab(key string, catalog *Catalog) Classification {
	c := Classification{Kind: Lab, Keys: []string{key}}
	meetings, ok := catalog.LookupLab(key)
	if !ok {
		// An unresolvable lab key fails the whole field: there is no
		// per-token fallback for compound keys.
		log.Warnf("lab slot %q not found in catalog, skipping row", key)
		c.Misses = append(c.Misses, key)
		return c
	}
	c.Meetings = meetings
	return c
}

// splitTokens splits a slot field on "+", trims and uppercases each token,
// and drops empty ones.
func splitTokens(field string) []string {
	parts := strings.Split(field, "+")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		tok := strings.ToUpper(strings.TrimSpace(p))
		if tok == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// ABOUTME: Time utility functions for displaying article publish dates
// ABOUTME: Formatting is fallible by design of the feed data and always falls back to the raw value

package timeutil

import (
	"strings"
	"time"
	_ "time/tzdata" // display zones must resolve on hosts without a zoneinfo database
)

// DisplayLayout renders a medium date with a short time, e.g. "Mar 1, 2024, 5:00 PM"
const DisplayLayout = "Jan 2, 2006, 3:04 PM"

// layouts accepted for publish timestamps, tried in order
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// LoadZone resolves an IANA zone name, falling back to UTC when unknown
func LoadZone(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParsePublished parses a provider timestamp.
// Returns false for empty or unrecognized input.
func ParsePublished(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatPublished renders raw in loc using DisplayLayout.
// If raw is missing or unparsable the raw string is returned verbatim.
func FormatPublished(raw string, loc *time.Location) (formatted string) {
	defer func() {
		if recover() != nil {
			formatted = raw
		}
	}()

	t, ok := ParsePublished(raw)
	if !ok {
		return raw
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DisplayLayout)
}

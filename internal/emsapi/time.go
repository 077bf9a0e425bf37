package emsapi

import "time"

// timestamp layouts seen on the wire, in order of preference.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// parseTimestamp parses an ISO-8601 wire timestamp. Unparseable or empty
// values map to the zero time; timestamps never fail a DTO conversion.
func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseOptionalTimestamp is parseTimestamp for nullable wire fields.
func parseOptionalTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTimestamp(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

// Package dateutils provides timestamp parsing for transcript dates.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Timestamp layouts found in Telegram exports. Exports written by the
// desktop client carry no timezone; some tooling re-exports them as
// full RFC 3339.
var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 message timestamp, trying each
// known layout in order.
func ParseTimestamp(value string) (time.Time, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s", value)
}

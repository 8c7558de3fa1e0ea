package ingest

import (
	"fmt"
	"time"
)

// Accepted textual date layouts, first match wins. Uploaded batches mix
// ISO and day-first forms, with or without a time component.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"02-01-2006 15:04:05",
	"02/01/2006 15:04:05",
}

// ParseDate converts a textual date into a UTC time, trying each accepted
// layout in order.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("date format not recognized: %s", value)
}

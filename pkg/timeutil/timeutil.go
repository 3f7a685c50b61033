package timeutil

import (
	"fmt"
	"math"
	"time"
)

// isoLayout matches zone-less ISO-8601 timestamps found in history files
// written by older versions of the monitor.
const isoLayout = "2006-01-02T15:04:05.999999999"

// Parse returns a time from the provided string or an error.
func Parse(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time value")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(isoLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time: %w", err)
	}
	return t, nil
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

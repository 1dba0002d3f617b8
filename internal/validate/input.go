// Package validate cleans and checks raw API payloads before they reach the
// services. Every entry point collects all field errors instead of stopping
// at the first, so a client can fix a whole payload in one round trip.
package validate

import (
	"strings"
	"time"
)

// UserInput is the raw user payload. Pointer fields distinguish "absent"
// from zero values, which is what partial validation keys on.
type UserInput struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Age    *int     `json:"age"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`
}

// ActivityInput is the raw activity payload. Timestamps arrive as strings
// and are normalized to UTC during validation.
type ActivityInput struct {
	UserID         *int64   `json:"userId"`
	Type           *string  `json:"type"`
	Duration       *int     `json:"duration"`
	Distance       *float64 `json:"distance"`
	CaloriesBurned *float64 `json:"caloriesBurned"`
	HeartRate      *int     `json:"heartRate"`
	StartTime      *string  `json:"startTime"`
	EndTime        *string  `json:"endTime"`
	Notes          *string  `json:"notes"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime accepts the handful of timestamp shapes clients actually send
// and normalizes them to a canonical UTC instant at second precision.
func parseTime(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Second), true
		}
	}
	return time.Time{}, false
}

package validate

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"fittrack/internal/domain"
)

// ActivityPatch is the sanitized output of activity validation, with
// timestamps already normalized to UTC.
type ActivityPatch struct {
	UserID         *int64
	Type           *string
	Duration       *int
	Distance       *float64
	CaloriesBurned *float64
	HeartRate      *int
	StartTime      *time.Time
	EndTime        *time.Time
	Notes          *string
}

type ActivityResult struct {
	Valid  bool
	Errors []string
	Data   ActivityPatch
}

// Activity validates a raw activity payload. In full mode userId, type,
// duration and startTime are required. The endTime-before-startTime rule is
// checked here only when both timestamps are part of the same input; the
// merged record is re-checked by ActivityRecord.
func Activity(in ActivityInput, partial bool) ActivityResult {
	var errs []string
	var data ActivityPatch

	if !partial || in.UserID != nil {
		if in.UserID == nil || *in.UserID <= 0 {
			errs = append(errs, "userId must be a positive integer")
		} else {
			id := *in.UserID
			data.UserID = &id
		}
	}

	if !partial || in.Type != nil {
		t := ""
		if in.Type != nil {
			t = strings.TrimSpace(*in.Type)
		}
		if !slices.Contains(domain.ActivityTypes(), t) {
			errs = append(errs, fmt.Sprintf("invalid activity type, use one of: %s", strings.Join(domain.ActivityTypes(), ", ")))
		} else {
			data.Type = &t
		}
	}

	if !partial || in.Duration != nil {
		if in.Duration == nil || *in.Duration <= 0 {
			errs = append(errs, "duration must be a positive integer of minutes")
		} else {
			d := *in.Duration
			data.Duration = &d
		}
	}

	if !partial || in.StartTime != nil {
		start := time.Time{}
		ok := false
		if in.StartTime != nil {
			start, ok = parseTime(*in.StartTime)
		}
		if !ok {
			errs = append(errs, "startTime is invalid")
		} else {
			data.StartTime = &start
		}
	}

	if in.EndTime != nil {
		if end, ok := parseTime(*in.EndTime); ok {
			data.EndTime = &end
		} else {
			errs = append(errs, "endTime is invalid")
		}
	}

	if in.Distance != nil {
		if *in.Distance < 0 {
			errs = append(errs, "distance must be a non-negative number")
		} else {
			d := *in.Distance
			data.Distance = &d
		}
	}

	if in.CaloriesBurned != nil {
		if *in.CaloriesBurned < 0 {
			errs = append(errs, "caloriesBurned must be a non-negative number")
		} else {
			c := *in.CaloriesBurned
			data.CaloriesBurned = &c
		}
	}

	if in.HeartRate != nil {
		if *in.HeartRate < 0 {
			errs = append(errs, "heartRate must be a non-negative integer")
		} else {
			hr := *in.HeartRate
			data.HeartRate = &hr
		}
	}

	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		data.Notes = &notes
	}

	if data.StartTime != nil && data.EndTime != nil && data.EndTime.Before(*data.StartTime) {
		errs = append(errs, "endTime cannot be earlier than startTime")
	}

	return ActivityResult{Valid: len(errs) == 0, Errors: errs, Data: data}
}

// ActivityRecord runs the full rule set against a complete record, including
// the cross-field ordering rule a merge can introduce.
func ActivityRecord(a domain.Activity) []string {
	var errs []string
	if a.UserID <= 0 {
		errs = append(errs, "userId must be a positive integer")
	}
	if !slices.Contains(domain.ActivityTypes(), a.Type) {
		errs = append(errs, fmt.Sprintf("invalid activity type, use one of: %s", strings.Join(domain.ActivityTypes(), ", ")))
	}
	if a.Duration <= 0 {
		errs = append(errs, "duration must be a positive integer of minutes")
	}
	if a.StartTime.IsZero() {
		errs = append(errs, "startTime is invalid")
	}
	if a.Distance < 0 {
		errs = append(errs, "distance must be a non-negative number")
	}
	if a.CaloriesBurned < 0 {
		errs = append(errs, "caloriesBurned must be a non-negative number")
	}
	if a.HeartRate != nil && *a.HeartRate < 0 {
		errs = append(errs, "heartRate must be a non-negative integer")
	}
	if a.EndTime != nil && !a.StartTime.IsZero() && a.EndTime.Before(a.StartTime) {
		errs = append(errs, "endTime cannot be earlier than startTime")
	}
	return errs
}

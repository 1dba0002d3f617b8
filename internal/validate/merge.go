package validate

import (
	"time"

	"fittrack/internal/domain"
)

// MergeUser lays a sanitized patch over an existing record and returns the
// result as a new value. Only the patched fields change; id and createdAt
// are never touched.
func MergeUser(existing domain.User, p UserPatch) domain.User {
	out := existing
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Age != nil {
		age := *p.Age
		out.Age = &age
	}
	if p.Weight != nil {
		weight := *p.Weight
		out.Weight = &weight
	}
	if p.Height != nil {
		height := *p.Height
		out.Height = &height
	}
	return out
}

// MergeActivity lays a sanitized patch over an existing activity. Derived
// fields already stored on the record survive unless the patch replaces them.
func MergeActivity(existing domain.Activity, p ActivityPatch) domain.Activity {
	out := existing
	out.User = nil
	if p.UserID != nil {
		out.UserID = *p.UserID
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Duration != nil {
		out.Duration = *p.Duration
	}
	if p.Distance != nil {
		out.Distance = *p.Distance
	}
	if p.CaloriesBurned != nil {
		out.CaloriesBurned = *p.CaloriesBurned
	}
	if p.HeartRate != nil {
		hr := *p.HeartRate
		out.HeartRate = &hr
	}
	if p.StartTime != nil {
		out.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		end := *p.EndTime
		out.EndTime = &end
	}
	if p.Notes != nil {
		notes := *p.Notes
		out.Notes = &notes
	}
	return out
}

// InferEndTime keeps the explicit end when given, otherwise projects
// startTime forward by the session duration.
func InferEndTime(start time.Time, durationMinutes int, end *time.Time) *time.Time {
	if end != nil {
		return end
	}
	if start.IsZero() || durationMinutes <= 0 {
		return nil
	}
	inferred := start.Add(time.Duration(durationMinutes) * time.Minute)
	return &inferred
}

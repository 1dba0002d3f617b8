package validate

import (
	"regexp"
	"strings"

	"fittrack/internal/domain"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	MinAge    = 1
	MaxAge    = 150
	MinWeight = 1
	MaxWeight = 500
	MinHeight = 50
	MaxHeight = 300
)

// UserPatch is the sanitized output of user validation. In partial mode only
// fields present in the input are set.
type UserPatch struct {
	Name   *string
	Email  *string
	Age    *int
	Weight *float64
	Height *float64
}

type UserResult struct {
	Valid  bool
	Errors []string
	Data   UserPatch
}

// User validates a raw user payload. In full mode name and email are
// required; age, weight and height are optional in both modes but must be in
// range when present.
func User(in UserInput, partial bool) UserResult {
	var errs []string
	var data UserPatch

	if !partial || in.Name != nil {
		name := ""
		if in.Name != nil {
			name = strings.TrimSpace(*in.Name)
		}
		if len([]rune(name)) < 2 {
			errs = append(errs, "name must be at least 2 characters")
		} else {
			data.Name = &name
		}
	}

	if !partial || in.Email != nil {
		email := ""
		if in.Email != nil {
			email = strings.ToLower(strings.TrimSpace(*in.Email))
		}
		if !emailRe.MatchString(email) {
			errs = append(errs, "email is invalid")
		} else {
			data.Email = &email
		}
	}

	if in.Age != nil {
		if *in.Age < MinAge || *in.Age > MaxAge {
			errs = append(errs, "age must be between 1 and 150")
		} else {
			age := *in.Age
			data.Age = &age
		}
	}

	if in.Weight != nil {
		if *in.Weight < MinWeight || *in.Weight > MaxWeight {
			errs = append(errs, "weight must be between 1 and 500 kg")
		} else {
			weight := *in.Weight
			data.Weight = &weight
		}
	}

	if in.Height != nil {
		if *in.Height < MinHeight || *in.Height > MaxHeight {
			errs = append(errs, "height must be between 50 and 300 cm")
		} else {
			height := *in.Height
			data.Height = &height
		}
	}

	return UserResult{Valid: len(errs) == 0, Errors: errs, Data: data}
}

// UserRecord runs the full rule set against a complete record, catching
// anything a partial-update merge could have left inconsistent.
func UserRecord(u domain.User) []string {
	var errs []string
	if len([]rune(strings.TrimSpace(u.Name))) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}
	if !emailRe.MatchString(u.Email) {
		errs = append(errs, "email is invalid")
	}
	if u.Age != nil && (*u.Age < MinAge || *u.Age > MaxAge) {
		errs = append(errs, "age must be between 1 and 150")
	}
	if u.Weight != nil && (*u.Weight < MinWeight || *u.Weight > MaxWeight) {
		errs = append(errs, "weight must be between 1 and 500 kg")
	}
	if u.Height != nil && (*u.Height < MinHeight || *u.Height > MaxHeight) {
		errs = append(errs, "height must be between 50 and 300 cm")
	}
	return errs
}

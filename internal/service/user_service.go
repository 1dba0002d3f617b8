// Package service holds the orchestration between validation, the metrics
// calculator and the repositories: validate, resolve references, fill
// derived fields, persist.
package service

import (
	"strings"

	"go.uber.org/zap"

	"fittrack/internal/domain"
	"fittrack/internal/fitness"
	"fittrack/internal/validate"
)

const recentActivityLimit = 5

// UserDetail is a user plus the derived body-mass fields attached on read.
type UserDetail struct {
	domain.User
	BMI         *float64 `json:"bmi"`
	BMICategory string   `json:"bmiCategory"`
}

type UserStatsResponse struct {
	User             UserDetail        `json:"user"`
	Stats            domain.UserStats  `json:"stats"`
	RecentActivities []domain.Activity `json:"recentActivities"`
}

type UserService struct {
	users      domain.UserRepository
	activities domain.ActivityRepository
	log        *zap.Logger
}

func NewUserService(users domain.UserRepository, activities domain.ActivityRepository, log *zap.Logger) *UserService {
	return &UserService{users: users, activities: activities, log: log}
}

func (s *UserService) List() ([]domain.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *UserService) Get(id int64) (*domain.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewNotFoundError("user not found")
	}
	return u, nil
}

func (s *UserService) Create(in validate.UserInput) (*domain.User, error) {
	res := validate.User(in, false)
	if !res.Valid {
		return nil, domain.NewValidationError("invalid user data", res.Errors)
	}

	u := domain.User{
		Name:   *res.Data.Name,
		Email:  *res.Data.Email,
		Age:    res.Data.Age,
		Weight: res.Data.Weight,
		Height: res.Data.Height,
	}
	if err := s.users.Create(&u); err != nil {
		if isDupKey(err) {
			return nil, domain.NewValidationError("invalid user data", []string{"email is already registered"})
		}
		return nil, err
	}
	s.log.Info("user created", zap.Int64("id", u.ID), zap.String("email", u.Email))
	return s.Get(u.ID)
}

// Update applies a partial patch: validate the provided fields, merge the
// sanitized patch onto the stored record, then re-run the full rule set on
// the merged result before persisting.
func (s *UserService) Update(id int64, in validate.UserInput) (*domain.User, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	res := validate.User(in, true)
	if !res.Valid {
		return nil, domain.NewValidationError("invalid user data", res.Errors)
	}

	merged := validate.MergeUser(*existing, res.Data)
	if errs := validate.UserRecord(merged); len(errs) > 0 {
		return nil, domain.NewValidationError("invalid user data", errs)
	}

	if err := s.users.Update(&merged); err != nil {
		if isDupKey(err) {
			return nil, domain.NewValidationError("invalid user data", []string{"email is already registered"})
		}
		return nil, err
	}
	return s.Get(id)
}

// Delete removes the user; the storage-level cascade takes the user's
// activities with it.
func (s *UserService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.users.Delete(id); err != nil {
		return err
	}
	s.log.Info("user deleted", zap.Int64("id", id))
	return nil
}

func (s *UserService) Stats(id int64) (*UserStatsResponse, error) {
	u, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	stats, err := s.users.Stats(id)
	if err != nil {
		return nil, err
	}

	recent, err := s.activities.Recent(id, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []domain.Activity{}
	}

	bmi := fitness.BMI(u.Weight, u.Height)
	return &UserStatsResponse{
		User:             UserDetail{User: *u, BMI: bmi, BMICategory: fitness.BMICategory(bmi)},
		Stats:            stats,
		RecentActivities: recent,
	}, nil
}

// isDupKey spots unique-constraint violations without depending on
// driver-specific error types.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

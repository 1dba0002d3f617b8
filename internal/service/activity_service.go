package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"fittrack/internal/core/cache"
	"fittrack/internal/domain"
	"fittrack/internal/fitness"
	"fittrack/internal/validate"
)

const overviewCacheKeyPrefix = "fittrack:overview:"

// overviewCacheKey carries the window's first day, so a payload cached just
// before UTC midnight is never served for the next day's window; keys for
// past days simply age out with the TTL.
func overviewCacheKey(weekStart string) string {
	return overviewCacheKeyPrefix + weekStart
}

type ActivityService struct {
	activities domain.ActivityRepository
	users      domain.UserRepository
	calc       *fitness.Calculator
	cache      *cache.Cache // nil disables overview caching
	cacheTTL   time.Duration
	log        *zap.Logger
	now        func() time.Time
}

func NewActivityService(activities domain.ActivityRepository, users domain.UserRepository, calc *fitness.Calculator, c *cache.Cache, cacheTTL time.Duration, log *zap.Logger) *ActivityService {
	return &ActivityService{
		activities: activities,
		users:      users,
		calc:       calc,
		cache:      c,
		cacheTTL:   cacheTTL,
		log:        log,
		now:        time.Now,
	}
}

func (s *ActivityService) List(f domain.ActivityFilter) ([]domain.Activity, error) {
	activities, err := s.activities.List(f)
	if err != nil {
		return nil, err
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}

func (s *ActivityService) Get(id int64) (*domain.Activity, error) {
	a, err := s.activities.FindByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.NewNotFoundError("activity not found")
	}
	return a, nil
}

// Create validates, resolves the owning user (a missing user is NotFound,
// not a validation failure), fills distance and calories from the calculator
// when the caller leaves them out, infers endTime, then inserts.
func (s *ActivityService) Create(in validate.ActivityInput) (*domain.Activity, error) {
	res := validate.Activity(in, false)
	if !res.Valid {
		return nil, domain.NewValidationError("invalid activity data", res.Errors)
	}
	data := res.Data

	owner, err := s.users.FindByID(*data.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	distance := s.calc.Distance(*data.Type, *data.Duration)
	if data.Distance != nil {
		distance = *data.Distance
	}
	calories := s.calc.Calories(*data.Type, *data.Duration, ownerWeight(owner))
	if data.CaloriesBurned != nil {
		calories = *data.CaloriesBurned
	}

	a := domain.Activity{
		UserID:         *data.UserID,
		Type:           *data.Type,
		Duration:       *data.Duration,
		Distance:       distance,
		CaloriesBurned: calories,
		HeartRate:      data.HeartRate,
		StartTime:      *data.StartTime,
		EndTime:        validate.InferEndTime(*data.StartTime, *data.Duration, data.EndTime),
		Notes:          data.Notes,
	}
	if err := s.activities.Create(&a); err != nil {
		return nil, err
	}
	s.invalidateOverview()
	s.log.Info("activity created",
		zap.Int64("id", a.ID),
		zap.Int64("userId", a.UserID),
		zap.String("type", a.Type),
	)
	return s.Get(a.ID)
}

// Update merges the sanitized patch onto the stored record and re-validates
// the whole result. Stored derived fields survive unless the patch replaces
// them; the owning user is re-checked because the patch may move the
// activity to another user.
func (s *ActivityService) Update(id int64, in validate.ActivityInput) (*domain.Activity, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	res := validate.Activity(in, true)
	if !res.Valid {
		return nil, domain.NewValidationError("invalid activity data", res.Errors)
	}

	merged := validate.MergeActivity(*existing, res.Data)
	if errs := validate.ActivityRecord(merged); len(errs) > 0 {
		return nil, domain.NewValidationError("invalid activity data", errs)
	}

	owner, err := s.users.FindByID(merged.UserID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NewNotFoundError("user not found")
	}

	merged.EndTime = validate.InferEndTime(merged.StartTime, merged.Duration, merged.EndTime)

	if err := s.activities.Update(&merged); err != nil {
		return nil, err
	}
	s.invalidateOverview()
	return s.Get(id)
}

func (s *ActivityService) Delete(id int64) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.activities.Delete(id); err != nil {
		return err
	}
	s.invalidateOverview()
	s.log.Info("activity deleted", zap.Int64("id", id))
	return nil
}

// Overview returns the cross-user aggregate. The daily calorie series covers
// the trailing 7 days including today, oldest first.
func (s *ActivityService) Overview() (*domain.Overview, error) {
	weekStart := s.weekStart()
	if s.cache == nil {
		o, err := s.activities.Overview(weekStart)
		if err != nil {
			return nil, err
		}
		return &o, nil
	}
	return cache.GetOrLoadJSON(s.cache, context.Background(), overviewCacheKey(weekStart), s.cacheTTL,
		func(context.Context) (*domain.Overview, error) {
			o, err := s.activities.Overview(weekStart)
			if err != nil {
				return nil, err
			}
			return &o, nil
		})
}

func (s *ActivityService) invalidateOverview() {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(context.Background(), overviewCacheKey(s.weekStart())); err != nil {
		s.log.Warn("overview cache invalidation failed", zap.Error(err))
	}
}

// weekStart is the first day of the trailing 7-day window, UTC, date
// precision.
func (s *ActivityService) weekStart() string {
	return s.now().UTC().AddDate(0, 0, -6).Format("2006-01-02")
}

// ownerWeight falls back to the reference weight when the user never
// recorded one; the calculator treats a non-positive weight the same way.
func ownerWeight(u *domain.User) float64 {
	if u.Weight == nil {
		return 0
	}
	return *u.Weight
}

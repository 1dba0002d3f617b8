package repo

import (
	"errors"

	"gorm.io/gorm"

	"fittrack/internal/domain"
)

type ActivityRepo struct{ db *gorm.DB }

func NewActivityRepo(db *gorm.DB) *ActivityRepo { return &ActivityRepo{db: db} }

// dateOf returns the SQL expression extracting the date portion of
// start_time for the connected dialect.
func (r *ActivityRepo) dateOf() string {
	switch r.db.Dialector.Name() {
	case "postgres":
		return "start_time::date"
	case "mysql":
		return "date(start_time)"
	default: // sqlite
		return "date(start_time)"
	}
}

// dayOf returns the SQL expression formatting start_time as YYYY-MM-DD.
func (r *ActivityRepo) dayOf() string {
	switch r.db.Dialector.Name() {
	case "postgres":
		return "to_char(start_time, 'YYYY-MM-DD')"
	case "mysql":
		return "date_format(start_time, '%Y-%m-%d')"
	default: // sqlite
		return "strftime('%Y-%m-%d', start_time)"
	}
}

func (r *ActivityRepo) List(f domain.ActivityFilter) ([]domain.Activity, error) {
	q := r.db.Model(&domain.Activity{})
	if f.UserID > 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.StartDate != "" {
		q = q.Where(r.dateOf()+" >= ?", f.StartDate)
	}
	if f.EndDate != "" {
		q = q.Where(r.dateOf()+" <= ?", f.EndDate)
	}
	var activities []domain.Activity
	err := q.Order("start_time desc").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepo) FindByID(id int64) (*domain.Activity, error) {
	var a domain.Activity
	err := r.db.First(&a, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ActivityRepo) Create(a *domain.Activity) error { return r.db.Create(a).Error }

func (r *ActivityRepo) Update(a *domain.Activity) error { return r.db.Save(a).Error }

func (r *ActivityRepo) Delete(id int64) error {
	return r.db.Delete(&domain.Activity{}, "id = ?", id).Error
}

func (r *ActivityRepo) Recent(userID int64, limit int) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.Where("user_id = ?", userID).
		Order("start_time desc").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}

// Overview delegates all grouping and summing to the storage engine.
// weekStart bounds the daily series to the trailing week (inclusive),
// formatted YYYY-MM-DD.
func (r *ActivityRepo) Overview(weekStart string) (domain.Overview, error) {
	var out domain.Overview

	err := r.db.Model(&domain.Activity{}).
		Select(`COUNT(*) AS total_activities,
			COUNT(DISTINCT user_id) AS active_users,
			COALESCE(SUM(duration), 0) AS total_duration,
			COALESCE(SUM(distance), 0) AS total_distance,
			COALESCE(SUM(calories_burned), 0) AS total_calories`).
		Scan(&out.Totals).Error
	if err != nil {
		return out, err
	}

	err = r.db.Model(&domain.Activity{}).
		Select("type, COALESCE(SUM(calories_burned), 0) AS calories").
		Group("type").
		Order("type").
		Scan(&out.CaloriesByType).Error
	if err != nil {
		return out, err
	}

	err = r.db.Model(&domain.Activity{}).
		Select("type, COALESCE(SUM(duration), 0) AS duration").
		Group("type").
		Order("type").
		Scan(&out.DurationByType).Error
	if err != nil {
		return out, err
	}

	day := r.dayOf()
	err = r.db.Model(&domain.Activity{}).
		Select(day+" AS day, COALESCE(SUM(calories_burned), 0) AS calories").
		Where(r.dateOf()+" >= ?", weekStart).
		Group(day).
		Order("day asc").
		Scan(&out.WeeklyCalories).Error
	if err != nil {
		return out, err
	}

	if out.CaloriesByType == nil {
		out.CaloriesByType = []domain.TypeCalories{}
	}
	if out.DurationByType == nil {
		out.DurationByType = []domain.TypeDuration{}
	}
	if out.WeeklyCalories == nil {
		out.WeeklyCalories = []domain.DayCalories{}
	}
	return out, nil
}

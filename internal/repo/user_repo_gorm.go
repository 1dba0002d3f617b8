package repo

import (
	"errors"

	"gorm.io/gorm"

	"fittrack/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) List() ([]domain.User, error) {
	var users []domain.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *UserRepo) FindByID(id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) Update(u *domain.User) error { return r.db.Save(u).Error }

func (r *UserRepo) Delete(id int64) error {
	return r.db.Delete(&domain.User{}, "id = ?", id).Error
}

// Stats sums the user's activities in one aggregate query. AVG skips rows
// without a heart rate; an activity-less user reports all zeros.
func (r *UserRepo) Stats(id int64) (domain.UserStats, error) {
	var s domain.UserStats
	err := r.db.Model(&domain.Activity{}).
		Select(`COUNT(*) AS total_activities,
			COALESCE(SUM(duration), 0) AS total_duration,
			COALESCE(SUM(distance), 0) AS total_distance,
			COALESCE(SUM(calories_burned), 0) AS total_calories,
			COALESCE(AVG(heart_rate), 0) AS average_heart_rate`).
		Where("user_id = ?", id).
		Scan(&s).Error
	return s, err
}

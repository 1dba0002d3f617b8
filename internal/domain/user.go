package domain

import "time"

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Age       *int      `json:"age"`
	Weight    *float64  `json:"weight"`
	Height    *float64  `json:"height"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (User) TableName() string { return "users" }

// UserStats is the aggregate block of GET /api/users/:id/stats, summed by
// the storage engine over the user's activities.
type UserStats struct {
	TotalActivities  int64   `json:"totalActivities"`
	TotalDuration    int64   `json:"totalDuration"`
	TotalDistance    float64 `json:"totalDistance"`
	TotalCalories    float64 `json:"totalCalories"`
	AverageHeartRate float64 `json:"averageHeartRate"`
}

type UserRepository interface {
	List() ([]User, error)
	FindByID(id int64) (*User, error)
	Create(u *User) error
	Update(u *User) error
	Delete(id int64) error
	Stats(id int64) (UserStats, error)
}

package domain

import "time"

// Activity types accepted by the API. Calorie factors and average speeds for
// each type live in configuration, not here.
const (
	TypeRunning  = "running"
	TypeCycling  = "cycling"
	TypeSwimming = "swimming"
	TypeWalking  = "walking"
	TypeGym      = "gym"
	TypeYoga     = "yoga"
	TypeOther    = "other"
)

func ActivityTypes() []string {
	return []string{TypeRunning, TypeCycling, TypeSwimming, TypeWalking, TypeGym, TypeYoga, TypeOther}
}

type Activity struct {
	ID             int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64      `gorm:"not null;index" json:"userId"`
	Type           string     `gorm:"size:32;not null;index" json:"type"`
	Duration       int        `gorm:"not null" json:"duration"`
	Distance       float64    `gorm:"not null;default:0" json:"distance"`
	CaloriesBurned float64    `gorm:"not null;default:0" json:"caloriesBurned"`
	HeartRate      *int       `json:"heartRate"`
	StartTime      time.Time  `gorm:"not null;index" json:"startTime"`
	EndTime        *time.Time `json:"endTime"`
	Notes          *string    `json:"notes"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"createdAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Activity) TableName() string { return "activities" }

// ActivityFilter narrows List results. Date bounds compare against the date
// portion of startTime only, both ends inclusive.
type ActivityFilter struct {
	UserID    int64
	Type      string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD
}

type TypeCalories struct {
	Type     string  `json:"type"`
	Calories float64 `json:"calories"`
}

type TypeDuration struct {
	Type     string `json:"type"`
	Duration int64  `json:"duration"`
}

type DayCalories struct {
	Day      string  `json:"day"`
	Calories float64 `json:"calories"`
}

type OverviewTotals struct {
	TotalActivities int64   `json:"totalActivities"`
	ActiveUsers     int64   `json:"activeUsers"`
	TotalDuration   int64   `json:"totalDuration"`
	TotalDistance   float64 `json:"totalDistance"`
	TotalCalories   float64 `json:"totalCalories"`
}

// Overview is the cross-user aggregate consumed by the dashboard charts.
type Overview struct {
	Totals         OverviewTotals `json:"totals"`
	CaloriesByType []TypeCalories `json:"caloriesByType"`
	DurationByType []TypeDuration `json:"durationByType"`
	WeeklyCalories []DayCalories  `json:"weeklyCalories"`
}

type ActivityRepository interface {
	List(f ActivityFilter) ([]Activity, error)
	FindByID(id int64) (*Activity, error)
	Create(a *Activity) error
	Update(a *Activity) error
	Delete(id int64) error
	Recent(userID int64, limit int) ([]Activity, error)
	Overview(weekStart string) (Overview, error)
}

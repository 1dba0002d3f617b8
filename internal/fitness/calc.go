// Package fitness holds the derived-metric formulas: calorie and distance
// estimation from activity type and duration, plus BMI. The per-type factor
// and speed tables are configuration data loaded at startup, not code.
package fitness

import (
	"math"

	"fittrack/internal/domain"
)

// ReferenceWeightKg is the body weight the calorie factors were scaled for.
// Callers without a known weight fall back to it.
const ReferenceWeightKg = 70

type Calculator struct {
	calorieFactors map[string]float64 // kcal per minute at reference weight
	averageSpeeds  map[string]float64 // km/h; 0 means the type covers no distance
}

func NewCalculator(calorieFactors, averageSpeeds map[string]float64) *Calculator {
	return &Calculator{calorieFactors: calorieFactors, averageSpeeds: averageSpeeds}
}

// DefaultCalculator uses the built-in tables.
func DefaultCalculator() *Calculator {
	return NewCalculator(DefaultCalorieFactors(), DefaultAverageSpeeds())
}

func DefaultCalorieFactors() map[string]float64 {
	return map[string]float64{
		domain.TypeRunning:  12,
		domain.TypeCycling:  8,
		domain.TypeSwimming: 10,
		domain.TypeWalking:  4,
		domain.TypeGym:      6,
		domain.TypeYoga:     3,
		domain.TypeOther:    5,
	}
}

func DefaultAverageSpeeds() map[string]float64 {
	return map[string]float64{
		domain.TypeRunning:  10,
		domain.TypeCycling:  20,
		domain.TypeSwimming: 2,
		domain.TypeWalking:  5,
		domain.TypeGym:      0,
		domain.TypeYoga:     0,
		domain.TypeOther:    0,
	}
}

// Calories estimates kcal burned for a session. Unknown types use the "other"
// factor; the result scales linearly with body weight relative to the
// reference, and non-positive weights fall back to the reference.
func (c *Calculator) Calories(activityType string, durationMinutes int, weightKg float64) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	factor, ok := c.calorieFactors[activityType]
	if !ok {
		factor = c.calorieFactors[domain.TypeOther]
	}
	weightFactor := 1.0
	if weightKg > 0 {
		weightFactor = weightKg / ReferenceWeightKg
	}
	return round2(factor * float64(durationMinutes) * weightFactor)
}

// Distance estimates km covered from the type's average speed. Stationary
// types (gym, yoga, other) report 0. Unknown types use the walking speed,
// matching the behavior the tables were tuned against.
func (c *Calculator) Distance(activityType string, durationMinutes int) float64 {
	if durationMinutes <= 0 {
		return 0
	}
	speed, ok := c.averageSpeeds[activityType]
	if !ok {
		speed = c.averageSpeeds[domain.TypeWalking]
	}
	if speed == 0 {
		return 0
	}
	return round2(speed * float64(durationMinutes) / 60)
}

// BMI returns nil when either measurement is missing or non-positive.
func BMI(weightKg, heightCm *float64) *float64 {
	if weightKg == nil || heightCm == nil || *weightKg <= 0 || *heightCm <= 0 {
		return nil
	}
	heightM := *heightCm / 100
	bmi := round2(*weightKg / (heightM * heightM))
	return &bmi
}

// BMI category thresholds (WHO buckets).
const (
	CategoryUnderweight = "underweight"
	CategoryNormal      = "normal"
	CategoryOverweight  = "overweight"
	CategoryObesity     = "obesity"
	CategoryUnknown     = "unknown"
)

func BMICategory(bmi *float64) string {
	switch {
	case bmi == nil:
		return CategoryUnknown
	case *bmi < 18.5:
		return CategoryUnderweight
	case *bmi < 25:
		return CategoryNormal
	case *bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObesity
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

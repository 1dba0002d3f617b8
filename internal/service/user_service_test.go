package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fittrack/internal/domain"
	"fittrack/internal/fitness"
	"fittrack/internal/validate"
)

func TestUserCreateAndGet(t *testing.T) {
	us, _ := newServices(t)

	u := mustCreateUser(t, us, "Ana Silva", "ana@example.com", floatp(65))
	assert.Positive(t, u.ID)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := us.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestUserCreateCollectsFieldErrors(t *testing.T) {
	us, _ := newServices(t)

	_, err := us.Create(validate.UserInput{Name: strp("x"), Email: strp("bad"), Age: intp(999)})
	appErr := requireAppError(t, err, 400)
	assert.Len(t, appErr.Details, 3)
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	us, _ := newServices(t)
	mustCreateUser(t, us, "Ana Silva", "ana@example.com", nil)

	_, err := us.Create(validate.UserInput{Name: strp("Other"), Email: strp("ana@example.com")})
	appErr := requireAppError(t, err, 400)
	assert.Contains(t, appErr.Details, "email is already registered")
}

func TestUserGetUnknownIsNotFound(t *testing.T) {
	us, _ := newServices(t)
	_, err := us.Get(12345)
	requireAppError(t, err, 404)
}

func TestUserPartialUpdateMergesAndRevalidates(t *testing.T) {
	us, _ := newServices(t)
	u := mustCreateUser(t, us, "Ana Silva", "ana@example.com", floatp(65))

	updated, err := us.Update(u.ID, validate.UserInput{Weight: floatp(80)})
	require.NoError(t, err)
	assert.Equal(t, 80.0, *updated.Weight)
	// Everything else survives the merge untouched.
	assert.Equal(t, "Ana Silva", updated.Name)
	assert.Equal(t, "ana@example.com", updated.Email)
	assert.Equal(t, 30, *updated.Age)
	assert.Equal(t, 175.0, *updated.Height)
	assert.True(t, updated.CreatedAt.Equal(u.CreatedAt))
}

func TestUserUpdateRejectsInvalidPatch(t *testing.T) {
	us, _ := newServices(t)
	u := mustCreateUser(t, us, "Ana Silva", "ana@example.com", nil)

	_, err := us.Update(u.ID, validate.UserInput{Email: strp("not-an-email")})
	appErr := requireAppError(t, err, 400)
	assert.Contains(t, appErr.Details, "email is invalid")

	// The stored record is unchanged.
	got, err := us.Get(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestUserUpdateUnknownIsNotFound(t *testing.T) {
	us, _ := newServices(t)
	_, err := us.Update(999, validate.UserInput{Weight: floatp(80)})
	requireAppError(t, err, 404)
}

func TestUserDeleteCascadesToActivities(t *testing.T) {
	us, as := newServices(t)
	u := mustCreateUser(t, us, "Ana Silva", "ana@example.com", floatp(65))

	_, err := as.Create(activityInput(u.ID, domain.TypeRunning, 45, "2026-08-29T07:00:00Z"))
	require.NoError(t, err)
	_, err = as.Create(activityInput(u.ID, domain.TypeYoga, 30, "2026-08-28T07:00:00Z"))
	require.NoError(t, err)

	require.NoError(t, us.Delete(u.ID))

	_, err = us.Get(u.ID)
	requireAppError(t, err, 404)

	remaining, err := as.List(domain.ActivityFilter{UserID: u.ID})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestUserDeleteUnknownIsNotFound(t *testing.T) {
	us, _ := newServices(t)
	requireAppError(t, us.Delete(999), 404)
}

func TestUserStats(t *testing.T) {
	us, as := newServices(t)
	u := mustCreateUser(t, us, "Ana Silva", "ana@example.com", floatp(70))

	in1 := activityInput(u.ID, domain.TypeRunning, 45, "2026-08-29T07:00:00Z")
	in1.HeartRate = intp(150)
	_, err := as.Create(in1)
	require.NoError(t, err)

	in2 := activityInput(u.ID, domain.TypeCycling, 60, "2026-08-28T07:00:00Z")
	in2.HeartRate = intp(130)
	_, err = as.Create(in2)
	require.NoError(t, err)

	stats, err := us.Stats(u.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Stats.TotalActivities)
	assert.Equal(t, int64(105), stats.Stats.TotalDuration)
	// running 45min at 10km/h = 7.5km, cycling 60min at 20km/h = 20km
	assert.InDelta(t, 27.5, stats.Stats.TotalDistance, 0.001)
	// running 12*45 + cycling 8*60, both at reference weight
	assert.InDelta(t, 1020, stats.Stats.TotalCalories, 0.001)
	assert.InDelta(t, 140, stats.Stats.AverageHeartRate, 0.001)

	require.NotNil(t, stats.User.BMI)
	assert.Equal(t, 22.86, *stats.User.BMI)
	assert.Equal(t, fitness.CategoryNormal, stats.User.BMICategory)

	require.Len(t, stats.RecentActivities, 2)
	// Newest first.
	assert.Equal(t, domain.TypeRunning, stats.RecentActivities[0].Type)
}

func TestUserStatsRecentLimitAndEmpty(t *testing.T) {
	us, as := newServices(t)
	u := mustCreateUser(t, us, "Ana Silva", "ana@example.com", nil)

	empty, err := us.Stats(u.ID)
	require.NoError(t, err)
	assert.Zero(t, empty.Stats.TotalActivities)
	assert.Zero(t, empty.Stats.AverageHeartRate)
	assert.Empty(t, empty.RecentActivities)
	assert.Nil(t, empty.User.BMI)
	assert.Equal(t, fitness.CategoryUnknown, empty.User.BMICategory)

	for day := 1; day <= 7; day++ {
		start := "2026-08-0" + string(rune('0'+day)) + "T07:00:00Z"
		_, err := as.Create(activityInput(u.ID, domain.TypeWalking, 30, start))
		require.NoError(t, err)
	}

	stats, err := us.Stats(u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Stats.TotalActivities)
	assert.Len(t, stats.RecentActivities, 5)
}

func TestUserStatsUnknownIsNotFound(t *testing.T) {
	us, _ := newServices(t)
	_, err := us.Stats(999)
	requireAppError(t, err, 404)
}

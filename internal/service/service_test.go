package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fittrack/internal/domain"
	"fittrack/internal/fitness"
	"fittrack/internal/repo"
	"fittrack/internal/validate"
)

// newTestDB opens a per-test in-memory sqlite database with foreign keys
// enforced, so the delete cascade behaves like production.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A single connection keeps the shared in-memory database alive for the
	// whole test.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Activity{}))
	return db
}

func newServices(t *testing.T) (*UserService, *ActivityService) {
	t.Helper()
	db := newTestDB(t)
	users := repo.NewUserRepo(db)
	activities := repo.NewActivityRepo(db)
	log := zap.NewNop()
	us := NewUserService(users, activities, log)
	as := NewActivityService(activities, users, fitness.DefaultCalculator(), nil, 0, log)
	return us, as
}

func strp(s string) *string { return &s }

func intp(v int) *int { return &v }

func int64p(v int64) *int64 { return &v }

func floatp(v float64) *float64 { return &v }

func mustCreateUser(t *testing.T, us *UserService, name, email string, weight *float64) *domain.User {
	t.Helper()
	u, err := us.Create(validate.UserInput{
		Name:   strp(name),
		Email:  strp(email),
		Weight: weight,
		Height: floatp(175),
		Age:    intp(30),
	})
	require.NoError(t, err)
	return u
}

func activityInput(userID int64, typ string, duration int, start string) validate.ActivityInput {
	return validate.ActivityInput{
		UserID:    int64p(userID),
		Type:      strp(typ),
		Duration:  intp(duration),
		StartTime: strp(start),
	}
}

func requireAppError(t *testing.T, err error, status int) *domain.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*domain.AppError)
	require.True(t, ok, "expected *domain.AppError, got %T: %v", err, err)
	require.Equal(t, status, appErr.Status)
	return appErr
}

// Command seed resets the database and loads demo users and a week of
// activities, with derived fields computed the same way the API computes
// them.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fittrack/internal/core/config"
	"fittrack/internal/core/database"
	"fittrack/internal/core/logger"
	"fittrack/internal/domain"
	"fittrack/internal/fitness"
	"fittrack/internal/repo"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             log,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.Activity{}); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	if err := db.Exec("DELETE FROM activities").Error; err != nil {
		log.Fatal("clear activities", zap.Error(err))
	}
	if err := db.Exec("DELETE FROM users").Error; err != nil {
		log.Fatal("clear users", zap.Error(err))
	}

	calc := fitness.NewCalculator(cfg.Activities.CalorieFactors, cfg.Activities.AverageSpeeds)
	users := repo.NewUserRepo(db)
	activities := repo.NewActivityRepo(db)

	seedUsers := []domain.User{
		{Name: "Ana Silva", Email: "ana.silva@example.com", Age: intp(29), Weight: floatp(65), Height: floatp(168)},
		{Name: "Bruno Costa", Email: "bruno.costa@example.com", Age: intp(34), Weight: floatp(82), Height: floatp(178)},
		{Name: "Carla Mendes", Email: "carla.mendes@example.com", Age: intp(41), Weight: floatp(72), Height: floatp(165)},
	}

	templates := []struct {
		Type      string
		Duration  int
		HeartRate int
	}{
		{domain.TypeRunning, 45, 150},
		{domain.TypeCycling, 60, 140},
		{domain.TypeYoga, 30, 95},
		{domain.TypeWalking, 40, 110},
		{domain.TypeSwimming, 50, 145},
	}

	now := time.Now().UTC().Truncate(time.Second)
	for i := range seedUsers {
		u := &seedUsers[i]
		if err := users.Create(u); err != nil {
			log.Fatal("seed user", zap.String("email", u.Email), zap.Error(err))
		}
		for day, tpl := range templates {
			start := now.AddDate(0, 0, -day)
			end := start.Add(time.Duration(tpl.Duration) * time.Minute)
			hr := tpl.HeartRate
			a := domain.Activity{
				UserID:         u.ID,
				Type:           tpl.Type,
				Duration:       tpl.Duration,
				Distance:       calc.Distance(tpl.Type, tpl.Duration),
				CaloriesBurned: calc.Calories(tpl.Type, tpl.Duration, *u.Weight),
				HeartRate:      &hr,
				StartTime:      start,
				EndTime:        &end,
			}
			if err := activities.Create(&a); err != nil {
				log.Fatal("seed activity", zap.Error(err))
			}
		}
	}

	log.Info("seed complete",
		zap.Int("users", len(seedUsers)),
		zap.Int("activities", len(seedUsers)*len(templates)),
	)
}

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

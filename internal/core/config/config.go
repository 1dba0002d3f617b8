package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"

	"fittrack/internal/fitness"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type App struct {
	Name      string
	Env       string
	StaticDir string
	HTTP      HTTP
}

type Log struct {
	Level string
	JSON  bool

	// File enables rotated file output in addition to stdout.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

type CORS struct {
	Origins []string
}

// RateLimit is a per-IP token bucket; zero values disable it.
type RateLimit struct {
	PerMin int
	Burst  int
}

type DB struct {
	Driver             string
	DSN                string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeMin int
	AutoMigrate        bool
	LogLevel           string
}

// Redis is optional: an empty Addr disables the overview cache.
type Redis struct {
	Addr           string `mapstructure:"addr"`
	Password       string `mapstructure:"password"`
	DB             int    `mapstructure:"db"`
	OverviewTTLSec int    `mapstructure:"overviewttlsec"`
}

// Activities carries the metric lookup tables. They are tuning data: change
// the yaml, not the calculator.
type Activities struct {
	CalorieFactors map[string]float64 `mapstructure:"caloriefactors"`
	AverageSpeeds  map[string]float64 `mapstructure:"averagespeeds"`
}

type Config struct {
	App        App
	Log        Log
	CORS       CORS
	RateLimit  RateLimit
	DB         DB
	Redis      Redis `mapstructure:"redis"`
	Activities Activities
}

func Load(path string) *Config {
	v := viper.New()
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
		if path == "" {
			path = "./configs/config.local.yaml"
		}
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// The config file is optional: defaults describe a runnable local setup
	// on an embedded sqlite database.
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			log.Fatalf("read config: %v", err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		log.Fatalf("unmarshal config: %v", err)
	}
	return &c
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "FitTrack Pro")
	v.SetDefault("app.env", "local")
	v.SetDefault("app.staticdir", "./web")
	v.SetDefault("app.http.host", "0.0.0.0")
	v.SetDefault("app.http.port", 3000)
	v.SetDefault("app.http.readtimeoutsec", 15)
	v.SetDefault("app.http.writetimeoutsec", 15)
	v.SetDefault("app.http.idletimeoutsec", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.maxsizemb", 100)
	v.SetDefault("log.maxbackups", 7)
	v.SetDefault("log.maxagedays", 30)
	v.SetDefault("log.compress", true)

	v.SetDefault("cors.origins", []string{"*"})

	// Roughly the classic 100 requests per 15 minutes per client.
	v.SetDefault("ratelimit.permin", 7)
	v.SetDefault("ratelimit.burst", 100)

	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "./data/fitness_monitor.db")
	v.SetDefault("db.maxopenconns", 10)
	v.SetDefault("db.maxidleconns", 5)
	v.SetDefault("db.connmaxlifetimemin", 30)
	v.SetDefault("db.automigrate", true)
	v.SetDefault("db.loglevel", "warn")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.overviewttlsec", 30)

	v.SetDefault("activities.caloriefactors", fitness.DefaultCalorieFactors())
	v.SetDefault("activities.averagespeeds", fitness.DefaultAverageSpeeds())
}

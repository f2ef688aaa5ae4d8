// Package config loads process settings from the environment, an optional
// .env file and an optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"MakeupBot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

type Config struct {
	BotToken string

	Timezone    *time.Location
	DailyHour   int
	DailyMinute int

	Storage             string
	DBPath              string
	PostgresDSN         string
	FirebaseCredentials string
	FirebaseDatabaseURL string

	RedisAddr       string
	RequiredChannel string
	HealthAddr      string
	RotationWorkers int

	LogLevel  string
	LogFormat string
}

var defaults = map[string]any{
	"tz":               "Europe/Vienna",
	"daily_hour":       10,
	"daily_minute":     0,
	"storage":          "sqlite",
	"db_path":          "data.sqlite3",
	"health_addr":      ":8080",
	"rotation_workers": 8,
	"log_level":        "info",
	"log_format":       "json",
}

// Load reads the configuration. configFile may be empty. Environment
// variables (upper-cased keys) override the file, and the file overrides
// the defaults.
func Load(configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		BotToken:            strings.TrimSpace(v.GetString("bot_token")),
		Storage:             strings.ToLower(strings.TrimSpace(v.GetString("storage"))),
		DBPath:              v.GetString("db_path"),
		PostgresDSN:         v.GetString("postgres_dsn"),
		FirebaseCredentials: v.GetString("firebase_service_account_key_path"),
		FirebaseDatabaseURL: v.GetString("firebase_database_url"),
		RedisAddr:           v.GetString("redis_addr"),
		RequiredChannel:     v.GetString("required_channel"),
		HealthAddr:          v.GetString("health_addr"),
		LogLevel:            v.GetString("log_level"),
		LogFormat:           v.GetString("log_format"),
	}

	for key, dst := range map[string]*int{
		"daily_hour":       &cfg.DailyHour,
		"daily_minute":     &cfg.DailyMinute,
		"rotation_workers": &cfg.RotationWorkers,
	} {
		n, err := intKey(v, key)
		if err != nil {
			return nil, err
		}
		*dst = n
	}

	tz := strings.TrimSpace(v.GetString("tz"))
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid TZ %q: %w", tz, err)
	}
	cfg.Timezone = loc

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// intKey reads an integer setting. Unlike viper's GetInt it reports values
// that are not integers instead of turning them into 0. Strings are parsed as
// decimal so "08" is eight.
func intKey(v *viper.Viper, key string) (int, error) {
	raw := v.Get(key)
	var (
		n   int
		err error
	)
	if s, ok := raw.(string); ok {
		n, err = strconv.Atoi(strings.TrimSpace(s))
	} else {
		n, err = cast.ToIntE(raw)
	}
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %v: %w", strings.ToUpper(key), raw, err)
	}
	return n, nil
}

func (c *Config) validate() error {
	if c.BotToken == "" {
		return model.ErrMissingToken
	}
	if c.DailyHour < 0 || c.DailyHour > 23 {
		return fmt.Errorf("DAILY_HOUR must be between 0 and 23, got %d", c.DailyHour)
	}
	if c.DailyMinute < 0 || c.DailyMinute > 59 {
		return fmt.Errorf("DAILY_MINUTE must be between 0 and 59, got %d", c.DailyMinute)
	}

	switch c.Storage {
	case "sqlite":
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH environment variable not set")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return fmt.Errorf("POSTGRES_DSN environment variable not set")
		}
	case "firebase":
		if c.FirebaseCredentials == "" {
			return fmt.Errorf("FIREBASE_SERVICE_ACCOUNT_KEY_PATH environment variable not set")
		}
		if c.FirebaseDatabaseURL == "" {
			return fmt.Errorf("FIREBASE_DATABASE_URL environment variable not set")
		}
	default:
		return fmt.Errorf("%w: %q", model.ErrUnknownStorage, c.Storage)
	}
	return nil
}

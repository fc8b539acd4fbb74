package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

const envPrefix = "BANK_"

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	HTTP      HTTPConfig      `koanf:"http"`
	Log       LogConfig       `koanf:"log"`
	Storage   StorageConfig   `koanf:"storage"`
	Postgres  PostgresConfig  `koanf:"postgres"`
	Limits    LimitsConfig    `koanf:"limits"`
	Scheduler SchedulerConfig `koanf:"scheduler"`
	Clock     ClockConfig     `koanf:"clock"`
}

type HTTPConfig struct {
	Port string `koanf:"port"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type StorageConfig struct {
	Backend string `koanf:"backend"`
}

type PostgresConfig struct {
	Address  string `koanf:"address"`
	Port     string `koanf:"port"`
	DB       string `koanf:"db"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type LimitsConfig struct {
	DailyDebitLimit       string  `koanf:"daily_debit_limit"`
	MaxTransactionsPerDay int     `koanf:"max_transactions_per_day"`
	AbnormalMultiplier    float64 `koanf:"abnormal_multiplier"`
}

type SchedulerConfig struct {
	Interval time.Duration `koanf:"interval"`
}

type ClockConfig struct {
	Timezone string `koanf:"timezone"`
}

// In all cases the default behavior should be for the docker compose setup
var defaults = map[string]interface{}{
	"http.port":                       "9446",
	"log.level":                       "info",
	"storage.backend":                 BackendMemory,
	"postgres.address":                "localhost",
	"postgres.port":                   "5433",
	"postgres.db":                     "postgres",
	"postgres.username":               "postgres",
	"postgres.password":               "testpassword",
	"limits.daily_debit_limit":        "20000",
	"limits.max_transactions_per_day": 10,
	"limits.abnormal_multiplier":      1.5,
	"scheduler.interval":              "1m",
	"clock.timezone":                  "UTC",
}

// Load layers defaults, the optional YAML file at path, then BANK_* environment variables.
// BANK_POSTGRES_ADDRESS maps to postgres.address, BANK_LIMITS_DAILY_DEBIT_LIMIT to limits.daily_debit_limit.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.Replace(key, "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var problems []string

	if c.HTTP.Port == "" {
		problems = append(problems, "http port cannot be empty")
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendPostgres:
		if c.Postgres.Address == "" || c.Postgres.DB == "" {
			problems = append(problems, "postgres address and db are required for the postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend '%s': must be one of [%s %s]",
			c.Storage.Backend, BackendMemory, BackendPostgres))
	}

	if limit, err := decimal.NewFromString(c.Limits.DailyDebitLimit); err != nil || !limit.IsPositive() {
		problems = append(problems, fmt.Sprintf("invalid daily debit limit '%s': must be a positive decimal", c.Limits.DailyDebitLimit))
	}
	if c.Limits.MaxTransactionsPerDay < 1 {
		problems = append(problems, fmt.Sprintf("invalid max transactions per day %d: must be at least 1", c.Limits.MaxTransactionsPerDay))
	}
	if c.Limits.AbnormalMultiplier <= 1 {
		problems = append(problems, fmt.Sprintf("invalid abnormal multiplier %v: must be greater than 1", c.Limits.AbnormalMultiplier))
	}

	if c.Scheduler.Interval < time.Second {
		problems = append(problems, fmt.Sprintf("invalid scheduler interval %v: must be at least 1 second", c.Scheduler.Interval))
	}

	if _, err := time.LoadLocation(c.Clock.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.Clock.Timezone, err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// PostgresDSN builds the lib/pq connection string.
func (c *Config) PostgresDSN() string {
	return "postgres://" + c.Postgres.Username + ":" +
		c.Postgres.Password + "@" + c.Postgres.Address + ":" +
		c.Postgres.Port + "/" + c.Postgres.DB + "?sslmode=disable"
}

// Location returns the time zone used to decide what "today" is. Falls back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Clock.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

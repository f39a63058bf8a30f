package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"shipconvenient/internal/adapters/out/postgres/configrepo"
	"shipconvenient/internal/core/domain/model/route"
	"shipconvenient/internal/core/domain/services"
	"shipconvenient/internal/pkg/errs"
)

// Config is the process configuration read from the environment.
type Config struct {
	HTTPPort   string
	LogLevel   slog.Level
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RedisURL enables the routing oracle cache when set.
	RedisURL       string
	OracleCacheTTL time.Duration

	MapboxAccessToken string
	MapboxBaseURL     string
	MapboxProfile     string
	OracleTimeout     time.Duration
	OracleConcurrency int

	Tolerances              services.SuggestionTolerances
	SettingsDefaults        configrepo.Defaults
	SettingsRefreshSchedule string
}

// DSN is the libpq connection string for gorm.io/driver/postgres.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// ConfigFromEnv reads every setting through getenv, usually os.Getenv. Optional settings
// fall back to defaults; all parse errors are reported together.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	p := envParser{getenv: getenv}

	cfg := Config{
		HTTPPort:   p.str("HTTP_PORT", "8080"),
		LogLevel:   p.level("LOG_LEVEL", slog.LevelInfo),
		DBHost:     p.required("DB_HOST"),
		DBPort:     p.str("DB_PORT", "5432"),
		DBUser:     p.required("DB_USER"),
		DBPassword: p.str("DB_PASSWORD", ""),
		DBName:     p.required("DB_NAME"),
		DBSslMode:  p.str("DB_SSLMODE", "disable"),

		RedisURL:       p.str("REDIS_URL", ""),
		OracleCacheTTL: p.duration("ORACLE_CACHE_TTL", 10*time.Minute),

		MapboxAccessToken: p.required("MAPBOX_ACCESS_TOKEN"),
		MapboxBaseURL:     p.str("MAPBOX_BASE_URL", ""),
		MapboxProfile:     p.str("MAPBOX_PROFILE", ""),
		OracleTimeout:     p.duration("ORACLE_TIMEOUT", 5*time.Second),
		OracleConcurrency: p.integer("ORACLE_CONCURRENCY", 4),

		SettingsDefaults: configrepo.Defaults{
			SpacingTolerance: p.float("DEFAULT_SPACING_TOLERANCE", configrepo.StandardDefaults.SpacingTolerance),
			DirectionMode:    p.mode("DEFAULT_DIRECTION_MODE", configrepo.StandardDefaults.DirectionMode),
			MaxSuggestCount:  p.integer("DEFAULT_MAX_SUGGEST_COUNT", configrepo.StandardDefaults.MaxSuggestCount),
		},
		SettingsRefreshSchedule: p.str("SETTINGS_REFRESH_SCHEDULE", "0 * * * * *"),
	}

	tolerances, err := services.NewSuggestionTolerances(
		p.float("PROXIMITY_RATIO", services.DefaultProximityRatio),
		p.float("BUDGET_RATIO", services.DefaultBudgetRatio),
	)
	if err != nil {
		p.errs = append(p.errs, err)
	}
	cfg.Tolerances = tolerances

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type envParser struct {
	getenv func(string) string
	errs   []error
}

func (p *envParser) lookup(key string) (string, bool) {
	v := strings.TrimSpace(p.getenv(key))
	return v, v != ""
}

func (p *envParser) str(key, def string) string {
	if v, ok := p.lookup(key); ok {
		return v
	}
	return def
}

func (p *envParser) required(key string) string {
	v, ok := p.lookup(key)
	if !ok {
		p.errs = append(p.errs, errs.NewValueIsRequiredError(key))
	}
	return v
}

func (p *envParser) integer(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%q is not a non-negative integer", v)))
		return def
	}
	return n
}

func (p *envParser) float(key string, def float64) float64 {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return f
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%q is not a positive duration", v)))
		return def
	}
	return d
}

func (p *envParser) mode(key string, def route.DirectionMode) route.DirectionMode {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	m, err := route.ParseDirectionMode(v)
	if err != nil {
		p.errs = append(p.errs, err)
		return def
	}
	return m
}

func (p *envParser) level(key string, def slog.Level) slog.Level {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		p.errs = append(p.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return l
}

// Package config loads process configuration from the environment
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/coldtimes/MapFantasai/internal/errors"
)

// Sink kinds for the submission hand-off
const (
	SinkLog    = "log"
	SinkRedis  = "redis"
	SinkSQLite = "sqlite"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the process configuration. Every field can be set from a
// MAPFANTASAI_ environment variable; cobra flags override it.
type Config struct {
	GRPCPort  int    `env:"GRPC_PORT" envDefault:"50051"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	Sink       string `env:"SINK" envDefault:"log"`
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"mapfantasai.db"`

	CatalogBaseURL  string        `env:"CATALOG_BASE_URL" envDefault:"https://www.dnd5eapi.co/api/2014/"`
	CatalogTimeout  time.Duration `env:"CATALOG_TIMEOUT" envDefault:"30s"`
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"24h"`

	// OTLPEndpoint enables tracing when set, e.g. http://localhost:4318
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: "MAPFANTASAI_"}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field and reports all problems at once
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.Fieldf("GRPCPort", "must be between 1 and 65535, got %d", c.GRPCPort)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		vb.Field("LogLevel", err.Error())
	}
	errors.ValidateEnum("LogFormat", c.LogFormat, []string{LogFormatText, LogFormatJSON}, vb)
	errors.ValidateEnum("Sink", c.Sink, []string{SinkLog, SinkRedis, SinkSQLite}, vb)

	switch c.Sink {
	case SinkRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case SinkSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	if c.CatalogTimeout < 0 {
		vb.Field("CatalogTimeout", "must not be negative")
	}
	if c.CatalogCacheTTL < 0 {
		vb.Field("CatalogCacheTTL", "must not be negative")
	}

	return vb.Build()
}

// NewLogger builds the process logger described by the config
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}

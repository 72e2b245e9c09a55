package config_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/coldtimes/MapFantasai/internal/config"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Assert().Equal(50051, cfg.GRPCPort)
	s.Assert().Equal(config.SinkLog, cfg.Sink)
	s.Assert().Equal(24*time.Hour, cfg.CatalogCacheTTL)
	s.Assert().Empty(cfg.OTLPEndpoint)
}

func (s *ConfigTestSuite) TestEnvironmentOverrides() {
	s.T().Setenv("MAPFANTASAI_GRPC_PORT", "6000")
	s.T().Setenv("MAPFANTASAI_SINK", "sqlite")
	s.T().Setenv("MAPFANTASAI_SQLITE_PATH", "/tmp/chars.db")
	s.T().Setenv("MAPFANTASAI_CATALOG_TIMEOUT", "5s")

	cfg, err := config.Load()
	s.Require().NoError(err)
	s.Assert().Equal(6000, cfg.GRPCPort)
	s.Assert().Equal(config.SinkSQLite, cfg.Sink)
	s.Assert().Equal("/tmp/chars.db", cfg.SQLitePath)
	s.Assert().Equal(5*time.Second, cfg.CatalogTimeout)
}

func (s *ConfigTestSuite) TestUnparsableEnvironment() {
	s.T().Setenv("MAPFANTASAI_GRPC_PORT", "not-a-port")

	_, err := config.Load()
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidateReportsEveryField() {
	cfg := &config.Config{
		GRPCPort:       0,
		LogLevel:       "loud",
		LogFormat:      "xml",
		Sink:           config.SinkRedis,
		CatalogTimeout: -time.Second,
	}

	err := cfg.Validate()
	s.Require().Error(err)
	s.Assert().Equal(
		[]string{"GRPCPort", "LogLevel", "LogFormat", "RedisAddr", "CatalogTimeout"},
		errors.InvalidFields(err),
	)
}

func (s *ConfigTestSuite) TestNewLogger() {
	cfg := &config.Config{LogLevel: "warn", LogFormat: config.LogFormatJSON}
	var buf bytes.Buffer
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	s.Assert().Zero(buf.Len())

	logger.Warn("shown", "key", "value")
	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	s.Assert().Equal("shown", entry["msg"])
	s.Assert().True(logger.Enabled(context.Background(), 4))
}

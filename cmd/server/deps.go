package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/coldtimes/MapFantasai/internal/clients/catalog"
	"github.com/coldtimes/MapFantasai/internal/config"
	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/orchestrators/submission"
	"github.com/coldtimes/MapFantasai/internal/pkg/clock"
	"github.com/coldtimes/MapFantasai/internal/pkg/idgen"
	"github.com/coldtimes/MapFantasai/internal/redis"
	"github.com/coldtimes/MapFantasai/internal/repositories/characters"
)

// dependencies shared by the server and the terminal form
type dependencies struct {
	cfg       *config.Config
	submitter *submission.Handler
	catalog   *catalog.Client
	roller    *abilities.Roller
	closers   []func()
}

func (d *dependencies) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		d.closers[i]()
	}
}

func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().String("sink", "", "where submitted characters go: log, redis or sqlite")
	cmd.Flags().String("log-level", "", "log level: debug, info, warn or error")
}

// loadConfig reads the environment and applies any flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if f := cmd.Flags().Lookup("sink"); f != nil && f.Changed {
		cfg.Sink = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		cfg.LogLevel = f.Value.String()
	}
	if f := cmd.Flags().Lookup("port"); f != nil && f.Changed {
		cfg.GRPCPort, _ = cmd.Flags().GetInt("port")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.SetDefault(cfg.NewLogger(os.Stderr))
	return cfg, nil
}

func buildDependencies(ctx context.Context, cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{cfg: cfg, roller: abilities.NewRoller(nil)}

	sink, err := buildSink(ctx, cfg, deps)
	if err != nil {
		deps.Close()
		return nil, err
	}

	deps.submitter, err = submission.New(&submission.Config{Sink: sink})
	if err != nil {
		deps.Close()
		return nil, err
	}

	deps.catalog, err = catalog.New(&catalog.Config{
		BaseURL:     cfg.CatalogBaseURL,
		HTTPTimeout: cfg.CatalogTimeout,
		CacheTTL:    cfg.CatalogCacheTTL,
	})
	if err != nil {
		deps.Close()
		return nil, err
	}

	return deps, nil
}

func buildSink(ctx context.Context, cfg *config.Config, deps *dependencies) (submission.Sink, error) {
	var repo characters.Repository

	switch cfg.Sink {
	case config.SinkRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() { _ = client.Close() })
		if err := redis.Ping(ctx, client); err != nil {
			return nil, err
		}
		repo, err = characters.NewRedis(&characters.RedisConfig{Client: client})
		if err != nil {
			return nil, err
		}
	case config.SinkSQLite:
		store, err := characters.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		deps.closers = append(deps.closers, func() { _ = store.Close() })
		repo = store
	case config.SinkLog:
		return submission.NewLogSink(slog.Default()), nil
	default:
		return nil, errors.InvalidArgumentf("unknown sink %q", cfg.Sink)
	}

	slog.InfoContext(ctx, "storing submitted characters", "sink", cfg.Sink)
	return submission.NewRepositorySink(&submission.RepositorySinkConfig{
		Repository:  repo,
		IDGenerator: idgen.NewPrefixed("char"),
		Clock:       clock.New(),
	})
}

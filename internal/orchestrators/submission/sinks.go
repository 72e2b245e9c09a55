package submission

import (
	"context"
	"log/slog"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/pkg/clock"
	"github.com/coldtimes/MapFantasai/internal/pkg/idgen"
	"github.com/coldtimes/MapFantasai/internal/repositories/characters"
)

// LogSink writes each finalized character to a logger as JSON
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink creates a LogSink. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

// Handoff implements Sink
func (s *LogSink) Handoff(ctx context.Context, c *character.Finalized) error {
	data, err := character.EncodeJSON(c, "")
	if err != nil {
		return errors.Wrap(err, "failed to marshal character")
	}
	s.logger.InfoContext(ctx, "character finalized", "character", string(data))
	return nil
}

// RepositorySinkConfig holds the dependencies for a RepositorySink
type RepositorySinkConfig struct {
	Repository  characters.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RepositorySinkConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// RepositorySink stores each finalized character as a new record
type RepositorySink struct {
	repo  characters.Repository
	idGen idgen.Generator
	clock clock.Clock
}

// NewRepositorySink creates a RepositorySink
func NewRepositorySink(cfg *RepositorySinkConfig) (*RepositorySink, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &RepositorySink{repo: cfg.Repository, idGen: cfg.IDGenerator, clock: c}, nil
}

// Handoff implements Sink
func (s *RepositorySink) Handoff(ctx context.Context, c *character.Finalized) error {
	record := &characters.Record{
		ID:          s.idGen.Generate(),
		Character:   c,
		SubmittedAt: s.clock.Now(),
	}

	if _, err := s.repo.Create(ctx, characters.CreateInput{Record: record}); err != nil {
		return errors.Wrapf(err, "failed to store character %s", record.ID)
	}

	slog.DebugContext(ctx, "stored character", "id", record.ID)
	return nil
}

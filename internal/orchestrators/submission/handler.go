// Package submission validates a finished draft and hands the finalized
// character to a sink.
package submission

//go:generate mockgen -destination=mock/mock_sink.go -package=submissionmock github.com/coldtimes/MapFantasai/internal/orchestrators/submission Sink

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

const tracerName = "github.com/coldtimes/MapFantasai/internal/orchestrators/submission"

// Sink receives finalized characters. Where they go is up to the sink.
type Sink interface {
	Handoff(ctx context.Context, c *character.Finalized) error
}

// Config holds the dependencies for the submission handler
type Config struct {
	Sink Sink
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}
	return vb.Build()
}

// Handler turns drafts into finalized characters
type Handler struct {
	sink Sink
}

// New creates a submission handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Handler{sink: cfg.Sink}, nil
}

// Validate reports every identity field that is empty after trimming, in
// form order. Ability scores are not range checked and may be NaN.
func Validate(d character.Draft) error {
	vb := errors.NewValidationBuilder()
	for _, f := range character.IdentityFields() {
		errors.ValidateRequired(f.String(), d.Identity(f), vb)
	}
	return vb.Build()
}

// Submit validates d and hands a deep copy of it to the sink exactly once.
// On a validation error the sink is not called. A sink error is returned
// wrapped; nothing is retried.
func (h *Handler) Submit(ctx context.Context, d character.Draft) (*character.Finalized, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "submission.Submit")
	defer span.End()

	if err := Validate(d); err != nil {
		span.SetStatus(otelcodes.Error, "validation failed")
		slog.InfoContext(ctx, "character submission rejected", "missing", errors.InvalidFields(err))
		return nil, err
	}

	finalized := d.Finalize()
	span.SetAttributes(
		attribute.String("character.race", finalized.Race),
		attribute.String("character.class", finalized.Class),
	)

	if err := h.sink.Handoff(ctx, finalized); err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, "handoff failed")
		slog.ErrorContext(ctx, "character handoff failed", "name", finalized.Name, "error", err)
		return nil, errors.Wrap(err, "failed to hand off character")
	}

	slog.InfoContext(ctx, "character submitted", "name", finalized.Name)
	return finalized, nil
}

// Package catalog suggests values for the identity fields from the D&D 5e API
package catalog

//go:generate mockgen -destination=mock/mock_lister.go -package=catalogmock github.com/coldtimes/MapFantasai/internal/clients/catalog Lister

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

const (
	// DefaultBaseURL is the public D&D 5e API
	DefaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	defaultHTTPTimeout = 30 * time.Second
	defaultCacheTTL    = 24 * time.Hour
)

// Lister is the part of the D&D 5e API used for suggestions
type Lister interface {
	ListRaces() ([]*entities.ReferenceItem, error)
	ListClasses() ([]*entities.ReferenceItem, error)
}

// Option is one suggested value for an identity field
type Option struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Config contains configuration options for the catalog client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Lister replaces the HTTP client; used in tests
	Lister Lister
}

// Validate sets defaults for anything not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = defaultCacheTTL
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.CacheTTL < 0 {
		vb.Field("CacheTTL", "must not be negative")
	}
	return vb.Build()
}

// Client lists suggestions for identity fields
type Client struct {
	lister Lister
}

// New creates a catalog client backed by the cached D&D 5e API client
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.Lister != nil {
		return &Client{lister: cfg.Lister}, nil
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	return &Client{lister: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

// ListOptions returns suggestions for field sorted by name. Only race and
// class have a catalog; every other field returns an empty list. The values
// are hints and do not restrict what the field accepts.
func (c *Client) ListOptions(ctx context.Context, field character.IdentityField) ([]Option, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "catalog request canceled")
	}

	var (
		refs []*entities.ReferenceItem
		err  error
	)
	switch field {
	case character.FieldRace:
		refs, err = c.lister.ListRaces()
	case character.FieldClass:
		refs, err = c.lister.ListClasses()
	default:
		return []Option{}, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "catalog lookup failed", "field", field.String(), "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list "+field.String()+" options")
	}

	options := make([]Option, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		options = append(options, Option{Key: ref.Key, Name: ref.Name})
	}
	sort.Slice(options, func(i, j int) bool { return options[i].Name < options[j].Name })

	return options, nil
}

package draft

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

// EventDraftChanged is published on the bus after every applied intent.
// The event source is a *character.DraftEntity holding the new snapshot.
const EventDraftChanged = "draft.changed"

// StoreConfig holds the dependencies for a Store
type StoreConfig struct {
	// ID identifies the form session in events and logs
	ID       string
	EventBus events.EventBus
	// Initial is the starting draft; nil starts from character.NewDraft()
	Initial *character.Draft
}

// Validate ensures all required dependencies are provided
func (c *StoreConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("ID", c.ID, vb)
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	return vb.Build()
}

// Store holds the current draft of one form session and tells subscribers
// about each new snapshot. It belongs to a single event loop and is not safe
// for concurrent use.
type Store struct {
	id    string
	bus   events.EventBus
	draft character.Draft
}

// NewStore creates a Store for one form session
func NewStore(cfg *StoreConfig) (*Store, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	initial := character.NewDraft()
	if cfg.Initial != nil {
		initial = cfg.Initial.Clone()
	}

	return &Store{
		id:    cfg.ID,
		bus:   cfg.EventBus,
		draft: initial,
	}, nil
}

// ID returns the form session ID
func (s *Store) ID() string {
	return s.id
}

// Draft returns a copy of the current snapshot
func (s *Store) Draft() character.Draft {
	return s.draft.Clone()
}

// Preview renders the current snapshot as indented JSON
func (s *Store) Preview() (string, error) {
	return Preview(s.draft)
}

// Apply replaces the current snapshot with the result of intent and publishes
// EventDraftChanged. The snapshot is replaced even if a subscriber fails.
func (s *Store) Apply(ctx context.Context, intent Intent) (character.Draft, error) {
	s.draft = Apply(s.draft, intent)

	slog.DebugContext(ctx, "applied draft intent",
		"form_id", s.id,
		"intent", intent.kind(),
	)

	source := &character.DraftEntity{ID: s.id, Draft: s.draft.Clone()}
	if err := s.bus.Publish(ctx, events.NewGameEvent(EventDraftChanged, source, nil)); err != nil {
		return s.Draft(), errors.Wrap(err, "failed to notify draft subscribers")
	}

	return s.Draft(), nil
}

// ApplyAll applies intents in order, stopping at the first notification error
func (s *Store) ApplyAll(ctx context.Context, intents ...Intent) (character.Draft, error) {
	for _, intent := range intents {
		if _, err := s.Apply(ctx, intent); err != nil {
			return s.Draft(), err
		}
	}
	return s.Draft(), nil
}

// OnChange registers fn to receive every new snapshot of this session and
// returns the subscription ID.
func (s *Store) OnChange(fn func(ctx context.Context, d character.Draft) error) string {
	return s.bus.SubscribeFunc(EventDraftChanged, 0, func(ctx context.Context, event events.Event) error {
		entity, ok := event.Source().(*character.DraftEntity)
		if !ok || entity.ID != s.id {
			return nil
		}
		return fn(ctx, entity.Draft)
	})
}

// Unsubscribe removes a subscription created by OnChange
func (s *Store) Unsubscribe(id string) error {
	return s.bus.Unsubscribe(id)
}

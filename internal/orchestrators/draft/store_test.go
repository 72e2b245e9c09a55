package draft_test

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/orchestrators/draft"
)

// failingBus rejects every publish
type failingBus struct{}

func (b *failingBus) Publish(_ context.Context, _ events.Event) error { return stderrors.New("bus closed") }
func (b *failingBus) Subscribe(_ string, _ events.Handler) string     { return "sub-id" }
func (b *failingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *failingBus) Unsubscribe(_ string) error { return nil }
func (b *failingBus) Clear(_ string)             {}
func (b *failingBus) ClearAll()                  {}

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	bus   *events.Bus
	store *draft.Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bus = events.NewBus()

	store, err := draft.NewStore(&draft.StoreConfig{ID: "form_1", EventBus: s.bus})
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TestNewStoreValidatesConfig() {
	_, err := draft.NewStore(&draft.StoreConfig{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal([]string{"ID", "EventBus"}, errors.InvalidFields(err))

	_, err = draft.NewStore(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *StoreTestSuite) TestStartsFromDefaults() {
	s.Assert().Equal("form_1", s.store.ID())
	s.Assert().Equal(character.NewDraft(), s.store.Draft())
}

func (s *StoreTestSuite) TestStartsFromInitialCopy() {
	initial := character.NewDraft()
	initial.Inventory = character.Tags{"Sword"}

	store, err := draft.NewStore(&draft.StoreConfig{ID: "form_2", EventBus: s.bus, Initial: &initial})
	s.Require().NoError(err)

	initial.Inventory[0] = "Shield"
	s.Assert().Equal(character.Tags{"Sword"}, store.Draft().Inventory)
}

func (s *StoreTestSuite) TestApplyReplacesSnapshotAndNotifies() {
	var seen []character.Draft
	s.store.OnChange(func(_ context.Context, d character.Draft) error {
		seen = append(seen, d)
		return nil
	})

	before := s.store.Draft()
	after, err := s.store.Apply(s.ctx, draft.AddTagIntent{List: character.ListInventory, Raw: " Sword "})
	s.Require().NoError(err)

	s.Assert().Equal(character.Tags{"Sword"}, after.Inventory)
	s.Assert().Empty(before.Inventory)
	s.Assert().Equal(after, s.store.Draft())
	s.Require().Len(seen, 1)
	s.Assert().Equal(after, seen[0])
}

func (s *StoreTestSuite) TestOnChangeIgnoresOtherSessions() {
	other, err := draft.NewStore(&draft.StoreConfig{ID: "form_other", EventBus: s.bus})
	s.Require().NoError(err)

	calls := 0
	s.store.OnChange(func(_ context.Context, _ character.Draft) error {
		calls++
		return nil
	})

	_, err = other.Apply(s.ctx, draft.SetIdentityIntent{Field: character.FieldName, Value: "Boromir"})
	s.Require().NoError(err)
	s.Assert().Equal(0, calls)
}

func (s *StoreTestSuite) TestUnsubscribeStopsNotifications() {
	calls := 0
	id := s.store.OnChange(func(_ context.Context, _ character.Draft) error {
		calls++
		return nil
	})
	s.Require().NoError(s.store.Unsubscribe(id))

	_, err := s.store.Apply(s.ctx, draft.UpdateStatIntent{Ability: character.Wisdom, Raw: "12"})
	s.Require().NoError(err)
	s.Assert().Equal(0, calls)
}

func (s *StoreTestSuite) TestApplyAll() {
	d, err := s.store.ApplyAll(s.ctx,
		draft.SetIdentityIntent{Field: character.FieldClass, Value: "ranger"},
		draft.UpdateStatIntent{Ability: character.Strength, Raw: "17"},
	)
	s.Require().NoError(err)
	s.Assert().Equal("ranger", d.Class)
	s.Assert().Equal(character.NewScore(17), d.Stats.Get(character.Strength))
}

func (s *StoreTestSuite) TestPublishFailureKeepsNewSnapshot() {
	store, err := draft.NewStore(&draft.StoreConfig{ID: "form_3", EventBus: &failingBus{}})
	s.Require().NoError(err)

	d, err := store.Apply(s.ctx, draft.SetIdentityIntent{Field: character.FieldName, Value: "Aragorn"})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "failed to notify draft subscribers")
	s.Assert().Equal("Aragorn", d.Name)
	s.Assert().Equal("Aragorn", store.Draft().Name)
}

func (s *StoreTestSuite) TestPreview() {
	_, err := s.store.Apply(s.ctx, draft.SetIdentityIntent{Field: character.FieldName, Value: "Aragorn"})
	s.Require().NoError(err)

	out, err := s.store.Preview()
	s.Require().NoError(err)
	s.Assert().Contains(out, `"name": "Aragorn"`)
}

// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/coldtimes/MapFantasai/internal/entities/character"
)

// DraftBuilder provides a fluent interface for building test character drafts
type DraftBuilder struct {
	draft character.Draft
}

// NewDraftBuilder creates a new builder starting from the default draft
func NewDraftBuilder() *DraftBuilder {
	return &DraftBuilder{draft: character.NewDraft()}
}

// WithName sets the character name
func (b *DraftBuilder) WithName(name string) *DraftBuilder {
	b.draft.Name = name
	return b
}

// WithIdentity sets all five identity fields
func (b *DraftBuilder) WithIdentity(name, gender, race, class, background string) *DraftBuilder {
	b.draft.Name = name
	b.draft.Gender = gender
	b.draft.Race = race
	b.draft.Class = class
	b.draft.Background = background
	return b
}

// WithStats sets the six ability scores in canonical order
func (b *DraftBuilder) WithStats(str, dex, con, intel, wis, cha int) *DraftBuilder {
	for i, v := range []int{str, dex, con, intel, wis, cha} {
		b.draft.Stats = b.draft.Stats.With(character.Abilities()[i], character.NewScore(v))
	}
	return b
}

// WithNaNStat marks one ability as not-a-number
func (b *DraftBuilder) WithNaNStat(a character.Ability) *DraftBuilder {
	b.draft.Stats = b.draft.Stats.With(a, character.NaN())
	return b
}

// WithInventory replaces the inventory
func (b *DraftBuilder) WithInventory(items ...string) *DraftBuilder {
	b.draft.Inventory = append(character.Tags{}, items...)
	return b
}

// WithTraits replaces the personality traits
func (b *DraftBuilder) WithTraits(traits ...string) *DraftBuilder {
	b.draft.PersonalityTraits = append(character.Tags{}, traits...)
	return b
}

// WithQuirks replaces the quirks
func (b *DraftBuilder) WithQuirks(quirks ...string) *DraftBuilder {
	b.draft.Quirks = append(character.Tags{}, quirks...)
	return b
}

// WithLocation sets the map location
func (b *DraftBuilder) WithLocation(x, y float64) *DraftBuilder {
	b.draft.Location = character.Location{x, y}
	return b
}

// Build returns a copy of the built draft
func (b *DraftBuilder) Build() character.Draft {
	return b.draft.Clone()
}

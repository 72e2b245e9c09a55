// Package draft implements the character form's draft transitions.
//
// Every function takes the current draft and returns the next one; the input
// is never modified. Store layers a current snapshot and change notifications
// on top for presentation code that wants them.
package draft

import (
	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/pkg/taglist"
)

// SetIdentity replaces one identity field. Any string is accepted, including
// an empty one; required fields are checked on submission.
func SetIdentity(d character.Draft, field character.IdentityField, value string) character.Draft {
	return d.WithIdentity(field, value)
}

// SetName replaces the character name
func SetName(d character.Draft, value string) character.Draft {
	d.Name = value
	return d
}

// SetGender replaces the character gender
func SetGender(d character.Draft, value string) character.Draft {
	d.Gender = value
	return d
}

// SetRace replaces the character race
func SetRace(d character.Draft, value string) character.Draft {
	d.Race = value
	return d
}

// SetClass replaces the character class
func SetClass(d character.Draft, value string) character.Draft {
	d.Class = value
	return d
}

// SetBackground replaces the character background
func SetBackground(d character.Draft, value string) character.Draft {
	d.Background = value
	return d
}

// UpdateStat stores the parsed raw input for one ability. Unparseable input is
// stored as the not-a-number sentinel. It panics if ability is not one of
// the six abilities.
func UpdateStat(d character.Draft, ability character.Ability, raw string) character.Draft {
	d.Stats = d.Stats.With(ability, abilities.Parse(raw))
	return d
}

// TagOp is an edit of a single tag list: AddTag or RemoveTag
type TagOp interface {
	applyTo(tags character.Tags) character.Tags
}

// AddTag appends the trimmed input, or does nothing if it is blank
type AddTag struct {
	Raw string
}

func (op AddTag) applyTo(tags character.Tags) character.Tags {
	return taglist.Add(tags, op.Raw)
}

// RemoveTag removes the element at Index. An index outside the list panics.
type RemoveTag struct {
	Index int
}

func (op RemoveTag) applyTo(tags character.Tags) character.Tags {
	return taglist.Remove(tags, op.Index)
}

// UpdateTagList applies op to one of the three tag lists. It panics if list
// is not a valid TagList.
func UpdateTagList(d character.Draft, list character.TagList, op TagOp) character.Draft {
	return d.WithList(list, op.applyTo(d.List(list)))
}

package draft

import (
	"strconv"

	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
)

// Intent is one user action forwarded by the presentation layer. The set of
// intents is closed: SetIdentityIntent, UpdateStatIntent, AddTagIntent and
// RemoveTagIntent.
type Intent interface {
	apply(d character.Draft) character.Draft
	kind() string
}

// SetIdentityIntent sets one identity field
type SetIdentityIntent struct {
	Field character.IdentityField
	Value string
}

func (i SetIdentityIntent) apply(d character.Draft) character.Draft {
	return SetIdentity(d, i.Field, i.Value)
}

func (SetIdentityIntent) kind() string { return "set_identity" }

// UpdateStatIntent stores raw input for one ability
type UpdateStatIntent struct {
	Ability character.Ability
	Raw     string
}

func (i UpdateStatIntent) apply(d character.Draft) character.Draft {
	return UpdateStat(d, i.Ability, i.Raw)
}

func (UpdateStatIntent) kind() string { return "update_stat" }

// AddTagIntent commits pending input to a tag list
type AddTagIntent struct {
	List character.TagList
	Raw  string
}

func (i AddTagIntent) apply(d character.Draft) character.Draft {
	return UpdateTagList(d, i.List, AddTag{Raw: i.Raw})
}

func (AddTagIntent) kind() string { return "add_tag" }

// RemoveTagIntent removes one rendered tag
type RemoveTagIntent struct {
	List  character.TagList
	Index int
}

func (i RemoveTagIntent) apply(d character.Draft) character.Draft {
	return UpdateTagList(d, i.List, RemoveTag{Index: i.Index})
}

func (RemoveTagIntent) kind() string { return "remove_tag" }

// Apply returns the draft that results from intent
func Apply(d character.Draft, intent Intent) character.Draft {
	return intent.apply(d)
}

// RollIntents turns rolled scores into stat updates, so rolled values enter
// the draft through the same parsing as typed ones.
func RollIntents(rolls []abilities.Roll) []Intent {
	intents := make([]Intent, 0, len(rolls))
	for _, roll := range rolls {
		intents = append(intents, UpdateStatIntent{
			Ability: roll.Ability,
			Raw:     strconv.Itoa(roll.Total),
		})
	}
	return intents
}

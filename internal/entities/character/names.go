package character

import (
	"fmt"
	"strings"

	"github.com/coldtimes/MapFantasai/internal/errors"
	"github.com/coldtimes/MapFantasai/internal/pkg/suggest"
)

// Ability is one of the six fixed ability scores
type Ability int

// Abilities, in the order they are serialized
const (
	Strength Ability = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma

	abilityCount
)

var abilityNames = [abilityCount]string{
	"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma",
}

// Abilities returns all six abilities in serialization order
func Abilities() []Ability {
	all := make([]Ability, abilityCount)
	for i := range all {
		all[i] = Ability(i)
	}
	return all
}

// Valid reports whether a names one of the six abilities
func (a Ability) Valid() bool {
	return a >= 0 && a < abilityCount
}

func (a Ability) String() string {
	if !a.Valid() {
		return fmt.Sprintf("Ability(%d)", int(a))
	}
	return abilityNames[a]
}

// IdentityField is one of the five free-text identity fields
type IdentityField int

// Identity fields, in the order they are serialized
const (
	FieldName IdentityField = iota
	FieldGender
	FieldRace
	FieldClass
	FieldBackground

	identityFieldCount
)

var identityFieldNames = [identityFieldCount]string{
	"name", "gender", "race", "class", "background",
}

// IdentityFields returns all identity fields in serialization order
func IdentityFields() []IdentityField {
	all := make([]IdentityField, identityFieldCount)
	for i := range all {
		all[i] = IdentityField(i)
	}
	return all
}

// Valid reports whether f names one of the identity fields
func (f IdentityField) Valid() bool {
	return f >= 0 && f < identityFieldCount
}

func (f IdentityField) String() string {
	if !f.Valid() {
		return fmt.Sprintf("IdentityField(%d)", int(f))
	}
	return identityFieldNames[f]
}

// TagList is one of the three ordered tag lists
type TagList int

// Tag lists, in the order they are serialized
const (
	ListInventory TagList = iota
	ListPersonalityTraits
	ListQuirks

	tagListCount
)

var tagListNames = [tagListCount]string{
	"inventory", "personality_traits", "quirks",
}

// TagLists returns all tag lists in serialization order
func TagLists() []TagList {
	all := make([]TagList, tagListCount)
	for i := range all {
		all[i] = TagList(i)
	}
	return all
}

// Valid reports whether l names one of the tag lists
func (l TagList) Valid() bool {
	return l >= 0 && l < tagListCount
}

func (l TagList) String() string {
	if !l.Valid() {
		return fmt.Sprintf("TagList(%d)", int(l))
	}
	return tagListNames[l]
}

// ParseAbility maps a wire name such as "strength" to its Ability.
// Unknown names return InvalidArgument with a suggestion when one is close.
func ParseAbility(name string) (Ability, error) {
	i, err := parseName("ability", name, abilityNames[:])
	return Ability(i), err
}

// ParseIdentityField maps a wire name such as "race" to its IdentityField
func ParseIdentityField(name string) (IdentityField, error) {
	i, err := parseName("identity field", name, identityFieldNames[:])
	return IdentityField(i), err
}

// ParseTagList maps a wire name such as "quirks" to its TagList.
// "traits" is accepted for personality_traits.
func ParseTagList(name string) (TagList, error) {
	if strings.EqualFold(strings.TrimSpace(name), "traits") {
		return ListPersonalityTraits, nil
	}
	i, err := parseName("tag list", name, tagListNames[:])
	return TagList(i), err
}

func parseName(kind, name string, known []string) (int, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range known {
		if normalized == candidate {
			return i, nil
		}
	}

	err := errors.InvalidArgumentf("unknown %s %q", kind, name).
		WithMeta("allowed", strings.Join(known, ", "))
	if guess, ok := suggest.Closest(normalized, known); ok {
		err = err.WithMeta("suggestion", guess)
	}
	return -1, err
}

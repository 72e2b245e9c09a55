// Package character defines the character draft built by the creation form
// and the finalized record produced when it is submitted.
package character

import (
	"fmt"

	"github.com/coldtimes/MapFantasai/internal/errors"
)

// Location is the (x, y) map position of a character
type Location [2]float64

// Draft is the in-progress character record. It is a value: operations that
// change it return a new Draft and leave the original untouched.
// Field order is the order used by the JSON preview.
type Draft struct {
	Name              string   `json:"name"`
	Gender            string   `json:"gender"`
	Race              string   `json:"race"`
	Class             string   `json:"class"`
	Background        string   `json:"background"`
	Stats             Stats    `json:"stats"`
	Inventory         Tags     `json:"inventory"`
	PersonalityTraits Tags     `json:"personality_traits"`
	Quirks            Tags     `json:"quirks"`
	Location          Location `json:"location"`
}

// Finalized is the immutable record handed off after a successful submission.
// It has exactly the shape of Draft.
type Finalized Draft

// NewDraft returns the draft a form session starts with: empty identity,
// every ability at 0, empty tag lists and location (0, 0).
func NewDraft() Draft {
	return Draft{
		Inventory:         Tags{},
		PersonalityTraits: Tags{},
		Quirks:            Tags{},
	}
}

// Clone returns a deep copy of d
func (d Draft) Clone() Draft {
	d.Inventory = d.Inventory.Clone()
	d.PersonalityTraits = d.PersonalityTraits.Clone()
	d.Quirks = d.Quirks.Clone()
	return d
}

// Finalize returns a deep copy of d as a finalized record
func (d Draft) Finalize() *Finalized {
	f := Finalized(d.Clone())
	return &f
}

// Identity returns the value of an identity field. It panics on an invalid field.
func (d Draft) Identity(f IdentityField) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldGender:
		return d.Gender
	case FieldRace:
		return d.Race
	case FieldClass:
		return d.Class
	case FieldBackground:
		return d.Background
	default:
		panic(fmt.Sprintf("character: unknown identity field %d", int(f)))
	}
}

// WithIdentity returns a copy of d with field f set to value
func (d Draft) WithIdentity(f IdentityField, value string) Draft {
	switch f {
	case FieldName:
		d.Name = value
	case FieldGender:
		d.Gender = value
	case FieldRace:
		d.Race = value
	case FieldClass:
		d.Class = value
	case FieldBackground:
		d.Background = value
	default:
		panic(fmt.Sprintf("character: unknown identity field %d", int(f)))
	}
	return d
}

// List returns the tag list l. It panics on an invalid list.
func (d Draft) List(l TagList) Tags {
	switch l {
	case ListInventory:
		return d.Inventory
	case ListPersonalityTraits:
		return d.PersonalityTraits
	case ListQuirks:
		return d.Quirks
	default:
		panic(fmt.Sprintf("character: unknown tag list %d", int(l)))
	}
}

// WithList returns a copy of d with tag list l replaced by tags
func (d Draft) WithList(l TagList, tags Tags) Draft {
	switch l {
	case ListInventory:
		d.Inventory = tags
	case ListPersonalityTraits:
		d.PersonalityTraits = tags
	case ListQuirks:
		d.Quirks = tags
	default:
		panic(fmt.Sprintf("character: unknown tag list %d", int(l)))
	}
	return d
}

// Validate checks a draft received from outside the process: every tag must
// already be trimmed and non-empty, as the tag editor would have left it.
func (d Draft) Validate() error {
	vb := errors.NewValidationBuilder()
	for _, l := range TagLists() {
		if i, ok := d.List(l).valid(); !ok {
			vb.Fieldf(l.String(), "element %d must be non-empty and trimmed", i)
		}
	}
	return vb.Build()
}

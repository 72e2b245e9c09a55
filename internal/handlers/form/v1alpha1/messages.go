package v1alpha1

import (
	"github.com/coldtimes/MapFantasai/internal/clients/catalog"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
)

// NewDraftRequest starts a form session
type NewDraftRequest struct{}

// DraftResponse is the draft after an intent, with its JSON preview
type DraftResponse struct {
	Draft   character.Draft `json:"draft"`
	Preview string          `json:"preview"`
}

// SetFieldRequest replaces one identity field
type SetFieldRequest struct {
	Draft *character.Draft `json:"draft"`
	Field string           `json:"field"`
	Value string           `json:"value"`
}

// UpdateStatRequest stores raw text as an ability score
type UpdateStatRequest struct {
	Draft   *character.Draft `json:"draft"`
	Ability string           `json:"ability"`
	Raw     string           `json:"raw"`
}

// AddTagRequest appends a tag to a list
type AddTagRequest struct {
	Draft *character.Draft `json:"draft"`
	List  string           `json:"list"`
	Raw   string           `json:"raw"`
}

// RemoveTagRequest removes the tag at Index from a list
type RemoveTagRequest struct {
	Draft *character.Draft `json:"draft"`
	List  string           `json:"list"`
	Index int              `json:"index"`
}

// PreviewRequest asks for the JSON preview of a draft
type PreviewRequest struct {
	Draft *character.Draft `json:"draft"`
}

// PreviewResponse holds the indented JSON preview
type PreviewResponse struct {
	Preview string `json:"preview"`
}

// RollStatsRequest fills every ability with a 4d6 drop lowest roll
type RollStatsRequest struct {
	Draft *character.Draft `json:"draft"`
}

// RolledStat describes one rolled ability
type RolledStat struct {
	Ability string `json:"ability"`
	Dice    []int  `json:"dice"`
	Dropped int    `json:"dropped"`
	Total   int    `json:"total"`
}

// RollStatsResponse is the draft after rolling, with the rolls
type RollStatsResponse struct {
	Draft   character.Draft `json:"draft"`
	Preview string          `json:"preview"`
	Rolls   []RolledStat    `json:"rolls"`
}

// SubmitRequest finalizes a draft
type SubmitRequest struct {
	Draft *character.Draft `json:"draft"`
}

// SubmitResponse holds the record handed off
type SubmitResponse struct {
	Character *character.Finalized `json:"character"`
}

// ListOptionsRequest asks for suggestions for an identity field
type ListOptionsRequest struct {
	Field string `json:"field"`
}

// ListOptionsResponse holds the suggestions, possibly none
type ListOptionsResponse struct {
	Options []catalog.Option `json:"options"`
}

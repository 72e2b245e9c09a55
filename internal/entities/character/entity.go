package character

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeDraft is the rpg-toolkit entity type of a form session's draft
const EntityTypeDraft = "character_draft"

// DraftEntity wraps a Draft snapshot to implement the rpg-toolkit core.Entity
// interface, so it can travel as the source of bus events.
type DraftEntity struct {
	ID    string
	Draft Draft
}

var _ core.Entity = (*DraftEntity)(nil)

// GetID returns the form session ID
func (e *DraftEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *DraftEntity) GetType() string {
	return EntityTypeDraft
}

package testutils

import (
	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/testutils/builders"
)

const (
	// TestCharacterName is the default character name for test fixtures
	TestCharacterName = "Thorin Oakenshield"
)

// CreateTestDraft creates a draft that passes submission validation
func CreateTestDraft() character.Draft {
	return builders.NewDraftBuilder().
		WithIdentity(TestCharacterName, "male", "dwarf", "fighter", "soldier").
		WithStats(15, 13, 14, 8, 12, 10).
		WithInventory("Axe", "Rope").
		WithTraits("stubborn").
		WithQuirks("hums while walking").
		Build()
}

// CreateTestDraftMissing creates a complete draft and blanks the named identity fields
func CreateTestDraftMissing(fields ...character.IdentityField) character.Draft {
	d := CreateTestDraft()
	for _, f := range fields {
		d = d.WithIdentity(f, "")
	}
	return d
}

// Package characters stores the finalized characters handed off by the form
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/coldtimes/MapFantasai/internal/repositories/characters Repository

import (
	"context"
	"time"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
	"github.com/coldtimes/MapFantasai/internal/errors"
)

// Record is one submitted character
type Record struct {
	ID          string               `json:"id"`
	Character   *character.Finalized `json:"character"`
	SubmittedAt time.Time            `json:"submitted_at"`
}

// Repository defines the interface for submitted character persistence
type Repository interface {
	// Create stores a new record
	// Returns errors.InvalidArgument for a missing ID or character
	// Returns errors.AlreadyExists if a record with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a record by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the record doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns the most recently submitted records first
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a record
type CreateInput struct {
	Record *Record
}

// CreateOutput defines the output for creating a record
type CreateOutput struct {
	Record *Record
}

// GetInput defines the input for getting a record
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a record
type GetOutput struct {
	Record *Record
}

// ListInput defines the input for listing records
type ListInput struct {
	// Limit caps the number of records; zero means DefaultListLimit
	Limit int
}

// ListOutput defines the output for listing records
type ListOutput struct {
	Records []*Record
}

// DefaultListLimit is used when ListInput.Limit is zero or negative
const DefaultListLimit = 50

const (
	errRecordNil     = "record cannot be nil"
	errRecordIDEmpty = "record ID cannot be empty"
	errCharacterNil  = "record character cannot be nil"
)

func validateRecord(r *Record) error {
	switch {
	case r == nil:
		return errors.InvalidArgument(errRecordNil)
	case r.ID == "":
		return errors.InvalidArgument(errRecordIDEmpty)
	case r.Character == nil:
		return errors.InvalidArgument(errCharacterNil)
	}
	return nil
}

func listLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return limit
}

// Package packs provides the interface for compendium pack persistence
package packs

//go:generate mockgen -destination=mock/mock_repository.go -package=packsmock github.com/KirkDiggler/hol-api/internal/repositories/packs Repository

import (
	"context"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// Repository stores compendium pack metadata
type Repository interface {
	// Get retrieves a pack by its collection id (package.name)
	// Returns errors.NotFound if the pack doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Create stores a new pack
	// Returns errors.AlreadyExists if a pack with the same id exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// List returns every pack sorted by id
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// SetLocked changes the locked flag of a pack
	// Returns errors.NotFound if the pack doesn't exist
	SetLocked(ctx context.Context, input SetLockedInput) (*SetLockedOutput, error)
}

// GetInput defines the input for getting a pack
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a pack
type GetOutput struct {
	Pack *hol.Pack
}

// CreateInput defines the input for creating a pack
type CreateInput struct {
	Pack *hol.Pack
}

// CreateOutput defines the output for creating a pack
type CreateOutput struct {
	Pack *hol.Pack
}

// ListInput defines the input for listing packs
type ListInput struct{}

// ListOutput defines the output for listing packs
type ListOutput struct {
	Packs []*hol.Pack
}

// SetLockedInput defines the input for locking or unlocking a pack
type SetLockedInput struct {
	ID     string
	Locked bool
}

// SetLockedOutput defines the output for locking or unlocking a pack
type SetLockedOutput struct {
	Pack *hol.Pack
}

// Package actors provides the interface for actor persistence
package actors

//go:generate mockgen -destination=mock/mock_repository.go -package=actorsmock github.com/KirkDiggler/hol-api/internal/repositories/actors Repository

import (
	"context"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// Repository stores actors together with their embedded items
type Repository interface {
	// Create stores a new actor
	// Returns errors.AlreadyExists if an actor with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an actor by ID
	// Returns errors.NotFound if the actor doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an actor document
	// Returns errors.NotFound if the actor doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating an actor
type CreateInput struct {
	Actor *hol.Actor
}

// CreateOutput defines the output for creating an actor
type CreateOutput struct {
	Actor *hol.Actor
}

// GetInput defines the input for getting an actor
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an actor
type GetOutput struct {
	Actor *hol.Actor
}

// UpdateInput defines the input for updating an actor
type UpdateInput struct {
	Actor *hol.Actor
}

// UpdateOutput defines the output for updating an actor
type UpdateOutput struct {
	Actor *hol.Actor
}

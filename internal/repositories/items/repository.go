// Package items provides the interface for item document persistence
package items

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/KirkDiggler/hol-api/internal/repositories/items Repository

import (
	"context"

	"github.com/KirkDiggler/hol-api/internal/entities/hol"
)

// Repository stores item documents, both world items and pack entries.
// An item with an empty Pack is a world item.
type Repository interface {
	// Create stores a new item
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if an item with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an item with a single write so name and stats change together
	// Returns errors.NotFound if the item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPack returns every item in a pack ordered by creation time
	ListByPack(ctx context.Context, input ListByPackInput) (*ListByPackOutput, error)

	// DeleteByPack removes every item in a pack
	DeleteByPack(ctx context.Context, input DeleteByPackInput) (*DeleteByPackOutput, error)

	// ListWorld returns every world item ordered by creation time
	ListWorld(ctx context.Context, input ListWorldInput) (*ListWorldOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *hol.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *hol.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *hol.Item
}

// UpdateInput defines the input for updating an item
type UpdateInput struct {
	Item *hol.Item
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *hol.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}

// ListByPackInput defines the input for listing a pack
type ListByPackInput struct {
	PackID string
}

// ListByPackOutput defines the output for listing a pack
type ListByPackOutput struct {
	Items []*hol.Item
}

// DeleteByPackInput defines the input for clearing a pack
type DeleteByPackInput struct {
	PackID string
}

// DeleteByPackOutput defines the output for clearing a pack
type DeleteByPackOutput struct {
	Deleted int
}

// ListWorldInput defines the input for listing world items
type ListWorldInput struct{}

// ListWorldOutput defines the output for listing world items
type ListWorldOutput struct {
	Items []*hol.Item
}

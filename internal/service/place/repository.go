package place

import (
	"context"

	"github.com/roamly/places-api/internal/domain"
)

// Repository defines the data access contract for places.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single place. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.Place, error)

	// ListByCreator returns all places created by the given user, oldest
	// first. An empty slice is not an error at this layer.
	ListByCreator(ctx context.Context, creatorID string) ([]domain.Place, error)

	// Create inserts the place and appends its id to the creator's place
	// list in a single transaction. Both writes commit together or neither
	// is visible. Returns ErrInvalidCreator if the creator doesn't exist.
	Create(ctx context.Context, p *domain.Place) error

	// Update overwrites title and description. Returns the updated place,
	// or ErrNotFound if it doesn't exist.
	Update(ctx context.Context, id, title, description string) (*domain.Place, error)

	// Delete removes the place and pulls its id from the creator's place
	// list in a single transaction. Returns ErrNotFound if it doesn't exist.
	Delete(ctx context.Context, id string) error
}

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, address string) (domain.Location, error)
}

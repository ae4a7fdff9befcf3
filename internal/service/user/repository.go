package user

import (
	"context"

	"github.com/roamly/places-api/internal/domain"
)

// Repository defines the data access contract for users.
// Implementations must be safe for concurrent use.
type Repository interface {
	// Get returns a single user. Returns ErrNotFound if it doesn't exist.
	Get(ctx context.Context, id string) (*domain.User, error)

	// GetByEmail returns the user with the given email, or ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users, oldest first.
	List(ctx context.Context) ([]domain.User, error)

	// Create inserts a new user. Returns ErrEmailTaken when the email is
	// already registered.
	Create(ctx context.Context, u *domain.User) error
}

// Hasher is the credential hashing facility.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) bool
}

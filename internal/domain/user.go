package domain

import "time"

// DefaultUserImage is the placeholder avatar assigned at signup when the
// client does not supply an image reference.
const DefaultUserImage = "/images/default-avatar.png"

// User represents an account holding credentials and the ordered list of
// place ids it owns. Password holds the bcrypt hash, never the plaintext,
// and is excluded from every JSON representation.
type User struct {
	ID       string   `json:"id" db:"id"`
	Name     string   `json:"name" db:"name"`
	Email    string   `json:"email" db:"email"`
	Password string   `json:"-" db:"password"`
	Image    string   `json:"image" db:"image"`
	PlaceIDs []string `json:"places" db:"place_ids"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

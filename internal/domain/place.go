package domain

import "time"

// Location is a geocoded coordinate pair.
type Location struct {
	Lat float64 `json:"lat" db:"lat"`
	Lng float64 `json:"lng" db:"lng"`
}

// Place represents a geotagged record owned by exactly one user.
// Address and Location are fixed at creation time; only Title and
// Description are editable afterwards.
type Place struct {
	ID          string   `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Description string   `json:"description" db:"description"`
	Address     string   `json:"address" db:"address"`
	Location    Location `json:"location"`
	CreatorID   string   `json:"creator" db:"creator_id"`
	ImageURL    string   `json:"imageUrl" db:"image_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

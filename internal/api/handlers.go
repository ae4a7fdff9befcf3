package api

import (
	"github.com/roamly/places-api/internal/service/place"
	"github.com/roamly/places-api/internal/service/user"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	places *place.Service
	users  *user.Service
}

// NewHandlers creates a new Handlers instance
func NewHandlers(places *place.Service, users *user.Service) *Handlers {
	return &Handlers{
		places: places,
		users:  users,
	}
}

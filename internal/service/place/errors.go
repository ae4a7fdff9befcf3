package place

import "errors"

// Sentinel errors for the place service layer.
var (
	ErrNotFound = errors.New("place not found")

	// ErrInvalidCreator means the creator id does not reference an existing
	// user. Treated as bad input, not as a missing resource.
	ErrInvalidCreator = errors.New("creator does not exist")

	// ErrValidation marks bad or missing input. Wrapped with field detail.
	ErrValidation = errors.New("invalid input")
)

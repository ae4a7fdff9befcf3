package api

import (
	"errors"
	"net/http"

	"github.com/roamly/places-api/internal/geocode"
	"github.com/roamly/places-api/internal/pkg/httputil"
	"github.com/roamly/places-api/internal/pkg/logger"
	"github.com/roamly/places-api/internal/service/place"
	"github.com/roamly/places-api/internal/service/user"
)

// respondError maps a service error onto the HTTP surface. Validation,
// not-found, conflict, and credential errors carry their own safe messages;
// geocoding failures surface with the upstream condition; everything else
// becomes a generic 500 with the real error logged server-side, never sent
// to the client.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, place.ErrValidation), errors.Is(err, user.ErrValidation):
		httputil.Unprocessable(w, err.Error())

	case errors.Is(err, place.ErrInvalidCreator):
		// Bad input, not a missing resource
		httputil.Unprocessable(w, err.Error())

	case errors.Is(err, place.ErrNotFound), errors.Is(err, user.ErrNotFound):
		httputil.NotFound(w, err.Error())

	case errors.Is(err, user.ErrEmailTaken):
		httputil.Unprocessable(w, "user already exists, please login instead")

	case errors.Is(err, user.ErrInvalidCredentials):
		httputil.Unauthorized(w, "credentials invalid")

	case errors.Is(err, geocode.ErrNoResults):
		httputil.Unprocessable(w, "could not find a location for the given address")

	default:
		var geoErr *geocode.Error
		if errors.As(err, &geoErr) {
			logger.Error("geocoder failure", "error", err.Error())
			httputil.BadGateway(w, "geocoding service unavailable")
			return
		}
		httputil.InternalError(w, err)
	}
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/roamly/places-api/internal/pkg/httputil"
	"github.com/roamly/places-api/internal/service/place"
)

// GetPlace returns a single place by id.
//
//	GET /api/places/{placeId}
func (h *Handlers) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeId")

	p, err := h.places.Get(r.Context(), placeID)
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"place": p})
}

// GetPlacesByUser returns all places created by the given user.
//
//	GET /api/places/user/{userId}
func (h *Handlers) GetPlacesByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	places, err := h.places.ListByCreator(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"places": places})
}

// CreatePlace geocodes the address and persists a new place.
//
//	POST /api/places
func (h *Handlers) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var input place.CreateInput
	if !httputil.Decode(w, r, &input) {
		return
	}

	p, err := h.places.Create(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.Created(w, map[string]any{"place": p})
}

// UpdatePlace edits a place's title and description.
//
//	PATCH /api/places/{placeId}
func (h *Handlers) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeId")

	var input place.UpdateInput
	if !httputil.Decode(w, r, &input) {
		return
	}

	p, err := h.places.Update(r.Context(), placeID, input)
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"place": p})
}

// DeletePlace removes a place and its entry in the owner's place list.
//
//	DELETE /api/places/{placeId}
func (h *Handlers) DeletePlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeId")

	if err := h.places.Delete(r.Context(), placeID); err != nil {
		respondError(w, err)
		return
	}

	httputil.OK(w, map[string]string{"message": "Deleted place."})
}

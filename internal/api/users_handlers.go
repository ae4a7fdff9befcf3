package api

import (
	"net/http"

	"github.com/roamly/places-api/internal/pkg/httputil"
	"github.com/roamly/places-api/internal/service/user"
)

// ListUsers returns all registered users. The password hash is excluded by
// the domain type's serialization, never by per-handler filtering.
//
//	GET /api/users
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"users": users})
}

// Signup registers a new account.
//
//	POST /api/users/signup
func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var input user.SignupInput
	if !httputil.Decode(w, r, &input) {
		return
	}

	u, err := h.users.Signup(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.Created(w, map[string]any{"user": u})
}

// Login verifies credentials and returns the sanitized user. No session or
// token is issued.
//
//	POST /api/users/login
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var input user.LoginInput
	if !httputil.Decode(w, r, &input) {
		return
	}

	u, err := h.users.Login(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	httputil.OK(w, map[string]any{"message": "Logged in.", "user": u})
}

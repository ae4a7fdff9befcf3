package place

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/roamly/places-api/internal/domain"
	"github.com/roamly/places-api/internal/pkg/logger"
)

// Service implements the place workflow. It coordinates validation, address
// resolution, and the transactional dual-write performed by the repository.
// All public methods are safe for concurrent use if the underlying
// repository is concurrency-safe.
type Service struct {
	repo     Repository
	geocoder Geocoder
}

// NewService creates a place service backed by the given repository and
// geocoder.
func NewService(repo Repository, geocoder Geocoder) *Service {
	return &Service{repo: repo, geocoder: geocoder}
}

// Get returns a single place.
func (s *Service) Get(ctx context.Context, id string) (*domain.Place, error) {
	return s.repo.Get(ctx, id)
}

// ListByCreator returns all places created by the given user. An empty
// result is reported as ErrNotFound: a user with zero places is not
// distinguishable from an unknown user at this endpoint.
func (s *Service) ListByCreator(ctx context.Context, creatorID string) ([]domain.Place, error) {
	places, err := s.repo.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrNotFound
	}
	return places, nil
}

// Create validates the input, resolves the address to coordinates, and
// persists the place together with the owner's place-list update. Geocoder
// failures propagate unchanged so the boundary can surface them as their
// own error kind.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Place, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if strings.TrimSpace(input.Address) == "" {
		return nil, fmt.Errorf("%w: address is required", ErrValidation)
	}
	if strings.TrimSpace(input.CreatorID) == "" {
		return nil, fmt.Errorf("%w: creator is required", ErrValidation)
	}

	location, err := s.geocoder.Resolve(ctx, input.Address)
	if err != nil {
		return nil, err
	}

	p := &domain.Place{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Address:     input.Address,
		Location:    location,
		CreatorID:   input.CreatorID,
		ImageURL:    input.ImageURL,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	logger.Info("place created", "place_id", p.ID, "creator_id", p.CreatorID)
	return p, nil
}

// Update edits a place's title and description. Address and coordinates are
// immutable after creation.
func (s *Service) Update(ctx context.Context, id string, input UpdateInput) (*domain.Place, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	return s.repo.Update(ctx, id, input.Title, input.Description)
}

// Delete removes a place and its entry in the owner's place list.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info("place deleted", "place_id", id)
	return nil
}

// CreateInput holds the fields for creating a new place.
type CreateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	CreatorID   string `json:"creator"`
	ImageURL    string `json:"imageUrl"`
}

// UpdateInput holds the editable fields of a place.
type UpdateInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/roamly/places-api/internal/domain"
	"github.com/roamly/places-api/internal/pkg/logger"
)

// Service implements the account workflow. All public methods are safe for
// concurrent use if the underlying repository is concurrency-safe.
type Service struct {
	repo   Repository
	hasher Hasher
}

// NewService creates a user service backed by the given repository and
// hasher.
func NewService(repo Repository, hasher Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Get returns a single user.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.Get(ctx, id)
}

// List returns all registered users. Password hashes stay inside the domain
// object and are excluded from serialization.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// Signup validates the input, rejects duplicate emails, hashes the
// password, and persists the new user with an empty place list.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	_, err := s.repo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Image:    domain.DefaultUserImage,
		PlaceIDs: []string{},
	}

	// A concurrent signup can still win the race; the repository surfaces
	// the unique violation as ErrEmailTaken.
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user signed up", "user_id", u.ID, "email", u.Email)
	return u, nil
}

// Login verifies the supplied credentials. The user's existence is checked
// before any hash comparison, and every failure path returns the same
// ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*domain.User, error) {
	u, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(input.Password, u.Password) {
		return nil, ErrInvalidCredentials
	}

	logger.Info("user logged in", "user_id", u.ID)
	return u, nil
}

// SignupInput holds the fields for registering a new user.
type SignupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginInput holds the fields for a login attempt.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

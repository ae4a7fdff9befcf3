package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/roamly/places-api/internal/domain"
	"github.com/roamly/places-api/internal/service/user"
)

func userRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "name", "email", "password", "image", "place_ids", "created_at", "updated_at",
	}).AddRow("user-1", "Jane", "jane@example.com", "$2a$12$hash", "/images/default-avatar.png",
		"{place-1,place-2}", now, now)
}

func TestUserGet(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("user-1").
		WillReturnRows(userRows())

	repo := NewUserRepo(db)
	u, err := repo.Get(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.Email != "jane@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if len(u.PlaceIDs) != 2 || u.PlaceIDs[0] != "place-1" {
		t.Fatalf("place_ids not scanned: %v", u.PlaceIDs)
	}
}

func TestUserGetNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepo(db)
	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserGetByEmail(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("jane@example.com").
		WillReturnRows(userRows())

	repo := NewUserRepo(db)
	u, err := repo.GetByEmail(context.Background(), "jane@example.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if u.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestUserGetByEmailNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnError(sql.ErrNoRows)

	repo := NewUserRepo(db)
	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserCreate(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user-1", "Jane", "jane@example.com", "$2a$12$hash",
			"/images/default-avatar.png", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	repo := NewUserRepo(db)
	u := &domain.User{
		ID:       "user-1",
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "$2a$12$hash",
		Image:    "/images/default-avatar.png",
		PlaceIDs: []string{},
	}
	if err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	repo := NewUserRepo(db)
	u := &domain.User{ID: "user-2", Name: "Jane", Email: "jane@example.com", Password: "h", PlaceIDs: []string{}}
	err := repo.Create(context.Background(), u)
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserList(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY created_at").
		WillReturnRows(userRows())

	repo := NewUserRepo(db)
	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

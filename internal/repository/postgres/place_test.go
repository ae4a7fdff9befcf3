package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/roamly/places-api/internal/domain"
	"github.com/roamly/places-api/internal/service/place"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func samplePlace() *domain.Place {
	return &domain.Place{
		ID:          "place-1",
		Title:       "Googleplex",
		Description: "HQ",
		Address:     "1600 Amphitheatre Parkway",
		Location:    domain.Location{Lat: 37.42, Lng: -122.08},
		CreatorID:   "user-1",
		ImageURL:    "https://img.example.com/p.jpg",
	}
}

func placeRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "title", "description", "address", "lat", "lng",
		"creator_id", "image_url", "created_at", "updated_at",
	}).AddRow("place-1", "Googleplex", "HQ", "1600 Amphitheatre Parkway",
		37.42, -122.08, "user-1", "https://img.example.com/p.jpg", now, now)
}

func TestPlaceGet(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM places WHERE id").
		WithArgs("place-1").
		WillReturnRows(placeRows())

	repo := NewPlaceRepo(db)
	p, err := repo.Get(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Title != "Googleplex" || p.Location.Lat != 37.42 {
		t.Fatalf("unexpected place: %+v", p)
	}
}

func TestPlaceGetNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM places WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewPlaceRepo(db)
	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, place.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlaceCreateCommitsBothWrites(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	p := samplePlace()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE id (.+) FOR UPDATE").
		WithArgs(p.CreatorID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(p.CreatorID))
	mock.ExpectQuery("INSERT INTO places").
		WithArgs(p.ID, p.Title, p.Description, p.Address,
			p.Location.Lat, p.Location.Lng, p.CreatorID, p.ImageURL).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("UPDATE users SET place_ids = array_append").
		WithArgs(p.ID, p.CreatorID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPlaceRepo(db)
	if err := repo.Create(context.Background(), p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("created_at not populated")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceCreateInvalidCreatorRollsBack(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	p := samplePlace()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE id (.+) FOR UPDATE").
		WithArgs(p.CreatorID).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	repo := NewPlaceRepo(db)
	err := repo.Create(context.Background(), p)
	if !errors.Is(err, place.ErrInvalidCreator) {
		t.Fatalf("expected ErrInvalidCreator, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceCreateListUpdateFailureRollsBack(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	p := samplePlace()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM users WHERE id (.+) FOR UPDATE").
		WithArgs(p.CreatorID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(p.CreatorID))
	mock.ExpectQuery("INSERT INTO places").
		WithArgs(p.ID, p.Title, p.Description, p.Address,
			p.Location.Lat, p.Location.Lng, p.CreatorID, p.ImageURL).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("UPDATE users SET place_ids = array_append").
		WithArgs(p.ID, p.CreatorID).
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewPlaceRepo(db)
	if err := repo.Create(context.Background(), p); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("transaction not rolled back: %v", err)
	}
}

func TestPlaceUpdate(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := placeRows()
	mock.ExpectQuery("UPDATE places SET title").
		WithArgs("New Title", "new desc", "place-1").
		WillReturnRows(rows)

	repo := NewPlaceRepo(db)
	p, err := repo.Update(context.Background(), "place-1", "New Title", "new desc")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if p.ID != "place-1" {
		t.Fatalf("unexpected place: %+v", p)
	}
}

func TestPlaceUpdateNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE places SET title").
		WithArgs("t", "d", "missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewPlaceRepo(db)
	_, err := repo.Update(context.Background(), "missing", "t", "d")
	if !errors.Is(err, place.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlaceDeleteCommitsBothWrites(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT creator_id FROM places WHERE id (.+) FOR UPDATE").
		WithArgs("place-1").
		WillReturnRows(sqlmock.NewRows([]string{"creator_id"}).AddRow("user-1"))
	mock.ExpectQuery("SELECT id FROM users WHERE id (.+) FOR UPDATE").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectExec("DELETE FROM places WHERE id").
		WithArgs("place-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users SET place_ids = array_remove").
		WithArgs("place-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := NewPlaceRepo(db)
	if err := repo.Delete(context.Background(), "place-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPlaceDeleteNotFound(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT creator_id FROM places WHERE id (.+) FOR UPDATE").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	repo := NewPlaceRepo(db)
	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, place.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlaceDeleteRemoveFailureRollsBack(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT creator_id FROM places WHERE id (.+) FOR UPDATE").
		WithArgs("place-1").
		WillReturnRows(sqlmock.NewRows([]string{"creator_id"}).AddRow("user-1"))
	mock.ExpectQuery("SELECT id FROM users WHERE id (.+) FOR UPDATE").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("user-1"))
	mock.ExpectExec("DELETE FROM places WHERE id").
		WithArgs("place-1").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	repo := NewPlaceRepo(db)
	if err := repo.Delete(context.Background(), "place-1"); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("transaction not rolled back: %v", err)
	}
}

func TestPlaceListByCreator(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM places").
		WithArgs("user-1").
		WillReturnRows(placeRows())

	repo := NewPlaceRepo(db)
	places, err := repo.ListByCreator(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("expected 1 place, got %d", len(places))
	}
}

func TestPlaceListByCreatorEmpty(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM places").
		WithArgs("user-2").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "address", "lat", "lng",
			"creator_id", "image_url", "created_at", "updated_at",
		}))

	repo := NewPlaceRepo(db)
	places, err := repo.ListByCreator(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(places) != 0 {
		t.Fatalf("expected no places, got %d", len(places))
	}
}

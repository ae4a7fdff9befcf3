package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roamly/places-api/internal/domain"
	"github.com/roamly/places-api/internal/service/place"
)

// PlaceRepo implements place.Repository against PostgreSQL.
type PlaceRepo struct{ db *sql.DB }

// NewPlaceRepo creates a Postgres-backed place repository.
func NewPlaceRepo(db *sql.DB) *PlaceRepo { return &PlaceRepo{db: db} }

var _ place.Repository = (*PlaceRepo)(nil)

const placeColumns = `id, title, description, address, lat, lng, creator_id, image_url, created_at, updated_at`

func scanPlace(row interface{ Scan(...any) error }) (*domain.Place, error) {
	p := &domain.Place{}
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Address,
		&p.Location.Lat, &p.Location.Lng,
		&p.CreatorID, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PlaceRepo) Get(ctx context.Context, id string) (*domain.Place, error) {
	p, err := scanPlace(r.db.QueryRowContext(ctx, `
		SELECT `+placeColumns+` FROM places WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, place.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get place: %w", err)
	}
	return p, nil
}

func (r *PlaceRepo) ListByCreator(ctx context.Context, creatorID string) ([]domain.Place, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+placeColumns+` FROM places
		WHERE creator_id = $1
		ORDER BY created_at ASC
	`, creatorID)
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	defer rows.Close()

	var out []domain.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return out, nil
}

// Create inserts the place and appends its id to the owner's place_ids in
// one transaction. The owner row is locked first, which both validates the
// creator and serializes concurrent writers to the same list.
func (r *PlaceRepo) Create(ctx context.Context, p *domain.Place) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create place: %w", err)
	}
	defer tx.Rollback()

	var ownerID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM users WHERE id = $1 FOR UPDATE
	`, p.CreatorID).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return place.ErrInvalidCreator
	}
	if err != nil {
		return fmt.Errorf("lock creator: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO places (id, title, description, address, lat, lng, creator_id, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Title, p.Description, p.Address,
		p.Location.Lat, p.Location.Lng, p.CreatorID, p.ImageURL).
		Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert place: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET place_ids = array_append(place_ids, $1), updated_at = NOW()
		WHERE id = $2
	`, p.ID, p.CreatorID)
	if err != nil {
		return fmt.Errorf("append to place list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create place: %w", err)
	}
	return nil
}

func (r *PlaceRepo) Update(ctx context.Context, id, title, description string) (*domain.Place, error) {
	p, err := scanPlace(r.db.QueryRowContext(ctx, `
		UPDATE places SET title = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+placeColumns+`
	`, title, description, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, place.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update place: %w", err)
	}
	return p, nil
}

// Delete removes the place and pulls its id from the owner's place_ids in
// one transaction.
func (r *PlaceRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin delete place: %w", err)
	}
	defer tx.Rollback()

	var creatorID string
	err = tx.QueryRowContext(ctx, `
		SELECT creator_id FROM places WHERE id = $1 FOR UPDATE
	`, id).Scan(&creatorID)
	if errors.Is(err, sql.ErrNoRows) {
		return place.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lock place: %w", err)
	}

	var ownerID string
	err = tx.QueryRowContext(ctx, `
		SELECT id FROM users WHERE id = $1 FOR UPDATE
	`, creatorID).Scan(&ownerID)
	if err != nil {
		return fmt.Errorf("lock creator: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete place: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET place_ids = array_remove(place_ids, $1), updated_at = NOW()
		WHERE id = $2
	`, id, creatorID)
	if err != nil {
		return fmt.Errorf("remove from place list: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete place: %w", err)
	}
	return nil
}

// README: Review store backed by PostgreSQL.
package review

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roamhaven/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, r *Review) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO reviews (id, listing_id, author_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(r.ID), string(r.ListingID), string(r.AuthorID), r.Rating, r.Comment, r.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Review, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, listing_id, author_id, rating, comment, created_at
		FROM reviews
		WHERE id = $1`, string(id),
	)
	var r Review
	err := row.Scan(&r.ID, &r.ListingID, &r.AuthorID, &r.Rating, &r.Comment, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ListByListing(ctx context.Context, listingID types.ID) ([]Review, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, listing_id, author_id, rating, comment, created_at
		FROM reviews
		WHERE listing_id = $1
		ORDER BY created_at DESC`, string(listingID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Review
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.ListingID, &r.AuthorID, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

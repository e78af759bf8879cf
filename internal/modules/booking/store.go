// README: Booking store backed by PostgreSQL.
package booking

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roamhaven/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, listing_id, user_id, name, mobile, email,
			start_date, end_date, time_slot, guests, meal, offer, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13
		)`,
		string(b.ID), string(b.ListingID), string(b.UserID),
		b.Name, b.Mobile, b.Email,
		b.StartDate, b.EndDate, b.TimeSlot, b.Guests, b.Meal, b.Offer, b.CreatedAt,
	)
	return err
}

func (s *Store) Exists(ctx context.Context, listingID, userID types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE listing_id = $1 AND user_id = $2
		)`, string(listingID), string(userID),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, listing_id, user_id, name, mobile, email,
		       start_date, end_date, time_slot, guests, meal, offer, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.ListingID, &b.UserID, &b.Name, &b.Mobile, &b.Email,
			&b.StartDate, &b.EndDate, &b.TimeSlot, &b.Guests, &b.Meal, &b.Offer, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

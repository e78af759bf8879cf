// README: User store backed by PostgreSQL.
package user

import (
	"context"
	"database/sql"
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

func (s *Store) Create(ctx context.Context, u *User) error {
	var passwordHash, googleID *string
	if u.PasswordHash != "" {
		passwordHash = &u.PasswordHash
	}
	if u.GoogleID != "" {
		googleID = &u.GoogleID
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO users (id, email, username, password_hash, google_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(u.ID), u.Email, u.Username, passwordHash, googleID, u.CreatedAt,
	)
	return err
}

func (s *Store) GetByID(ctx context.Context, id types.ID) (*User, error) {
	return s.getBy(ctx, "id = $1", string(id))
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.getBy(ctx, "email = $1", email)
}

func (s *Store) GetByGoogleID(ctx context.Context, googleID string) (*User, error) {
	return s.getBy(ctx, "google_id = $1", googleID)
}

func (s *Store) getBy(ctx context.Context, where string, arg any) (*User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, email, username, password_hash, google_id, created_at
		FROM users
		WHERE `+where, arg,
	)
	var u User
	var passwordHash, googleID sql.NullString
	err := row.Scan(&u.ID, &u.Email, &u.Username, &passwordHash, &googleID, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.PasswordHash = passwordHash.String
	u.GoogleID = googleID.String
	return &u, nil
}

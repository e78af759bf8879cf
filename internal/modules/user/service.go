// README: User service: registration, login, Google OAuth upsert, session issue/revoke.
package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"roamhaven/internal/types"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository is the persistence contract the service depends on.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id types.ID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByGoogleID(ctx context.Context, googleID string) (*User, error)
}

type Service struct {
	repo     Repository
	sessions SessionStore
}

func NewService(repo Repository, sessions SessionStore) *Service {
	return &Service{repo: repo, sessions: sessions}
}

// Register creates a local account with a bcrypt-hashed password and opens a
// session for it.
func (s *Service) Register(ctx context.Context, email, username, password string) (*User, string, error) {
	if email == "" || username == "" || len(password) < 8 {
		return nil, "", ErrBadRequest
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &User{
		ID:           types.ID(uuid.NewString()),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies local credentials and opens a session.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if u.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// LoginGoogle finds or creates the account for a verified Google profile and
// opens a session. Mirrors the passport Google strategy: match on google_id,
// create on first login.
func (s *Service) LoginGoogle(ctx context.Context, googleID, email, displayName string) (*User, string, error) {
	if googleID == "" || email == "" {
		return nil, "", ErrBadRequest
	}

	u, err := s.repo.GetByGoogleID(ctx, googleID)
	if errors.Is(err, ErrNotFound) {
		u = &User{
			ID:        types.ID(uuid.NewString()),
			Email:     email,
			Username:  displayName,
			GoogleID:  googleID,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return nil, "", err
		}
	} else if err != nil {
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Resolve maps a session token to the authenticated user's id.
func (s *Service) Resolve(ctx context.Context, token string) (types.ID, error) {
	return s.sessions.Get(ctx, token)
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

// README: Review service; author-stamped create and author-only delete.
package review

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"roamhaven/internal/types"
)

var (
	ErrBadRequest = errors.New("bad request")
	ErrNotFound   = errors.New("review not found")
	ErrForbidden  = errors.New("not the review author")
)

// Repository is the persistence contract the service depends on.
type Repository interface {
	Create(ctx context.Context, r *Review) error
	Get(ctx context.Context, id types.ID) (*Review, error)
	ListByListing(ctx context.Context, listingID types.ID) ([]Review, error)
	Delete(ctx context.Context, id types.ID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateCommand struct {
	ListingID types.ID
	AuthorID  types.ID
	Rating    int
	Comment   string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Review, error) {
	if cmd.ListingID == "" || cmd.AuthorID == "" {
		return nil, ErrBadRequest
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, ErrBadRequest
	}

	r := &Review{
		ID:        types.ID(uuid.NewString()),
		ListingID: cmd.ListingID,
		AuthorID:  cmd.AuthorID,
		Rating:    cmd.Rating,
		Comment:   cmd.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) ListByListing(ctx context.Context, listingID types.ID) ([]Review, error) {
	return s.repo.ListByListing(ctx, listingID)
}

func (s *Service) Delete(ctx context.Context, id, actorID types.ID) error {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if r.AuthorID != actorID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// README: Booking service; validates dates and the target listing before persisting.
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"roamhaven/internal/types"
)

var (
	ErrBadRequest     = errors.New("bad request")
	ErrNotFound       = errors.New("booking not found")
	ErrListingMissing = errors.New("listing does not exist")
)

// Repository is the persistence contract the service depends on.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	Exists(ctx context.Context, listingID, userID types.ID) (bool, error)
	ListByUser(ctx context.Context, userID types.ID) ([]Booking, error)
}

// ListingChecker reports whether a listing exists. The listing service
// satisfies this without the booking module importing it directly.
type ListingChecker interface {
	Exists(ctx context.Context, id types.ID) (bool, error)
}

type Service struct {
	repo     Repository
	listings ListingChecker
}

func NewService(repo Repository, listings ListingChecker) *Service {
	return &Service{repo: repo, listings: listings}
}

type CreateCommand struct {
	ListingID types.ID
	UserID    types.ID
	Name      string
	Mobile    string
	Email     string
	StartDate time.Time
	EndDate   time.Time
	TimeSlot  string
	Guests    int
	Meal      string
	Offer     string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Booking, error) {
	if cmd.ListingID == "" || cmd.UserID == "" {
		return nil, ErrBadRequest
	}
	if cmd.StartDate.IsZero() || cmd.EndDate.IsZero() || !cmd.EndDate.After(cmd.StartDate) {
		return nil, ErrBadRequest
	}

	exists, err := s.listings.Exists(ctx, cmd.ListingID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrListingMissing
	}

	b := &Booking{
		ID:        types.ID(uuid.NewString()),
		ListingID: cmd.ListingID,
		UserID:    cmd.UserID,
		Name:      cmd.Name,
		Mobile:    cmd.Mobile,
		Email:     cmd.Email,
		StartDate: cmd.StartDate,
		EndDate:   cmd.EndDate,
		TimeSlot:  cmd.TimeSlot,
		Guests:    cmd.Guests,
		Meal:      cmd.Meal,
		Offer:     cmd.Offer,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// HasBooking reports whether the user already booked the listing; the show
// page uses this to swap the reserve button for a "booked" badge.
func (s *Service) HasBooking(ctx context.Context, listingID, userID types.ID) (bool, error) {
	return s.repo.Exists(ctx, listingID, userID)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

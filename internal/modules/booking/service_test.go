package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"roamhaven/internal/types"
)

// memRepo is an in-memory Repository.
type memRepo struct {
	bookings []Booking
}

func (m *memRepo) Create(_ context.Context, b *Booking) error {
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memRepo) Exists(_ context.Context, listingID, userID types.ID) (bool, error) {
	for _, b := range m.bookings {
		if b.ListingID == listingID && b.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepo) ListByUser(_ context.Context, userID types.ID) ([]Booking, error) {
	var out []Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

// stubChecker is a test double for ListingChecker.
type stubChecker struct {
	exists bool
	err    error
}

func (s *stubChecker) Exists(_ context.Context, _ types.ID) (bool, error) {
	return s.exists, s.err
}

func validCommand() CreateCommand {
	return CreateCommand{
		ListingID: "listing-1",
		UserID:    "user-1",
		Name:      "Asha",
		Email:     "asha@example.com",
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Guests:    2,
	}
}

func TestCreate(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &stubChecker{exists: true})

	b, err := svc.Create(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if b.ID == "" {
		t.Errorf("booking id was not assigned")
	}
	if len(repo.bookings) != 1 {
		t.Errorf("booking was not persisted")
	}
}

func TestCreate_DateValidation(t *testing.T) {
	svc := NewService(&memRepo{}, &stubChecker{exists: true})

	tests := []struct {
		name string
		mod  func(*CreateCommand)
	}{
		{name: "zero start", mod: func(c *CreateCommand) { c.StartDate = time.Time{} }},
		{name: "zero end", mod: func(c *CreateCommand) { c.EndDate = time.Time{} }},
		{name: "end before start", mod: func(c *CreateCommand) { c.EndDate = c.StartDate.AddDate(0, 0, -1) }},
		{name: "end equals start", mod: func(c *CreateCommand) { c.EndDate = c.StartDate }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCommand()
			tt.mod(&cmd)
			if _, err := svc.Create(context.Background(), cmd); !errors.Is(err, ErrBadRequest) {
				t.Errorf("Create() error = %v, want ErrBadRequest", err)
			}
		})
	}
}

func TestCreate_ListingMissing(t *testing.T) {
	svc := NewService(&memRepo{}, &stubChecker{exists: false})

	_, err := svc.Create(context.Background(), validCommand())
	if !errors.Is(err, ErrListingMissing) {
		t.Errorf("Create() error = %v, want ErrListingMissing", err)
	}
}

func TestHasBooking(t *testing.T) {
	repo := &memRepo{}
	svc := NewService(repo, &stubChecker{exists: true})

	if _, err := svc.Create(context.Background(), validCommand()); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := svc.HasBooking(context.Background(), "listing-1", "user-1")
	if err != nil || !got {
		t.Errorf("HasBooking(existing) = (%v, %v), want (true, nil)", got, err)
	}
	got, err = svc.HasBooking(context.Background(), "listing-1", "user-2")
	if err != nil || got {
		t.Errorf("HasBooking(other user) = (%v, %v), want (false, nil)", got, err)
	}
}

package review

import (
	"context"
	"errors"
	"testing"

	"roamhaven/internal/types"
)

// memRepo is an in-memory Repository.
type memRepo struct {
	reviews map[types.ID]*Review
}

func newMemRepo() *memRepo {
	return &memRepo{reviews: map[types.ID]*Review{}}
}

func (m *memRepo) Create(_ context.Context, r *Review) error {
	cp := *r
	m.reviews[r.ID] = &cp
	return nil
}

func (m *memRepo) Get(_ context.Context, id types.ID) (*Review, error) {
	r, ok := m.reviews[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memRepo) ListByListing(_ context.Context, listingID types.ID) ([]Review, error) {
	var out []Review
	for _, r := range m.reviews {
		if r.ListingID == listingID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memRepo) Delete(_ context.Context, id types.ID) error {
	delete(m.reviews, id)
	return nil
}

func TestCreate_RatingBounds(t *testing.T) {
	svc := NewService(newMemRepo())

	for _, rating := range []int{0, 6, -1} {
		_, err := svc.Create(context.Background(), CreateCommand{
			ListingID: "listing-1",
			AuthorID:  "user-1",
			Rating:    rating,
		})
		if !errors.Is(err, ErrBadRequest) {
			t.Errorf("Create(rating=%d) error = %v, want ErrBadRequest", rating, err)
		}
	}

	r, err := svc.Create(context.Background(), CreateCommand{
		ListingID: "listing-1",
		AuthorID:  "user-1",
		Rating:    5,
		Comment:   "Lovely stay.",
	})
	if err != nil {
		t.Fatalf("Create(rating=5) error = %v", err)
	}
	if r.AuthorID != "user-1" {
		t.Errorf("AuthorID = %q, want user-1", r.AuthorID)
	}
}

func TestDelete_AuthorOnly(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	r, err := svc.Create(context.Background(), CreateCommand{
		ListingID: "listing-1",
		AuthorID:  "user-1",
		Rating:    4,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), r.ID, "user-2"); !errors.Is(err, ErrForbidden) {
		t.Errorf("Delete() by non-author error = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(context.Background(), r.ID, "user-1"); err != nil {
		t.Errorf("Delete() by author error = %v", err)
	}
	if _, ok := repo.reviews[r.ID]; ok {
		t.Errorf("review should be gone after author delete")
	}
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newMemRepo())
	if err := svc.Delete(context.Background(), "missing", "user-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}

// README: Handler tests for listing routes: auth, geocode rejection, itinerary fallback.
package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"roamhaven/internal/ai"
	"roamhaven/internal/geo"
	"roamhaven/internal/http/handlers"
	"roamhaven/internal/http/middleware"
	"roamhaven/internal/modules/booking"
	"roamhaven/internal/modules/listing"
	"roamhaven/internal/modules/review"
	"roamhaven/internal/modules/user"
	"roamhaven/internal/types"
)

// stubResolver is a test double for middleware.SessionResolver.
type stubResolver struct {
	userID types.ID
	err    error
}

func (s *stubResolver) Resolve(_ context.Context, _ string) (types.ID, error) {
	return s.userID, s.err
}

// stubGeocoder is a test double for geo.Geocoder.
type stubGeocoder struct {
	pt  types.Point
	err error
}

func (s *stubGeocoder) Geocode(_ context.Context, _ string) (types.Point, error) {
	return s.pt, s.err
}

// memListingRepo is an in-memory listing.Repository.
type memListingRepo struct {
	listings map[types.ID]*listing.Listing
}

func newMemListingRepo() *memListingRepo {
	return &memListingRepo{listings: map[types.ID]*listing.Listing{}}
}

func (m *memListingRepo) Create(_ context.Context, l *listing.Listing) error {
	cp := *l
	m.listings[l.ID] = &cp
	return nil
}

func (m *memListingRepo) Get(_ context.Context, id types.ID) (*listing.Listing, error) {
	l, ok := m.listings[id]
	if !ok {
		return nil, listing.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *memListingRepo) List(_ context.Context) ([]listing.Listing, error) {
	var out []listing.Listing
	for _, l := range m.listings {
		out = append(out, *l)
	}
	return out, nil
}

func (m *memListingRepo) SearchByLocation(_ context.Context, _ string, _ int) ([]listing.Listing, error) {
	return nil, nil
}

func (m *memListingRepo) Update(_ context.Context, l *listing.Listing) error {
	cp := *l
	m.listings[l.ID] = &cp
	return nil
}

func (m *memListingRepo) Delete(_ context.Context, id types.ID) error {
	delete(m.listings, id)
	return nil
}

func (m *memListingRepo) PriceStats(_ context.Context) (listing.PriceStats, error) {
	return listing.PriceStats{}, nil
}

func (m *memListingRepo) Categories(_ context.Context) ([]string, error) {
	return nil, nil
}

// memReviewRepo is an in-memory review.Repository.
type memReviewRepo struct{}

func (memReviewRepo) Create(_ context.Context, _ *review.Review) error { return nil }
func (memReviewRepo) Get(_ context.Context, _ types.ID) (*review.Review, error) {
	return nil, review.ErrNotFound
}
func (memReviewRepo) ListByListing(_ context.Context, _ types.ID) ([]review.Review, error) {
	return nil, nil
}
func (memReviewRepo) Delete(_ context.Context, _ types.ID) error { return nil }

// memBookingRepo is an in-memory booking.Repository.
type memBookingRepo struct{}

func (memBookingRepo) Create(_ context.Context, _ *booking.Booking) error { return nil }
func (memBookingRepo) Exists(_ context.Context, _, _ types.ID) (bool, error) {
	return false, nil
}
func (memBookingRepo) ListByUser(_ context.Context, _ types.ID) ([]booking.Booking, error) {
	return nil, nil
}

// buildListingRouter wires a minimal Gin engine with the auth middleware and
// the listing handler over in-memory stores.
func buildListingRouter(repo *memListingRepo, g geo.Geocoder, resolver middleware.SessionResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	listingSvc := listing.NewService(repo, g, zerolog.Nop())
	reviewSvc := review.NewService(memReviewRepo{})
	bookingSvc := booking.NewService(memBookingRepo{}, listingSvc)
	planner := ai.NewPlanner(nil, zerolog.Nop())

	h := handlers.NewListingHandler(listingSvc, reviewSvc, bookingSvc, planner, nil)
	r := gin.New()
	r.Use(middleware.Auth(resolver))
	r.GET("/api/listings/:id", h.Show)
	r.GET("/api/listings/:id/itinerary", h.Itinerary)
	r.POST("/api/listings", middleware.Require(), h.Create)
	return r
}

func doForm(r *gin.Engine, method, path string, form url.Values, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listingForm() url.Values {
	return url.Values{
		"title":    {"Lakeview Cottage"},
		"price":    {"1200"},
		"location": {"Nashik"},
		"country":  {"India"},
	}
}

func TestCreate_Unauthenticated(t *testing.T) {
	r := buildListingRouter(newMemListingRepo(), &stubGeocoder{}, &stubResolver{err: user.ErrSessionNotFound})
	w := doForm(r, http.MethodPost, "/api/listings", listingForm(), "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestCreate_InvalidLocation(t *testing.T) {
	repo := newMemListingRepo()
	r := buildListingRouter(repo, &stubGeocoder{err: geo.ErrNoMatch}, &stubResolver{userID: "user-1"})

	w := doForm(r, http.MethodPost, "/api/listings", listingForm(), "Bearer token")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid location. Please try a different location.") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
	if len(repo.listings) != 0 {
		t.Errorf("nothing should be persisted after a geocode rejection")
	}
}

func TestCreate_Success(t *testing.T) {
	repo := newMemListingRepo()
	r := buildListingRouter(repo, &stubGeocoder{pt: types.Point{Lng: 73.79, Lat: 19.99}}, &stubResolver{userID: "user-1"})

	w := doForm(r, http.MethodPost, "/api/listings", listingForm(), "Bearer token")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Listing listing.Listing `json:"listing"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if body.Listing.Geometry.Type != "Point" {
		t.Errorf("Geometry.Type = %q, want Point", body.Listing.Geometry.Type)
	}
	if body.Listing.Geometry.Coordinates != [2]float64{73.79, 19.99} {
		t.Errorf("Geometry.Coordinates = %v", body.Listing.Geometry.Coordinates)
	}
	if body.Listing.OwnerID != "user-1" {
		t.Errorf("OwnerID = %q, want user-1", body.Listing.OwnerID)
	}
}

func TestShow_NotFound(t *testing.T) {
	r := buildListingRouter(newMemListingRepo(), &stubGeocoder{}, &stubResolver{err: user.ErrSessionNotFound})
	w := doForm(r, http.MethodGet, "/api/listings/missing", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Listing you requested for does not exist!") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestItinerary_AlwaysAnswers(t *testing.T) {
	repo := newMemListingRepo()
	l := &listing.Listing{ID: "l1", Title: "Lakeview Cottage", Location: "Nashik"}
	repo.listings[l.ID] = l

	// The planner has no provider configured, so the deterministic fallback
	// must be served.
	r := buildListingRouter(repo, &stubGeocoder{}, &stubResolver{err: user.ErrSessionNotFound})
	w := doForm(r, http.MethodGet, "/api/listings/l1/itinerary", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Itinerary string `json:"itinerary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.HasPrefix(body.Itinerary, "## 📅 3-Day Trip to Nashik") {
		t.Errorf("itinerary does not start with the trip header")
	}
	if !strings.Contains(body.Itinerary, "Lakeview Cottage") {
		t.Errorf("itinerary should mention the listing title")
	}
}

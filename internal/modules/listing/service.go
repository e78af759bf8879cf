// README: Listing service orchestrates geocoding, image attachment, ownership and persistence.
package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"roamhaven/internal/geo"
	"roamhaven/internal/types"
)

var (
	ErrBadRequest      = errors.New("bad request")
	ErrNotFound        = errors.New("listing not found")
	ErrInvalidLocation = errors.New("invalid location")
	ErrForbidden       = errors.New("not the listing owner")
	ErrPersistence     = errors.New("persistence failure")
)

// Repository is the persistence contract the service depends on.
type Repository interface {
	Create(ctx context.Context, l *Listing) error
	Get(ctx context.Context, id types.ID) (*Listing, error)
	List(ctx context.Context) ([]Listing, error)
	SearchByLocation(ctx context.Context, q string, limit int) ([]Listing, error)
	Update(ctx context.Context, l *Listing) error
	Delete(ctx context.Context, id types.ID) error
	PriceStats(ctx context.Context) (PriceStats, error)
	Categories(ctx context.Context) ([]string, error)
}

type Service struct {
	repo     Repository
	geocoder geo.Geocoder
	log      zerolog.Logger
}

func NewService(repo Repository, geocoder geo.Geocoder, log zerolog.Logger) *Service {
	return &Service{repo: repo, geocoder: geocoder, log: log}
}

type CreateCommand struct {
	OwnerID     types.ID
	Title       string
	Description string
	Price       int64
	Location    string
	Country     string
	Category    string
	Image       *Image
}

func (c CreateCommand) validate() error {
	if c.OwnerID == "" || c.Title == "" || c.Location == "" {
		return ErrBadRequest
	}
	if c.Price < 0 {
		return ErrBadRequest
	}
	return nil
}

// Create is the interactive creation path. The geocode must complete before
// the record is constructed; any geocode failure rejects the submission and
// nothing is persisted.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Listing, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	pt, err := s.geocoder.Geocode(ctx, cmd.Location)
	if err != nil {
		if errors.Is(err, geo.ErrNoMatch) || errors.Is(err, geo.ErrUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
		}
		return nil, err
	}

	l := s.build(cmd, pt)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.log.Info().Str("listing_id", string(l.ID)).Str("location", l.Location).Msg("listing created")
	return l, nil
}

// SeedCreate is the bulk, non-interactive path: a failed geocode falls back
// to sentinel coordinates and the load continues.
func (s *Service) SeedCreate(ctx context.Context, cmd CreateCommand) (*Listing, error) {
	if err := cmd.validate(); err != nil {
		return nil, err
	}

	pt, err := s.geocoder.Geocode(ctx, cmd.Location)
	if err != nil {
		s.log.Warn().Err(err).Str("location", cmd.Location).Msg("geocode failed during seeding, using sentinel coordinates")
		pt = types.Sentinel
	}

	l := s.build(cmd, pt)
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return l, nil
}

func (s *Service) build(cmd CreateCommand, pt types.Point) *Listing {
	return &Listing{
		ID:          types.ID(uuid.NewString()),
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Location:    cmd.Location,
		Country:     cmd.Country,
		Category:    cmd.Category,
		Geometry:    PointGeometry(pt),
		Image:       cmd.Image,
		OwnerID:     cmd.OwnerID,
		CreatedAt:   time.Now(),
	}
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Listing, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	return s.repo.List(ctx)
}

// Exists reports whether a listing with the given id is persisted.
func (s *Service) Exists(ctx context.Context, id types.ID) (bool, error) {
	_, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SearchByLocation returns up to limit listings whose location matches q
// (case-insensitive substring).
func (s *Service) SearchByLocation(ctx context.Context, q string, limit int) ([]Listing, error) {
	return s.repo.SearchByLocation(ctx, q, limit)
}

func (s *Service) PriceStats(ctx context.Context) (PriceStats, error) {
	return s.repo.PriceStats(ctx)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

type UpdateCommand struct {
	ID          types.ID
	ActorID     types.ID
	Title       string
	Description string
	Price       int64
	Location    string
	Country     string
	Category    string
	Image       *Image
}

// Update applies the new fields. A changed location is re-geocoded with the
// interactive rejection semantics; a nil Image keeps the existing reference.
func (s *Service) Update(ctx context.Context, cmd UpdateCommand) (*Listing, error) {
	if cmd.ID == "" || cmd.ActorID == "" || cmd.Title == "" || cmd.Location == "" || cmd.Price < 0 {
		return nil, ErrBadRequest
	}

	l, err := s.repo.Get(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if l.OwnerID != cmd.ActorID {
		return nil, ErrForbidden
	}

	if cmd.Location != l.Location {
		pt, err := s.geocoder.Geocode(ctx, cmd.Location)
		if err != nil {
			if errors.Is(err, geo.ErrNoMatch) || errors.Is(err, geo.ErrUnavailable) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
			}
			return nil, err
		}
		l.Geometry = PointGeometry(pt)
	}

	l.Title = cmd.Title
	l.Description = cmd.Description
	l.Price = cmd.Price
	l.Location = cmd.Location
	l.Country = cmd.Country
	l.Category = cmd.Category
	if cmd.Image != nil {
		l.Image = cmd.Image
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID types.ID) error {
	l, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if l.OwnerID != actorID {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	s.log.Info().Str("listing_id", string(id)).Msg("listing deleted")
	return nil
}

// README: Listing store backed by PostgreSQL.
package listing

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

const listingColumns = `
	id, title, description, price, location, country, category,
	lng, lat, image_url, image_filename, owner_id, created_at`

func (s *Store) Create(ctx context.Context, l *Listing) error {
	var imageURL, imageFilename *string
	if l.Image != nil {
		imageURL = &l.Image.URL
		imageFilename = &l.Image.Filename
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO listings (
			id, title, description, price, location, country, category,
			lng, lat, image_url, image_filename, owner_id, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13
		)`,
		string(l.ID),
		l.Title,
		l.Description,
		l.Price,
		l.Location,
		l.Country,
		l.Category,
		l.Geometry.Coordinates[0],
		l.Geometry.Coordinates[1],
		imageURL,
		imageFilename,
		string(l.OwnerID),
		l.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Listing, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE id = $1`, string(id),
	)
	l, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (s *Store) List(ctx context.Context) ([]Listing, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (s *Store) SearchByLocation(ctx context.Context, q string, limit int) ([]Listing, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE location ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
		LIMIT $2`, q, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (s *Store) Update(ctx context.Context, l *Listing) error {
	var imageURL, imageFilename *string
	if l.Image != nil {
		imageURL = &l.Image.URL
		imageFilename = &l.Image.Filename
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE listings
		SET title = $1, description = $2, price = $3, location = $4,
		    country = $5, category = $6, lng = $7, lat = $8,
		    image_url = $9, image_filename = $10
		WHERE id = $11`,
		l.Title,
		l.Description,
		l.Price,
		l.Location,
		l.Country,
		l.Category,
		l.Geometry.Coordinates[0],
		l.Geometry.Coordinates[1],
		imageURL,
		imageFilename,
		string(l.ID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the listing; reviews and bookings cascade via foreign keys.
func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) PriceStats(ctx context.Context) (PriceStats, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COALESCE(AVG(price), 0), COALESCE(MIN(price), 0), COALESCE(MAX(price), 0)
		FROM listings`,
	)
	var stats PriceStats
	if err := row.Scan(&stats.Avg, &stats.Min, &stats.Max); err != nil {
		return PriceStats{}, err
	}
	return stats, nil
}

func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx, `
		SELECT DISTINCT category FROM listings
		WHERE category <> ''
		ORDER BY category`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func scanListing(row pgx.Row) (*Listing, error) {
	var l Listing
	var lng, lat float64
	var imageURL, imageFilename sql.NullString

	err := row.Scan(
		&l.ID, &l.Title, &l.Description, &l.Price, &l.Location, &l.Country, &l.Category,
		&lng, &lat, &imageURL, &imageFilename, &l.OwnerID, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.Geometry = PointGeometry(types.Point{Lng: lng, Lat: lat})
	if imageURL.Valid {
		l.Image = &Image{URL: imageURL.String, Filename: imageFilename.String}
	}
	return &l, nil
}

func collectListings(rows pgx.Rows) ([]Listing, error) {
	var out []Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

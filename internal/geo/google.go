// README: Google Maps geocoding provider.
package geo

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"roamhaven/internal/types"
)

// GoogleGeocoder resolves addresses through the Google Maps Geocoding API.
type GoogleGeocoder struct {
	client *maps.Client
}

// NewGoogleGeocoder creates a GoogleGeocoder with the given API key.
func NewGoogleGeocoder(apiKey string) (*GoogleGeocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GoogleGeocoder{client: client}, nil
}

// Geocode returns the first candidate's coordinates for the address.
func (g *GoogleGeocoder) Geocode(ctx context.Context, address string) (types.Point, error) {
	if address == "" {
		return types.Point{}, ErrNoMatch
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		return types.Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(results) == 0 {
		return types.Point{}, ErrNoMatch
	}

	loc := results[0].Geometry.Location
	return types.Point{Lng: loc.Lng, Lat: loc.Lat}, nil
}

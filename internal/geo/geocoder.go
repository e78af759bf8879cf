// README: Geocoding adapter contract and provider selection.
package geo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roamhaven/internal/config"
	"roamhaven/internal/types"
)

// callTimeout bounds a single provider call so a stalled upstream cannot
// hang the request indefinitely.
const callTimeout = 10 * time.Second

var (
	// ErrNoMatch means the provider answered but found zero candidates.
	// Interactive callers reject the submission as an invalid location.
	ErrNoMatch = errors.New("geocode: no match found")

	// ErrUnavailable means the provider call itself failed (network, auth,
	// non-2xx). Bulk callers fall back to sentinel coordinates and continue.
	ErrUnavailable = errors.New("geocode: provider unavailable")
)

// Geocoder resolves a free-text address into a coordinate pair.
// Exactly one provider is configured per deployment; there is no runtime
// fallback chain, no retries and no caching.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (types.Point, error)
}

// New builds the configured provider.
func New(cfg config.GeoConfig) (Geocoder, error) {
	switch cfg.Provider {
	case "google":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("geo: google provider requires GOOGLE_MAPS_API_KEY")
		}
		return NewGoogleGeocoder(cfg.APIKey)
	case "nominatim", "":
		return NewNominatimGeocoder(""), nil
	default:
		return nil, fmt.Errorf("geo: unknown provider %q", cfg.Provider)
	}
}

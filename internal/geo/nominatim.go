// README: OpenStreetMap Nominatim geocoding provider (keyless).
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"roamhaven/internal/types"
)

const defaultNominatimBase = "https://nominatim.openstreetmap.org"

// NominatimGeocoder resolves addresses through the public Nominatim search API.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
}

// NewNominatimGeocoder creates a NominatimGeocoder. baseURL overrides the
// public endpoint; pass "" for the default.
func NewNominatimGeocoder(baseURL string) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = defaultNominatimBase
	}
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: callTimeout},
	}
}

// nominatimResult is the subset of the search response we care about.
// Nominatim returns coordinates as strings.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the first candidate's coordinates for the address.
func (g *NominatimGeocoder) Geocode(ctx context.Context, address string) (types.Point, error) {
	if address == "" {
		return types.Point{}, ErrNoMatch
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return types.Point{}, fmt.Errorf("%w: build request: %v", ErrUnavailable, err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", "roamhaven/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return types.Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Point{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.Point{}, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return types.Point{}, fmt.Errorf("%w: unmarshal response: %v", ErrUnavailable, err)
	}
	if len(results) == 0 {
		return types.Point{}, ErrNoMatch
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("%w: bad latitude %q", ErrUnavailable, results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return types.Point{}, fmt.Errorf("%w: bad longitude %q", ErrUnavailable, results[0].Lon)
	}

	return types.Point{Lng: lng, Lat: lat}, nil
}

// README: Common identifier and coordinate types shared across modules.
package types

// ID is an opaque record identifier (UUID in practice).
type ID string

// Point is a geographic coordinate pair in decimal degrees.
// Lng first to match the GeoJSON [longitude, latitude] ordering.
type Point struct {
	Lng float64
	Lat float64
}

// Valid reports whether the point lies inside the WGS84 coordinate range.
func (p Point) Valid() bool {
	return p.Lng >= -180 && p.Lng <= 180 && p.Lat >= -90 && p.Lat <= 90
}

// Sentinel is the placeholder coordinate pair used when geocoding fails
// during bulk, non-interactive loading.
var Sentinel = Point{Lng: 0, Lat: 0}

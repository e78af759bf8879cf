// README: Listing aggregate and GeoJSON geometry.
package listing

import (
	"time"

	"roamhaven/internal/types"
)

// Image is an uploaded image reference: public URL plus the storage key
// needed to delete or transform the object later.
type Image struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Geometry is a GeoJSON point. Coordinates are [longitude, latitude].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// PointGeometry builds a GeoJSON point from a coordinate pair.
func PointGeometry(p types.Point) Geometry {
	return Geometry{Type: "Point", Coordinates: [2]float64{p.Lng, p.Lat}}
}

// Listing is a bookable property. Geometry is always present after creation:
// either resolved coordinates or the [0,0] sentinel from the bulk path.
// Image is nil when the owner never uploaded one, which is distinct from an
// empty placeholder.
type Listing struct {
	ID          types.ID  `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Location    string    `json:"location"`
	Country     string    `json:"country"`
	Category    string    `json:"category"`
	Geometry    Geometry  `json:"geometry"`
	Image       *Image    `json:"image,omitempty"`
	OwnerID     types.ID  `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// PriceStats summarises nightly prices across all listings.
type PriceStats struct {
	Avg float64 `json:"avg"`
	Min int64   `json:"min"`
	Max int64   `json:"max"`
}

// README: Review record left by a user on a listing.
package review

import (
	"time"

	"roamhaven/internal/types"
)

type Review struct {
	ID        types.ID  `json:"id"`
	ListingID types.ID  `json:"listing_id"`
	AuthorID  types.ID  `json:"author_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

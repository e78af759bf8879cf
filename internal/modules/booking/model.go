// README: Booking record for a stay at a listing.
package booking

import (
	"time"

	"roamhaven/internal/types"
)

type Booking struct {
	ID        types.ID  `json:"id"`
	ListingID types.ID  `json:"listing_id"`
	UserID    types.ID  `json:"user_id"`
	Name      string    `json:"name"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	TimeSlot  string    `json:"time_slot,omitempty"`
	Guests    int       `json:"guests,omitempty"`
	Meal      string    `json:"meal,omitempty"`
	Offer     string    `json:"offer,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

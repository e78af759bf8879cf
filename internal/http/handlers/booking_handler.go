// README: Booking handlers for reservation create and listing a user's bookings.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"roamhaven/internal/http/middleware"
	"roamhaven/internal/modules/booking"
	"roamhaven/internal/types"
)

type BookingHandler struct {
	bookings *booking.Service
}

func NewBookingHandler(svc *booking.Service) *BookingHandler {
	return &BookingHandler{bookings: svc}
}

type createBookingReq struct {
	ListingID string `json:"listing_id"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	TimeSlot  string `json:"time_slot"`
	Guests    int    `json:"guests"`
	Meal      string `json:"meal"`
	Offer     string `json:"offer"`
}

// Create handles POST /api/bookings. Dates are YYYY-MM-DD.
func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	start, err1 := time.Parse("2006-01-02", req.StartDate)
	end, err2 := time.Parse("2006-01-02", req.EndDate)
	if err1 != nil || err2 != nil {
		writeError(c, http.StatusBadRequest, "invalid dates")
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), booking.CreateCommand{
		ListingID: types.ID(req.ListingID),
		UserID:    middleware.UserID(c),
		Name:      req.Name,
		Mobile:    req.Mobile,
		Email:     req.Email,
		StartDate: start,
		EndDate:   end,
		TimeSlot:  req.TimeSlot,
		Guests:    req.Guests,
		Meal:      req.Meal,
		Offer:     req.Offer,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"booking": b})
}

// ListMine handles GET /api/bookings.
func (h *BookingHandler) ListMine(c *gin.Context) {
	out, err := h.bookings.ListByUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeBookingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookings": out})
}

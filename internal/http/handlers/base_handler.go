// README: Shared handler utilities (JSON helpers, error-to-status mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roamhaven/internal/modules/booking"
	"roamhaven/internal/modules/listing"
	"roamhaven/internal/modules/review"
	"roamhaven/internal/modules/user"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// writeListingError maps listing sentinel errors onto HTTP statuses. The
// invalid-location rejection deliberately reads like the flash message users
// saw on the web form.
func writeListingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, listing.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, listing.ErrInvalidLocation):
		writeError(c, http.StatusUnprocessableEntity, "Invalid location. Please try a different location.")
	case errors.Is(err, listing.ErrNotFound):
		writeError(c, http.StatusNotFound, "Listing you requested for does not exist!")
	case errors.Is(err, listing.ErrForbidden):
		writeError(c, http.StatusForbidden, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, review.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, review.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, review.ErrForbidden):
		writeError(c, http.StatusForbidden, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, booking.ErrListingMissing):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, booking.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

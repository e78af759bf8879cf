// README: Listing handlers: browse, show, create/update/delete, itinerary.
package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"roamhaven/internal/ai"
	"roamhaven/internal/http/middleware"
	"roamhaven/internal/modules/booking"
	"roamhaven/internal/modules/listing"
	"roamhaven/internal/modules/review"
	"roamhaven/internal/types"
)

// Uploader is the image-storage dependency; nil disables image attachment.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader, size int64, contentType string) (url, key string, err error)
}

type ListingHandler struct {
	listings *listing.Service
	reviews  *review.Service
	bookings *booking.Service
	planner  *ai.Planner
	uploader Uploader
}

func NewListingHandler(listings *listing.Service, reviews *review.Service, bookings *booking.Service, planner *ai.Planner, uploader Uploader) *ListingHandler {
	return &ListingHandler{listings: listings, reviews: reviews, bookings: bookings, planner: planner, uploader: uploader}
}

// List handles GET /api/listings.
func (h *ListingHandler) List(c *gin.Context) {
	all, err := h.listings.List(c.Request.Context())
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"listings": all})
}

// Show handles GET /api/listings/:id, returning the listing with its reviews
// and whether the current user already booked it.
func (h *ListingHandler) Show(c *gin.Context) {
	id := types.ID(c.Param("id"))
	l, err := h.listings.Get(c.Request.Context(), id)
	if err != nil {
		writeListingError(c, err)
		return
	}

	reviews, err := h.reviews.ListByListing(c.Request.Context(), id)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}

	hasBooked := false
	if uid := middleware.UserID(c); uid != "" {
		hasBooked, _ = h.bookings.HasBooking(c.Request.Context(), id, uid)
	}

	writeJSON(c, http.StatusOK, gin.H{
		"listing":    l,
		"reviews":    reviews,
		"has_booked": hasBooked,
	})
}

// Create handles POST /api/listings (multipart form, optional image file).
func (h *ListingHandler) Create(c *gin.Context) {
	cmd, ok := h.commandFromForm(c)
	if !ok {
		return
	}
	cmd.OwnerID = middleware.UserID(c)

	l, err := h.listings.Create(c.Request.Context(), cmd)
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"listing": l})
}

// Update handles PUT /api/listings/:id.
func (h *ListingHandler) Update(c *gin.Context) {
	cmd, ok := h.commandFromForm(c)
	if !ok {
		return
	}

	l, err := h.listings.Update(c.Request.Context(), listing.UpdateCommand{
		ID:          types.ID(c.Param("id")),
		ActorID:     middleware.UserID(c),
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Location:    cmd.Location,
		Country:     cmd.Country,
		Category:    cmd.Category,
		Image:       cmd.Image,
	})
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"listing": l})
}

// Delete handles DELETE /api/listings/:id.
func (h *ListingHandler) Delete(c *gin.Context) {
	err := h.listings.Delete(c.Request.Context(), types.ID(c.Param("id")), middleware.UserID(c))
	if err != nil {
		writeListingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}

// Itinerary handles GET /api/listings/:id/itinerary. It always answers with
// a plan: provider failures fall back to the deterministic template.
func (h *ListingHandler) Itinerary(c *gin.Context) {
	l, err := h.listings.Get(c.Request.Context(), types.ID(c.Param("id")))
	if err != nil {
		writeListingError(c, err)
		return
	}
	plan := h.planner.Generate(c.Request.Context(), l.Title, l.Location)
	writeJSON(c, http.StatusOK, gin.H{"itinerary": plan})
}

// commandFromForm parses the shared multipart fields and uploads the image
// when one was attached. Reports false after writing an error response.
func (h *ListingHandler) commandFromForm(c *gin.Context) (listing.CreateCommand, bool) {
	var cmd listing.CreateCommand
	cmd.Title = c.PostForm("title")
	cmd.Description = c.PostForm("description")
	cmd.Location = c.PostForm("location")
	cmd.Country = c.PostForm("country")
	cmd.Category = c.PostForm("category")

	if v := c.PostForm("price"); v != "" {
		price, err := strconv.ParseInt(v, 10, 64)
		if err != nil || price < 0 {
			writeError(c, http.StatusBadRequest, "invalid price")
			return cmd, false
		}
		cmd.Price = price
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		if h.uploader == nil {
			writeError(c, http.StatusServiceUnavailable, "image storage unavailable")
			return cmd, false
		}
		f, err := file.Open()
		if err != nil {
			writeError(c, http.StatusBadRequest, "unreadable image upload")
			return cmd, false
		}
		defer f.Close()

		url, key, err := h.uploader.Upload(c.Request.Context(), file.Filename, f, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			writeError(c, http.StatusInternalServerError, "image upload failed")
			return cmd, false
		}
		cmd.Image = &listing.Image{URL: url, Filename: key}
	}

	return cmd, true
}

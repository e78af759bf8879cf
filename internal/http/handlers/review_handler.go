// README: Review handlers for create and delete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roamhaven/internal/http/middleware"
	"roamhaven/internal/modules/review"
	"roamhaven/internal/types"
)

type ReviewHandler struct {
	reviews *review.Service
}

func NewReviewHandler(svc *review.Service) *ReviewHandler {
	return &ReviewHandler{reviews: svc}
}

type createReviewReq struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Create handles POST /api/listings/:id/reviews.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	r, err := h.reviews.Create(c.Request.Context(), review.CreateCommand{
		ListingID: types.ID(c.Param("id")),
		AuthorID:  middleware.UserID(c),
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		writeReviewError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"review": r})
}

// Delete handles DELETE /api/listings/:id/reviews/:reviewId.
func (h *ReviewHandler) Delete(c *gin.Context) {
	err := h.reviews.Delete(c.Request.Context(), types.ID(c.Param("reviewId")), middleware.UserID(c))
	if err != nil {
		writeReviewError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"deleted": true})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookvault/internal/model"
)

// AddReviewRequest is the payload for attaching a review to a book. UserID is
// caller-supplied and not checked against any user registry. Rating is a
// pointer so a zero rating still satisfies required.
type AddReviewRequest struct {
	UserID     *int64   `json:"user_id" binding:"required"`
	ReviewText string   `json:"review_text" binding:"required"`
	Rating     *float64 `json:"rating" binding:"required"`
}

// HandleAddReview creates a review under a book. The book must exist.
func (h *Handler) HandleAddReview(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	review := model.Review{
		UserID:     *req.UserID,
		ReviewText: req.ReviewText,
		Rating:     *req.Rating,
	}
	if err := h.reviews.Add(c.Request.Context(), id, &review); err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// HandleListReviews returns all reviews for a book. An unknown book id yields
// an empty list rather than a 404; the existence check happens only on write.
func (h *Handler) HandleListReviews(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	reviews, err := h.reviews.ListForBook(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

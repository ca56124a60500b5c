package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GenerateSummaryRequest carries raw text to summarize.
type GenerateSummaryRequest struct {
	Content string `json:"content" binding:"required"`
}

// HandleBookSummary returns the composite summary for a book: average rating,
// a one-sentence review synthesis, and the stored or generated book summary.
func (h *Handler) HandleBookSummary(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	summary, err := h.books.Summary(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HandleGenerateSummary summarizes caller-supplied raw text. Stateless: no
// book lookup and nothing is persisted.
func (h *Handler) HandleGenerateSummary(c *gin.Context) {
	var req GenerateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}
	summary := h.books.SummarizeContent(c.Request.Context(), req.Content)
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

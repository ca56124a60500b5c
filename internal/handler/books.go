package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookvault/internal/model"
	"bookvault/internal/service"
)

// CreateBookRequest is the payload for creating a book. Summary is optional.
type CreateBookRequest struct {
	Title         string  `json:"title" binding:"required"`
	Author        string  `json:"author" binding:"required"`
	Genre         string  `json:"genre" binding:"required"`
	YearPublished *int    `json:"year_published" binding:"required"`
	Summary       *string `json:"summary"`
}

// UpdateBookRequest is a partial update; absent fields keep their values.
type UpdateBookRequest struct {
	Title         *string `json:"title"`
	Author        *string `json:"author"`
	Genre         *string `json:"genre"`
	YearPublished *int    `json:"year_published"`
	Summary       *string `json:"summary"`
}

// HandleCreateBook creates a new book and returns it with its assigned id.
func (h *Handler) HandleCreateBook(c *gin.Context) {
	var req CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	book := model.Book{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		YearPublished: *req.YearPublished,
		Summary:       req.Summary,
	}
	if err := h.books.Create(c.Request.Context(), &book); err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusCreated, book)
}

// HandleListBooks returns every book.
func (h *Handler) HandleListBooks(c *gin.Context) {
	books, err := h.books.List(c.Request.Context())
	if err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, books)
}

// HandleGetBook returns a single book by id.
func (h *Handler) HandleGetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	book, err := h.books.Get(c.Request.Context(), id)
	if err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, book)
}

// HandleUpdateBook applies a partial update and returns the full record.
func (h *Handler) HandleUpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	var req UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	book, err := h.books.Update(c.Request.Context(), id, service.BookUpdate{
		Title:         req.Title,
		Author:        req.Author,
		Genre:         req.Genre,
		YearPublished: req.YearPublished,
		Summary:       req.Summary,
	})
	if err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, book)
}

// HandleDeleteBook removes a book and acknowledges the deletion.
func (h *Handler) HandleDeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}
	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		h.serviceError(c, err, "Book not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}

// HandleRecommendations returns the projected list of books matching the
// genre query. An empty result is a 404, matching the service contract.
func (h *Handler) HandleRecommendations(c *gin.Context) {
	genre := c.Query("genre")
	if genre == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"genre": "must be provided"},
			"code":  "VALIDATION_FAILED",
		})
		return
	}

	recommendations, err := h.books.Recommendations(c.Request.Context(), genre)
	if err != nil {
		h.serviceError(c, err, "No books found for this genre")
		return
	}
	c.JSON(http.StatusOK, recommendations)
}

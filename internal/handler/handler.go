// Package handler contains the Gin handlers and the translation from service
// errors to HTTP responses.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"bookvault/internal/service"
	"bookvault/internal/store"
)

// Handler bundles the services the HTTP layer delegates to.
type Handler struct {
	books   *service.BookService
	reviews *service.ReviewService
	store   *store.Store
	logger  zerolog.Logger
}

// New creates a Handler.
func New(books *service.BookService, reviews *service.ReviewService, st *store.Store, logger zerolog.Logger) *Handler {
	return &Handler{
		books:   books,
		reviews: reviews,
		store:   st,
		logger:  logger.With().Str("component", "handler").Logger(),
	}
}

// bookID parses the :id path parameter. A non-integer id is a validation
// failure, not a missing record.
func bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": gin.H{"id": "must be an integer"},
			"code":  "VALIDATION_FAILED",
		})
		return 0, false
	}
	return id, true
}

// bindingError translates a ShouldBindJSON failure into a 422 response with
// per-field messages when the failure came from validation tags, or a plain
// message for malformed JSON.
func bindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fields,
			"code":  "VALIDATION_FAILED",
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error": "Invalid request body",
		"code":  "VALIDATION_FAILED",
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be provided"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}

// serviceError maps service and store errors onto responses. notFoundMessage
// is used for both missing records and empty recommendation results.
func (h *Handler) serviceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, service.ErrNoRecommendations):
		c.JSON(http.StatusNotFound, gin.H{
			"error": notFoundMessage,
			"code":  "NOT_FOUND",
		})
	default:
		h.logger.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "The server encountered a problem and could not process your request",
			"code":  "INTERNAL_ERROR",
		})
	}
}

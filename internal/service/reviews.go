package service

import (
	"context"

	"github.com/rs/zerolog"

	"bookvault/internal/model"
)

// ReviewService creates and lists reviews scoped to a book.
type ReviewService struct {
	books   BookStore
	reviews ReviewStore
	logger  zerolog.Logger
}

// NewReviewService creates a ReviewService.
func NewReviewService(books BookStore, reviews ReviewStore, logger zerolog.Logger) *ReviewService {
	return &ReviewService{
		books:   books,
		reviews: reviews,
		logger:  logger.With().Str("service", "reviews").Logger(),
	}
}

// Add creates a review tied to the given book. The book must exist;
// store.ErrNotFound is returned otherwise.
func (s *ReviewService) Add(ctx context.Context, bookID int64, review *model.Review) error {
	if _, err := s.books.GetBook(ctx, bookID); err != nil {
		return err
	}

	review.BookID = bookID
	if err := s.reviews.CreateReview(ctx, review); err != nil {
		s.logger.Error().Err(err).Int64("book_id", bookID).Msg("failed to create review")
		return err
	}
	s.logger.Info().Int64("book_id", bookID).Int64("review_id", review.ID).Msg("review added")
	return nil
}

// ListForBook returns all reviews for the given book id in insertion order.
// The parent book is deliberately not checked: an unknown id yields an empty
// list, and that policy is uniform across callers.
func (s *ReviewService) ListForBook(ctx context.Context, bookID int64) ([]model.Review, error) {
	return s.reviews.ListReviewsByBook(ctx, bookID)
}

package store

import (
	"context"

	"bookvault/internal/model"
)

// CreateReview inserts a new review and fills in its assigned ID.
func (s *Store) CreateReview(ctx context.Context, review *model.Review) error {
	return s.db.WithContext(ctx).Create(review).Error
}

// ListReviewsByBook returns all reviews for the given book id in insertion
// order. An unknown book id yields an empty slice, not an error.
func (s *Store) ListReviewsByBook(ctx context.Context, bookID int64) ([]model.Review, error) {
	var reviews []model.Review
	err := s.db.WithContext(ctx).Where("book_id = ?", bookID).Order("id").Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

package service

import (
	"context"

	"bookvault/internal/model"
)

// BookStore abstracts book persistence.
type BookStore interface {
	CreateBook(ctx context.Context, book *model.Book) error
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int64) (*model.Book, error)
	SaveBook(ctx context.Context, book *model.Book) error
	DeleteBook(ctx context.Context, id int64) error
	FindBooksByGenre(ctx context.Context, genre string) ([]model.Book, error)
}

// ReviewStore abstracts review persistence.
type ReviewStore interface {
	CreateReview(ctx context.Context, review *model.Review) error
	ListReviewsByBook(ctx context.Context, bookID int64) ([]model.Review, error)
}

// Generator abstracts the summary generator. Implementations never fail:
// on any outbound error they return a fixed fallback string.
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// Package service holds the business logic between the HTTP handlers and the
// store: existence checks, partial updates, and the summary aggregation that
// combines store reads with the external generator.
package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"bookvault/internal/model"
	"bookvault/internal/sanitize"
	"bookvault/internal/summarizer"
)

// NoReviewsPlaceholder is reported as the review summary for a book without
// reviews. The generator is not called in that case.
const NoReviewsPlaceholder = "No reviews available."

// BookService implements book CRUD, recommendations, and summary assembly.
type BookService struct {
	books     BookStore
	reviews   ReviewStore
	generator Generator
	logger    zerolog.Logger
}

// NewBookService creates a BookService.
func NewBookService(books BookStore, reviews ReviewStore, generator Generator, logger zerolog.Logger) *BookService {
	return &BookService{
		books:     books,
		reviews:   reviews,
		generator: generator,
		logger:    logger.With().Str("service", "books").Logger(),
	}
}

// BookUpdate carries a partial update; nil fields keep their prior values.
type BookUpdate struct {
	Title         *string
	Author        *string
	Genre         *string
	YearPublished *int
	Summary       *string
}

// Create stores a new book and fills in its assigned id.
func (s *BookService) Create(ctx context.Context, book *model.Book) error {
	if err := s.books.CreateBook(ctx, book); err != nil {
		s.logger.Error().Err(err).Msg("failed to create book")
		return err
	}
	s.logger.Info().Int64("book_id", book.ID).Str("title", book.Title).Msg("book created")
	return nil
}

// List returns every book in store-natural order.
func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	return s.books.ListBooks(ctx)
}

// Get returns the book with the given id, or store.ErrNotFound.
func (s *BookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	return s.books.GetBook(ctx, id)
}

// Update applies only the fields present in the partial update and returns
// the full updated record. Returns store.ErrNotFound for an unknown id.
func (s *BookService) Update(ctx context.Context, id int64, update BookUpdate) (*model.Book, error) {
	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		book.Title = *update.Title
	}
	if update.Author != nil {
		book.Author = *update.Author
	}
	if update.Genre != nil {
		book.Genre = *update.Genre
	}
	if update.YearPublished != nil {
		book.YearPublished = *update.YearPublished
	}
	if update.Summary != nil {
		book.Summary = update.Summary
	}

	if err := s.books.SaveBook(ctx, book); err != nil {
		s.logger.Error().Err(err).Int64("book_id", id).Msg("failed to update book")
		return nil, err
	}
	return book, nil
}

// Delete removes the book with the given id, or returns store.ErrNotFound.
func (s *BookService) Delete(ctx context.Context, id int64) error {
	if err := s.books.DeleteBook(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("book_id", id).Msg("book deleted")
	return nil
}

// Recommendations returns the projected view of all books whose genre
// contains the query, case-insensitively. An empty result is reported as
// store.ErrNotFound so the caller can surface it as "no matches".
func (s *BookService) Recommendations(ctx context.Context, genre string) ([]model.Recommendation, error) {
	books, err := s.books.FindBooksByGenre(ctx, genre)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoRecommendations
	}

	recommendations := make([]model.Recommendation, len(books))
	for i := range books {
		recommendations[i] = books[i].ToRecommendation()
	}
	return recommendations, nil
}

// Summary assembles the composite summary response for a book: the average
// rating and a one-sentence synthesis of its reviews, plus the stored book
// summary or, if none exists, one generated for this response only. The
// generated text is never written back to the store.
func (s *BookService) Summary(ctx context.Context, id int64) (*model.BookSummary, error) {
	book, err := s.books.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviews.ListReviewsByBook(ctx, id)
	if err != nil {
		return nil, err
	}

	var averageRating *float64
	reviewSummary := NoReviewsPlaceholder
	if len(reviews) > 0 {
		avg := roundTwoDecimals(averageOf(reviews))
		averageRating = &avg

		texts := make([]string, 0, len(reviews))
		for _, r := range reviews {
			if r.ReviewText != "" {
				texts = append(texts, sanitize.ReviewText(r.ReviewText))
			}
		}
		reviewSummary = s.generator.Generate(ctx, summarizer.ReviewsPrompt(texts))
	}

	bookSummary := ""
	if book.Summary != nil {
		bookSummary = *book.Summary
	}
	if bookSummary == "" {
		bookSummary = s.generator.Generate(ctx, summarizer.BookPrompt(book.Title, book.Author))
	}

	return &model.BookSummary{
		BookID:        book.ID,
		Title:         book.Title,
		Author:        book.Author,
		AverageRating: averageRating,
		BookSummary:   bookSummary,
		ReviewSummary: reviewSummary,
	}, nil
}

// SummarizeContent is a stateless passthrough: it prompts the generator with
// the raw text and returns whatever comes back. No lookup, no persistence.
func (s *BookService) SummarizeContent(ctx context.Context, content string) string {
	return s.generator.Generate(ctx, summarizer.ContentPrompt(content))
}

func averageOf(reviews []model.Review) float64 {
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}

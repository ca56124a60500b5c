package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookvault/internal/model"
	"bookvault/internal/store"
)

// stubGenerator records every prompt and answers with a canned string.
type stubGenerator struct {
	prompts  []string
	response string
}

func (g *stubGenerator) Generate(_ context.Context, prompt string) string {
	g.prompts = append(g.prompts, prompt)
	return g.response
}

var dbCounter int

func newTestDeps(t *testing.T) (*store.Store, *stubGenerator, *BookService, *ReviewService) {
	t.Helper()
	dbCounter++
	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Book{}, &model.Review{}))

	st := store.New(db)
	gen := &stubGenerator{response: "Generated summary."}
	books := NewBookService(st, st, gen, zerolog.Nop())
	reviews := NewReviewService(st, st, zerolog.Nop())
	return st, gen, books, reviews
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func createBook(t *testing.T, books *BookService, book model.Book) model.Book {
	t.Helper()
	require.NoError(t, books.Create(context.Background(), &book))
	return book
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	_, _, books, _ := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "Sci-Fi", YearPublished: 2023})
	require.NotZero(t, book.ID)

	got, err := books.Get(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, book.Title, got.Title)
	assert.Equal(t, book.Author, got.Author)
	assert.Equal(t, book.Genre, got.Genre)
	assert.Equal(t, book.YearPublished, got.YearPublished)
}

func TestUpdatePartialFieldsOnly(t *testing.T) {
	_, _, books, _ := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "Original", Author: "A", Genre: "Drama", YearPublished: 2001})

	updated, err := books.Update(ctx, book.ID, BookUpdate{Title: strPtr("Changed"), YearPublished: intPtr(2002)})
	require.NoError(t, err)
	assert.Equal(t, "Changed", updated.Title)
	assert.Equal(t, 2002, updated.YearPublished)
	assert.Equal(t, "A", updated.Author)
	assert.Equal(t, "Drama", updated.Genre)
	assert.Nil(t, updated.Summary)
}

func TestUpdateNotFound(t *testing.T) {
	_, _, books, _ := newTestDeps(t)

	_, err := books.Update(context.Background(), 99999, BookUpdate{Title: strPtr("x")})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestDeleteThenGetNotFound(t *testing.T) {
	_, _, books, _ := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "G", YearPublished: 2020})
	require.NoError(t, books.Delete(ctx, book.ID))

	_, err := books.Get(ctx, book.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecommendationsProjectionAndMatching(t *testing.T) {
	_, _, books, _ := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "Sci-Fi", YearPublished: 2023, Summary: strPtr("spoilers")})

	recs, err := books.Recommendations(ctx, "sci")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, book.ID, recs[0].ID)
	assert.Equal(t, "T", recs[0].Title)
	assert.Equal(t, "Sci-Fi", recs[0].Genre)
}

func TestRecommendationsNoMatches(t *testing.T) {
	_, _, books, _ := newTestDeps(t)

	_, err := books.Recommendations(context.Background(), "western")
	assert.ErrorIs(t, err, ErrNoRecommendations)
}

func TestSummaryNotFound(t *testing.T) {
	_, _, books, _ := newTestDeps(t)

	_, err := books.Summary(context.Background(), 99999)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestSummaryZeroReviewsSkipsGenerator(t *testing.T) {
	_, gen, books, _ := newTestDeps(t)
	ctx := context.Background()

	// Stored summary present, zero reviews: no generator call at all.
	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "G", YearPublished: 2020, Summary: strPtr("Stored summary.")})

	summary, err := books.Summary(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, summary.AverageRating)
	assert.Equal(t, NoReviewsPlaceholder, summary.ReviewSummary)
	assert.Equal(t, "Stored summary.", summary.BookSummary)
	assert.Empty(t, gen.prompts)
}

func TestSummaryAverageRatingRounding(t *testing.T) {
	_, _, books, reviews := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "G", YearPublished: 2020, Summary: strPtr("s")})
	for _, rating := range []float64{4, 4, 5} {
		require.NoError(t, reviews.Add(ctx, book.ID, &model.Review{UserID: 1, ReviewText: "fine", Rating: rating}))
	}

	summary, err := books.Summary(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.AverageRating)
	assert.Equal(t, 4.33, *summary.AverageRating)
}

func TestSummaryAverageRatingExactMean(t *testing.T) {
	_, _, books, reviews := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "G", YearPublished: 2020, Summary: strPtr("s")})
	for _, rating := range []float64{4, 5} {
		require.NoError(t, reviews.Add(ctx, book.ID, &model.Review{UserID: 1, ReviewText: "fine", Rating: rating}))
	}

	summary, err := books.Summary(ctx, book.ID)
	require.NoError(t, err)
	require.NotNil(t, summary.AverageRating)
	assert.Equal(t, 4.5, *summary.AverageRating)
}

func TestSummaryGeneratesBookSummaryWithoutCaching(t *testing.T) {
	st, gen, books, _ := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", YearPublished: 1965})

	summary, err := books.Summary(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Generated summary.", summary.BookSummary)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, "Summarize this book:\nDune by Frank Herbert", gen.prompts[0])

	// The generated text must not be written back to the store.
	stored, err := st.GetBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Summary)
}

func TestSummaryReviewPromptJoinsTexts(t *testing.T) {
	_, gen, books, reviews := newTestDeps(t)
	ctx := context.Background()

	book := createBook(t, books, model.Book{Title: "T", Author: "A", Genre: "G", YearPublished: 2020, Summary: strPtr("s")})
	require.NoError(t, reviews.Add(ctx, book.ID, &model.Review{UserID: 1, ReviewText: "great pacing", Rating: 5}))
	require.NoError(t, reviews.Add(ctx, book.ID, &model.Review{UserID: 2, ReviewText: "", Rating: 3}))
	require.NoError(t, reviews.Add(ctx, book.ID, &model.Review{UserID: 3, ReviewText: "weak ending", Rating: 2}))

	summary, err := books.Summary(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Generated summary.", summary.ReviewSummary)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "great pacing\nweak ending")
}

func TestSummarizeContentPassthrough(t *testing.T) {
	_, gen, books, _ := newTestDeps(t)

	got := books.SummarizeContent(context.Background(), "a story about whales")
	assert.Equal(t, "Generated summary.", got)
	require.Len(t, gen.prompts, 1)
	assert.Equal(t, "Summarize this book:\na story about whales", gen.prompts[0])
}

// Package seed loads an initial book catalog from a JSON file into an empty
// database, so a fresh deployment has something to serve.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"bookvault/internal/model"
	"bookvault/internal/store"
)

type seedBook struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	Genre         string  `json:"genre"`
	YearPublished int     `json:"year_published"`
	Summary       *string `json:"summary"`
}

// Load inserts the books from the JSON file at path unless the books table
// already has records. It returns the number of books inserted.
func Load(ctx context.Context, st *store.Store, path string) (int, error) {
	existing, err := st.ListBooks(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to check existing books: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var seeds []seedBook
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for _, s := range seeds {
		book := model.Book{
			Title:         s.Title,
			Author:        s.Author,
			Genre:         s.Genre,
			YearPublished: s.YearPublished,
			Summary:       s.Summary,
		}
		if err := st.CreateBook(ctx, &book); err != nil {
			return 0, fmt.Errorf("failed to insert seed book %q: %w", s.Title, err)
		}
	}
	return len(seeds), nil
}

package model

// Book is a catalog record describing a literary work. Summary is nullable:
// absence means no summary has been stored yet, in which case one is
// generated on the fly for summary responses.
type Book struct {
	ID            int64   `json:"id" gorm:"primaryKey"`
	Title         string  `json:"title" gorm:"not null"`
	Author        string  `json:"author" gorm:"not null"`
	Genre         string  `json:"genre" gorm:"not null;index"`
	YearPublished int     `json:"year_published" gorm:"not null"`
	Summary       *string `json:"summary" gorm:"type:text"`

	Reviews []Review `json:"-" gorm:"foreignKey:BookID"`
}

func (Book) TableName() string { return "books" }

// Recommendation is the projected, summary-free view of a Book returned by
// the genre query.
type Recommendation struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	Genre         string `json:"genre"`
	YearPublished int    `json:"year_published"`
}

func (b *Book) ToRecommendation() Recommendation {
	return Recommendation{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Genre:         b.Genre,
		YearPublished: b.YearPublished,
	}
}

// BookSummary is the composite returned by the summary endpoint. A nil
// AverageRating means the book has no reviews yet.
type BookSummary struct {
	BookID        int64    `json:"book_id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	AverageRating *float64 `json:"average_rating"`
	BookSummary   string   `json:"book_summary"`
	ReviewSummary string   `json:"review_summary"`
}

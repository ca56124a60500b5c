package model

// Review is a user-submitted rating and optional comment attached to exactly
// one Book. UserID is caller-supplied and not checked against any registry.
type Review struct {
	ID         int64   `json:"id" gorm:"primaryKey"`
	BookID     int64   `json:"book_id" gorm:"not null;index"`
	UserID     int64   `json:"user_id" gorm:"not null"`
	ReviewText string  `json:"review_text" gorm:"type:text"`
	Rating     float64 `json:"rating" gorm:"not null"`
}

func (Review) TableName() string { return "reviews" }

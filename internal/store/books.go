package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"bookvault/internal/model"
)

// CreateBook inserts a new book and fills in its assigned ID.
func (s *Store) CreateBook(ctx context.Context, book *model.Book) error {
	return s.db.WithContext(ctx).Create(book).Error
}

// ListBooks returns every book in natural table order.
func (s *Store) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := s.db.WithContext(ctx).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// GetBook returns the book with the given id, or ErrNotFound.
func (s *Store) GetBook(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	err := s.db.WithContext(ctx).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// SaveBook persists every field of an existing book.
func (s *Store) SaveBook(ctx context.Context, book *model.Book) error {
	return s.db.WithContext(ctx).Save(book).Error
}

// DeleteBook removes a book and its reviews in one transaction, returning
// ErrNotFound if the book does not exist. Sweeping the reviews keeps them
// from becoming unreachable rows, since reviews are only ever queried by
// book id.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.Book{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("book_id = ?", id).Delete(&model.Review{}).Error
	})
}

// FindBooksByGenre returns all books whose genre contains the query,
// case-insensitively. An empty result is not an error at this layer.
func (s *Store) FindBooksByGenre(ctx context.Context, genre string) ([]model.Book, error) {
	var books []model.Book
	pattern := "%" + strings.ToLower(genre) + "%"
	err := s.db.WithContext(ctx).Where("LOWER(genre) LIKE ?", pattern).Find(&books).Error
	if err != nil {
		return nil, err
	}
	return books, nil
}

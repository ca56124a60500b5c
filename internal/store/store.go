// Package store is the persistence layer. It wraps a GORM handle and exposes
// typed access to the books and reviews tables; callers never see gorm errors
// directly, only ErrNotFound or a wrapped driver error.
package store

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bookvault/internal/model"
)

// ErrNotFound is returned when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// Store provides database access for all tables.
type Store struct {
	db *gorm.DB
}

// New creates a Store using the provided GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Open connects to PostgreSQL and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.Book{}, &model.Review{}); err != nil {
		return nil, err
	}
	return New(db), nil
}

// DB exposes the underlying handle for migrations and health pings.
func (s *Store) DB() *gorm.DB { return s.db }

// Ping verifies the database connection is alive.
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

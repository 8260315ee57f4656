package repository

import (
	"context"
	"errors"

	"librarium/internal/domain/entity"
)

// ErrAuthorNotFound is returned when an author reference does not exist.
var ErrAuthorNotFound = errors.New("author not found")

// ErrClassificationNotFound is returned when a classification reference does not exist.
var ErrClassificationNotFound = errors.New("classification not found")

// AuthorRepository defines operations on the authors reference table.
type AuthorRepository interface {
	// FindByID retrieves a single author by id.
	FindByID(ctx context.Context, id int64) (*entity.Author, error)

	// FindAll retrieves all authors ordered by name.
	FindAll(ctx context.Context) ([]*entity.Author, error)

	// Create persists a new author and assigns the generated id back onto the entity.
	Create(ctx context.Context, author *entity.Author) error
}

// ClassificationRepository defines operations on the classifications reference table.
type ClassificationRepository interface {
	// FindByID retrieves a single classification by id.
	FindByID(ctx context.Context, id int64) (*entity.Classification, error)

	// FindAll retrieves all classifications ordered by name.
	FindAll(ctx context.Context) ([]*entity.Classification, error)

	// Create persists a new classification and assigns the generated id back onto the entity.
	Create(ctx context.Context, classification *entity.Classification) error
}

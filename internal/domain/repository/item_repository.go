// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"librarium/internal/domain/entity"
)

// ErrItemNotFound is a domain-specific error returned when an item is not found.
var ErrItemNotFound = errors.New("item not found")

// ItemRepository defines the standard operations for catalog item persistence.
// The application layer will depend on this interface, not the concrete implementation.
type ItemRepository interface {
	// FindByID retrieves a single item by its id. Soft-deleted rows are
	// excluded unless includeDeleted is set.
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*entity.Item, error)

	// FindByTitle retrieves all non-deleted copies sharing the given title.
	FindByTitle(ctx context.Context, title string) ([]*entity.Item, error)

	// FindByISBN retrieves all non-deleted literature items with the given ISBN.
	FindByISBN(ctx context.Context, isbn string) ([]*entity.Item, error)

	// FindByAuthor retrieves all non-deleted items referencing the given author.
	FindByAuthor(ctx context.Context, authorID int64) ([]*entity.Item, error)

	// FindByClassification retrieves all non-deleted items referencing the given classification.
	FindByClassification(ctx context.Context, classificationID int64) ([]*entity.Item, error)

	// FindAvailableByTitle returns the first available non-deleted copy of the
	// title in primary-key order, or ErrItemNotFound when none is available.
	FindAvailableByTitle(ctx context.Context, title string) (*entity.Item, error)

	// FindAll retrieves every non-purged item, including soft-deleted rows.
	// Used to warm the in-memory catalog indexes.
	FindAll(ctx context.Context) ([]*entity.Item, error)

	// Create persists a new item together with its film/literature child row
	// and assigns the generated id back onto the entity.
	Create(ctx context.Context, item *entity.Item) error

	// Update persists all mutable fields of an existing item.
	Update(ctx context.Context, item *entity.Item) error

	// UpdateAvailability flips the available flag of one row.
	UpdateAvailability(ctx context.Context, id int64, available bool) error

	// SetDeleted toggles the soft-delete flag of one row.
	SetDeleted(ctx context.Context, id int64, deleted bool) error

	// HardDelete removes the row and its child row permanently.
	HardDelete(ctx context.Context, id int64) error
}

package repository

import (
	"context"
	"errors"
	"time"

	"librarium/internal/domain/entity"
)

// ErrRentalNotFound is a domain-specific error returned when a rental is not found.
var ErrRentalNotFound = errors.New("rental not found")

// RentalRepository defines the standard operations for rental persistence.
// Soft-deleted rentals are always visible through this interface; only a
// hard delete removes a rental from view.
type RentalRepository interface {
	// FindByID retrieves a single rental by id, soft-deleted or not.
	FindByID(ctx context.Context, id int64) (*entity.Rental, error)

	// FindByUser retrieves all rentals of one user, newest first.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Rental, error)

	// FindActiveByItem retrieves the active (unreturned) rental referencing
	// the given item, or ErrRentalNotFound when the copy is on the shelf.
	FindActiveByItem(ctx context.Context, itemID int64) (*entity.Rental, error)

	// FindOverdue retrieves all active rentals whose due date lies before asOf.
	FindOverdue(ctx context.Context, asOf time.Time) ([]*entity.Rental, error)

	// Create persists a new rental and assigns the generated id back onto the entity.
	Create(ctx context.Context, rental *entity.Rental) error

	// Update persists the mutable fields: due date, return date and late fee.
	Update(ctx context.Context, rental *entity.Rental) error

	// SetDeleted toggles the soft-delete flag of one row.
	SetDeleted(ctx context.Context, id int64, deleted bool) error

	// HardDelete removes the row permanently.
	HardDelete(ctx context.Context, id int64) error
}

package repository

import (
	"context"
	"errors"

	"librarium/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrRentalLimitReached is returned by AdjustRentalCount when an increment
// would push the user past their allowed rentals.
var ErrRentalLimitReached = errors.New("rental limit reached")

// UserRepository defines the standard operations for member persistence.
type UserRepository interface {
	// FindByID retrieves a single user by id. Soft-deleted rows are excluded
	// unless includeDeleted is set.
	FindByID(ctx context.Context, id int64, includeDeleted bool) (*entity.User, error)

	// FindByUsername retrieves a single user by username, including
	// soft-deleted rows (names stay reserved while soft-deleted).
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves every non-purged user, including soft-deleted rows.
	// Used to warm the uniqueness sets.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// Create persists a new user and assigns the generated id back onto the entity.
	Create(ctx context.Context, user *entity.User) error

	// Update persists all mutable fields, including counters and late fee.
	Update(ctx context.Context, user *entity.User) error

	// AdjustRentalCount atomically adds delta to a user's current rental
	// count. A positive delta is refused with ErrRentalLimitReached when it
	// would exceed the allowed rentals; a negative delta never takes the
	// counter below zero. The guard lives in the row update itself, so two
	// concurrent increments cannot both slip past the limit.
	AdjustRentalCount(ctx context.Context, id int64, delta int) error

	// SetDeleted toggles the soft-delete flag of one row.
	SetDeleted(ctx context.Context, id int64, deleted bool) error

	// HardDelete removes the row permanently.
	HardDelete(ctx context.Context, id int64) error
}

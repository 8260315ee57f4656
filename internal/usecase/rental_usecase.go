package usecase

import (
	"context"

	"librarium/internal/domain/entity"
)

// --- Input DTOs ---

// CreateRentalInput defines the data required to open a rental.
type CreateRentalInput struct {
	UserID int64
	ItemID int64
}

// RentalUsecase defines the interface for the rental lifecycle.
// Opening and closing a rental each touch three rows (rental, item, user)
// inside one transaction; the in-memory indexes are adjusted only after the
// transaction commits.
type RentalUsecase interface {
	// CreateRental opens a rental for the user on the requested copy, or on
	// an available copy of the same title when the requested one is out.
	CreateRental(ctx context.Context, input *CreateRentalInput) (*entity.Rental, error)

	// ReturnRental closes the given rental, setting its return date and
	// releasing the copy and the user's rental slot.
	ReturnRental(ctx context.Context, rental *entity.Rental) (*entity.Rental, error)

	// UpdateRental persists changes to the rental's due date, return date or
	// late fee. Changes to any other field are rejected.
	UpdateRental(ctx context.Context, rental *entity.Rental) (*entity.Rental, error)

	DeleteRental(ctx context.Context, id int64) error
	RecoverRental(ctx context.Context, id int64) error

	// HardDeleteRental permanently removes the rental. Purging an active
	// rental also releases the copy and the user's rental slot.
	HardDeleteRental(ctx context.Context, id int64) error

	// OverdueRentals lists active rentals whose due date has passed.
	OverdueRentals(ctx context.Context) ([]*entity.Rental, error)

	GetRentalByID(ctx context.Context, id int64) (*entity.Rental, error)
	ListRentalsByUser(ctx context.Context, userID int64) ([]*entity.Rental, error)

	// RenderReceiptQR produces a PNG QR code for the rental's receipt.
	RenderReceiptQR(ctx context.Context, rentalID int64) ([]byte, error)
}

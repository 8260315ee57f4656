package entity

import "time"

// Rental represents one lending of a single copy to a single user.
//
// Username, ItemTitle and ItemType are denormalized snapshots taken at
// creation time for display and audit; they are never re-synced when the
// source user or item changes later. A rental with a nil ReturnDate is
// active; setting the return date is a one-way transition. The Deleted flag
// is orthogonal to the return state.
type Rental struct {
	ID         int64      // Store-assigned identifier; zero before persistence.
	UserID     int64      // The renting user at creation time.
	ItemID     int64      // The rented copy at creation time.
	Username   string     // Snapshot of the user's username.
	ItemTitle  string     // Snapshot of the item's title.
	ItemType   ItemType   // Snapshot of the item's type.
	RentalDate time.Time  // When the rental was opened; immutable.
	DueDate    time.Time  // RentalDate plus the item's allowed rental days.
	ReturnDate *time.Time // Nil while the rental is active.
	LateFee    float64    // Fee assessed on this rental; zero when on time.
	Receipt    string     // Receipt text rendered at creation from the snapshots.
	ReceiptRef string     // Receipt reference number printed on the receipt.
	Deleted    bool       // Soft-delete flag; reversible via recover.
}

// IsActive reports whether the rental has not been returned yet.
func (r *Rental) IsActive() bool {
	return r.ReturnDate == nil
}

// IsOverdue reports whether the rental is active and past its due date at the
// given instant.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.IsActive() && r.DueDate.Before(now)
}

package service

import "librarium/internal/domain/entity"

// ReceiptRenderer renders the receipt a member gets when a rental is opened.
// The text is generated once, from the rental's snapshot fields, and stored
// on the rental row.
type ReceiptRenderer interface {
	// Render produces the receipt text for a freshly created rental.
	Render(rental *entity.Rental) string

	// RenderQR produces a PNG QR code encoding the rental's receipt reference.
	RenderQR(rental *entity.Rental) ([]byte, error)
}

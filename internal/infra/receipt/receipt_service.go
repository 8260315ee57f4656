// Package receipt renders the rental receipts handed out at checkout.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"librarium/internal/domain/entity"
	"librarium/internal/domain/service"
)

type receiptService struct {
	libraryName          string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewReceiptService creates a new receipt renderer instance.
func NewReceiptService(libraryName string, size int, errorCorrectionLevel string) service.ReceiptRenderer {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &receiptService{
		libraryName:          libraryName,
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// Render produces the receipt text for a freshly created rental.
// The text is built from the rental's snapshot fields only, so it stays
// stable even if the user or item is renamed afterwards.
func (s *receiptService) Render(rental *entity.Rental) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", s.libraryName)
	fmt.Fprintf(&b, "Receipt: %s\n", rental.ReceiptRef)
	fmt.Fprintf(&b, "Member:  %s\n", rental.Username)
	fmt.Fprintf(&b, "Item:    %s (%s)\n", rental.ItemTitle, rental.ItemType)
	fmt.Fprintf(&b, "Rented:  %s\n", rental.RentalDate.Format(time.DateOnly))
	fmt.Fprintf(&b, "Due:     %s\n", rental.DueDate.Format(time.DateOnly))

	return b.String()
}

// RenderQR produces a PNG QR code encoding the rental's receipt reference.
func (s *receiptService) RenderQR(rental *entity.Rental) ([]byte, error) {
	qrCode, err := qrcode.New(rental.ReceiptRef, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

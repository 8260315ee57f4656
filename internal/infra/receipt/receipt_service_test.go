package receipt

import (
	"testing"
	"time"

	"librarium/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRental() *entity.Rental {
	rented := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	return &entity.Rental{
		ID:         1,
		Username:   "paul",
		ItemTitle:  "Dune",
		ItemType:   entity.ItemTypeOtherBooks,
		RentalDate: rented,
		DueDate:    rented.AddDate(0, 0, 30),
		ReceiptRef: "8a86df26-3c1c-4f4f-9db1-1d2f5e4cfd5a",
	}
}

func TestReceiptService_Render(t *testing.T) {
	renderer := NewReceiptService("City Library", 256, "M")

	text := renderer.Render(testRental())

	assert.Contains(t, text, "City Library")
	assert.Contains(t, text, "Receipt: 8a86df26-3c1c-4f4f-9db1-1d2f5e4cfd5a")
	assert.Contains(t, text, "Member:  paul")
	assert.Contains(t, text, "Item:    Dune (OTHER_BOOKS)")
	assert.Contains(t, text, "Rented:  2025-03-01")
	assert.Contains(t, text, "Due:     2025-03-31")
}

func TestReceiptService_RenderQR(t *testing.T) {
	renderer := NewReceiptService("City Library", 256, "M")

	png, err := renderer.RenderQR(testRental())

	require.NoError(t, err)
	// PNG magic bytes.
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 0x50, 0x4e, 0x47}, png[:4])
}

func TestReceiptService_UnknownCorrectionLevelFallsBack(t *testing.T) {
	renderer := NewReceiptService("City Library", 128, "X")

	png, err := renderer.RenderQR(testRental())

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

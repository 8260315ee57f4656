package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"librarium/internal/delivery/http/validator"
	"librarium/internal/domain/entity"
	mockUsecase "librarium/internal/mocks/usecase"
	"librarium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRentalHandlerTest(t *testing.T) (*RentalHandler, *mockUsecase.MockRentalUsecase, *echo.Echo) {
	rentalUC := mockUsecase.NewMockRentalUsecase(t)
	handler := &RentalHandler{
		rentalUC: rentalUC,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return handler, rentalUC, e
}

func TestRentalHandler_CreateRental(t *testing.T) {
	handler, rentalUC, e := newRentalHandlerTest(t)

	now := time.Now().Truncate(time.Second)
	rentalUC.EXPECT().
		CreateRental(mock.Anything, &usecase.CreateRentalInput{UserID: 42, ItemID: 7}).
		Return(&entity.Rental{
			ID:         1,
			UserID:     42,
			ItemID:     7,
			Username:   "paul",
			ItemTitle:  "Dune",
			ItemType:   entity.ItemTypeOtherBooks,
			RentalDate: now,
			DueDate:    now.AddDate(0, 0, 30),
		}, nil)

	body := `{"user_id": 42, "item_id": 7}`
	req := httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateRental(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Dune"`)
	assert.Contains(t, rec.Body.String(), "Rental created successfully")
}

func TestRentalHandler_CreateRental_ValidationError(t *testing.T) {
	handler, _, e := newRentalHandlerTest(t)

	// Missing item_id must be rejected before the usecase is reached.
	body := `{"user_id": 42}`
	req := httptest.NewRequest(http.MethodPost, "/rentals", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateRental(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalHandler_GetRental_InvalidID(t *testing.T) {
	handler, _, e := newRentalHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/rentals/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.GetRental(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRentalHandler_GetReceiptQR(t *testing.T) {
	handler, rentalUC, e := newRentalHandlerTest(t)

	png := []byte{0x89, 0x50, 0x4e, 0x47}
	rentalUC.EXPECT().RenderReceiptQR(mock.Anything, int64(1)).Return(png, nil)

	req := httptest.NewRequest(http.MethodGet, "/rentals/1/receipt/qr", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, handler.GetReceiptQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

package handler

import (
	"log/slog"
	"net/http"
	"time"

	"librarium/internal/delivery/http/response"
	"librarium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RentalHandlerParams holds dependencies for RentalHandler, injected by Fx.
type RentalHandlerParams struct {
	fx.In

	RentalUC usecase.RentalUsecase
	Logger   *slog.Logger
}

// RentalHandler holds dependencies for rental lifecycle handlers
type RentalHandler struct {
	rentalUC usecase.RentalUsecase
	logger   *slog.Logger
}

// NewRentalHandler is the constructor for RentalHandler
func NewRentalHandler(params RentalHandlerParams) *RentalHandler {
	return &RentalHandler{
		rentalUC: params.RentalUC,
		logger:   params.Logger,
	}
}

// CreateRentalRequest represents the request body for opening a rental
type CreateRentalRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
	ItemID int64 `json:"item_id" validate:"required"`
}

// UpdateRentalRequest represents the request body for correcting a rental record
type UpdateRentalRequest struct {
	DueDate    *time.Time `json:"due_date,omitempty"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
	LateFee    *float64   `json:"late_fee,omitempty" validate:"omitempty,min=0"`
}

// CreateRental handles opening a new rental.
func (h *RentalHandler) CreateRental(c echo.Context) error {
	var req CreateRentalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rental input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	rental, err := h.rentalUC.CreateRental(c.Request().Context(), &usecase.CreateRentalInput{
		UserID: req.UserID,
		ItemID: req.ItemID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, rental, "Rental created successfully")
}

// GetRental handles fetching a single rental by its id.
func (h *RentalHandler) GetRental(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	rental, err := h.rentalUC.GetRentalByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rental, "Rental retrieved successfully")
}

// ListUserRentals handles listing all rentals of one member.
func (h *RentalHandler) ListUserRentals(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	rentals, err := h.rentalUC.ListRentalsByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rentals, "Rentals retrieved successfully")
}

// ReturnRental handles closing an active rental.
func (h *RentalHandler) ReturnRental(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	ctx := c.Request().Context()

	rental, err := h.rentalUC.GetRentalByID(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	returned, err := h.rentalUC.ReturnRental(ctx, rental)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, returned, "Rental returned successfully")
}

// UpdateRental handles correcting the mutable fields of a rental record.
func (h *RentalHandler) UpdateRental(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	var req UpdateRentalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rental input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()

	current, err := h.rentalUC.GetRentalByID(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	patched := *current
	if req.DueDate != nil {
		patched.DueDate = *req.DueDate
	}
	if req.ReturnDate != nil {
		patched.ReturnDate = req.ReturnDate
	}
	if req.LateFee != nil {
		patched.LateFee = *req.LateFee
	}

	updated, err := h.rentalUC.UpdateRental(ctx, &patched)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Rental updated successfully")
}

// DeleteRental handles soft-deleting a rental record.
func (h *RentalHandler) DeleteRental(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	if err := h.rentalUC.DeleteRental(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rental deleted successfully")
}

// RecoverRental handles restoring a soft-deleted rental record.
func (h *RentalHandler) RecoverRental(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	if err := h.rentalUC.RecoverRental(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rental recovered successfully")
}

// HardDeleteRental handles permanently removing a rental record.
func (h *RentalHandler) HardDeleteRental(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	if err := h.rentalUC.HardDeleteRental(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Rental permanently deleted")
}

// ListOverdueRentals handles listing every active rental past its due date.
func (h *RentalHandler) ListOverdueRentals(c echo.Context) error {
	rentals, err := h.rentalUC.OverdueRentals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, rentals, "Overdue rentals retrieved successfully")
}

// GetReceiptQR handles rendering the rental receipt reference as a QR code PNG.
func (h *RentalHandler) GetReceiptQR(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid rental id")
	}

	png, err := h.rentalUC.RenderReceiptQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.PNG(c, png)
}

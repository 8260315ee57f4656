package handler

import (
	"log/slog"
	"net/http"

	"librarium/internal/delivery/http/response"
	"librarium/internal/domain/entity"
	"librarium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	Logger   *slog.Logger
}

// UserHandler holds dependencies for member-related handlers.
type UserHandler struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		memberUC: params.MemberUC,
		logger:   params.Logger,
	}
}

// RegisterUserRequest represents the request body for registering a member
type RegisterUserRequest struct {
	Username       string `json:"username" validate:"required"`
	Password       string `json:"password" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Type           string `json:"type" validate:"required"`
	AllowedRentals int    `json:"allowed_rentals,omitempty" validate:"omitempty,min=0"`
}

// UpdateUserRequest represents the request body for updating a member
type UpdateUserRequest struct {
	Username       string `json:"username,omitempty"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	AllowedRentals int    `json:"allowed_rentals,omitempty" validate:"omitempty,min=0"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SetLateFeeRequest represents the request body for adjusting a member's late fee
type SetLateFeeRequest struct {
	Fee float64 `json:"fee" validate:"min=0"`
}

// RegisterUser handles the member registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateUserInput{
		Username:       req.Username,
		Password:       req.Password,
		Email:          req.Email,
		Type:           entity.UserType(req.Type),
		AllowedRentals: req.AllowedRentals,
	}

	user, err := h.memberUC.CreateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// Do not return sensitive data in the response.
	return response.Success(c, http.StatusCreated, sanitizeUser(user), "User registered successfully")
}

// Login handles the member login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.memberUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	output.User = sanitizeUser(output.User)

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// GetProfile handles the request to get the current user's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, ok := c.Get("userID").(int64)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.memberUC.GetUserByID(c.Request().Context(), userID, false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sanitizeUser(user), "Profile retrieved successfully")
}

// GetUser handles fetching a member by id.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	includeDeleted := c.QueryParam("include_deleted") == "true"

	user, err := h.memberUC.GetUserByID(c.Request().Context(), id, includeDeleted)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sanitizeUser(user), "User retrieved successfully")
}

// UpdateUser handles modifying the mutable fields of a member.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateUserInput{
		ID:             id,
		Username:       req.Username,
		Email:          req.Email,
		AllowedRentals: req.AllowedRentals,
	}

	user, err := h.memberUC.UpdateUser(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sanitizeUser(user), "User updated successfully")
}

// DeleteUser handles soft-deleting a member.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.memberUC.DeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted successfully")
}

// RecoverUser handles restoring a soft-deleted member.
func (h *UserHandler) RecoverUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.memberUC.RecoverUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User recovered successfully")
}

// HardDeleteUser handles permanently removing a member.
func (h *UserHandler) HardDeleteUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	if err := h.memberUC.HardDeleteUser(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User permanently deleted")
}

// SetLateFee handles adjusting the outstanding late fee of a member.
func (h *UserHandler) SetLateFee(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user id")
	}

	var req SetLateFeeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid late fee input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.memberUC.SetLateFee(c.Request().Context(), id, req.Fee); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Late fee updated successfully")
}

// sanitizeUser returns a copy with the password hash stripped. The input may
// be a cached entity shared across requests, so it is never mutated.
func sanitizeUser(user *entity.User) *entity.User {
	public := *user
	public.PasswordHash = ""

	return &public
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

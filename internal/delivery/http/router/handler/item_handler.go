// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"librarium/internal/delivery/http/response"
	"librarium/internal/domain/entity"
	"librarium/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ItemHandler holds dependencies for catalog-related handlers
type ItemHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// CreateFilmRequest represents the request body for registering a film copy
type CreateFilmRequest struct {
	Title               string `json:"title" validate:"required"`
	Barcode             string `json:"barcode" validate:"required"`
	AuthorID            int64  `json:"author_id" validate:"required"`
	ClassificationID    int64  `json:"classification_id" validate:"required"`
	AgeRating           int    `json:"age_rating" validate:"min=0,max=100"`
	CountryOfProduction string `json:"country_of_production"`
	ListOfActors        string `json:"list_of_actors"`
	AllowedRentalDays   int    `json:"allowed_rental_days,omitempty" validate:"omitempty,min=0"`
}

// CreateLiteratureRequest represents the request body for registering a literature copy
type CreateLiteratureRequest struct {
	Title             string `json:"title" validate:"required"`
	Type              string `json:"type" validate:"required"`
	Barcode           string `json:"barcode" validate:"required"`
	ISBN              string `json:"isbn" validate:"required"`
	AuthorID          int64  `json:"author_id" validate:"required"`
	ClassificationID  int64  `json:"classification_id" validate:"required"`
	AllowedRentalDays int    `json:"allowed_rental_days,omitempty" validate:"omitempty,min=0"`
}

// UpdateItemRequest represents the request body for updating a catalog copy
type UpdateItemRequest struct {
	Title             *string `json:"title,omitempty"`
	Barcode           *string `json:"barcode,omitempty"`
	AllowedRentalDays *int    `json:"allowed_rental_days,omitempty" validate:"omitempty,min=0"`
}

// CreateAuthorRequest represents the request body for creating an author
type CreateAuthorRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateClassificationRequest represents the request body for creating a classification
type CreateClassificationRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateFilm handles registering a new film copy in the catalog.
func (h *ItemHandler) CreateFilm(c echo.Context) error {
	var req CreateFilmRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid film input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateFilmInput{
		Title:               req.Title,
		Barcode:             req.Barcode,
		AuthorID:            req.AuthorID,
		ClassificationID:    req.ClassificationID,
		AgeRating:           req.AgeRating,
		CountryOfProduction: req.CountryOfProduction,
		ListOfActors:        req.ListOfActors,
		AllowedRentalDays:   req.AllowedRentalDays,
	}

	item, err := h.catalogUC.CreateFilm(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Film registered successfully")
}

// CreateLiterature handles registering a new literature copy in the catalog.
func (h *ItemHandler) CreateLiterature(c echo.Context) error {
	var req CreateLiteratureRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid literature input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.CreateLiteratureInput{
		Title:             req.Title,
		Type:              entity.ItemType(req.Type),
		Barcode:           req.Barcode,
		ISBN:              req.ISBN,
		AuthorID:          req.AuthorID,
		ClassificationID:  req.ClassificationID,
		AllowedRentalDays: req.AllowedRentalDays,
	}

	item, err := h.catalogUC.CreateLiterature(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, item, "Literature registered successfully")
}

// GetItem handles fetching a single catalog copy by its id.
func (h *ItemHandler) GetItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	item, err := h.catalogUC.GetItemByID(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}

// SearchItems handles catalog lookups by title, isbn, author or classification.
func (h *ItemHandler) SearchItems(c echo.Context) error {
	ctx := c.Request().Context()

	if title := c.QueryParam("title"); title != "" {
		items, err := h.catalogUC.GetItemsByTitle(ctx, title)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
	}

	if isbn := c.QueryParam("isbn"); isbn != "" {
		items, err := h.catalogUC.GetItemsByISBN(ctx, isbn)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
	}

	if authorParam := c.QueryParam("author_id"); authorParam != "" {
		authorID, err := strconv.ParseInt(authorParam, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid author id")
		}

		items, err := h.catalogUC.GetItemsByAuthor(ctx, authorID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
	}

	if classificationParam := c.QueryParam("classification_id"); classificationParam != "" {
		classificationID, err := strconv.ParseInt(classificationParam, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid classification id")
		}

		items, err := h.catalogUC.GetItemsByClassification(ctx, classificationID)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
	}

	return response.BadRequest(c, "INVALID_INPUT", "One of title, isbn, author_id or classification_id is required")
}

// GetAvailability handles reporting the stored and available copy counts for a title.
func (h *ItemHandler) GetAvailability(c echo.Context) error {
	title := c.QueryParam("title")
	if title == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Title is required")
	}

	return response.Success(c, http.StatusOK, map[string]int{
		"stored":    h.catalogUC.StoredCount(title),
		"available": h.catalogUC.AvailableCount(title),
	}, "Availability retrieved successfully")
}

// UpdateItem handles modifying the mutable fields of a catalog copy.
func (h *ItemHandler) UpdateItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateItemInput{ID: id}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Barcode != nil {
		input.Barcode = *req.Barcode
	}
	if req.AllowedRentalDays != nil {
		input.AllowedRentalDays = *req.AllowedRentalDays
	}

	item, err := h.catalogUC.UpdateItem(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item updated successfully")
}

// DeleteItem handles soft-deleting a catalog copy.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.catalogUC.DeleteItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item deleted successfully")
}

// RecoverItem handles restoring a soft-deleted catalog copy.
func (h *ItemHandler) RecoverItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.catalogUC.RecoverItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item recovered successfully")
}

// HardDeleteItem handles permanently removing a catalog copy.
func (h *ItemHandler) HardDeleteItem(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid item id")
	}

	if err := h.catalogUC.HardDeleteItem(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item permanently deleted")
}

// CreateAuthor handles creating a new author.
func (h *ItemHandler) CreateAuthor(c echo.Context) error {
	var req CreateAuthorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid author input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	author, err := h.catalogUC.CreateAuthor(c.Request().Context(), &usecase.CreateAuthorInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, author, "Author created successfully")
}

// ListAuthors handles listing all authors.
func (h *ItemHandler) ListAuthors(c echo.Context) error {
	authors, err := h.catalogUC.ListAuthors(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, authors, "Authors retrieved successfully")
}

// CreateClassification handles creating a new classification.
func (h *ItemHandler) CreateClassification(c echo.Context) error {
	var req CreateClassificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid classification input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	classification, err := h.catalogUC.CreateClassification(c.Request().Context(), &usecase.CreateClassificationInput{Name: req.Name})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, classification, "Classification created successfully")
}

// ListClassifications handles listing all classifications.
func (h *ItemHandler) ListClassifications(c echo.Context) error {
	classifications, err := h.catalogUC.ListClassifications(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, classifications, "Classifications retrieved successfully")
}

// parseIDParam extracts an int64 path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"librarium/internal/domain/entity"
)

// --- Input DTOs ---

// CreateFilmInput defines the data required to register a new film copy.
type CreateFilmInput struct {
	Title               string
	Barcode             string
	AuthorID            int64
	ClassificationID    int64
	AgeRating           int
	CountryOfProduction string
	ListOfActors        string
	// AllowedRentalDays overrides the type default when > 0.
	AllowedRentalDays int
}

// CreateLiteratureInput defines the data required to register a new
// literature copy of any printed type.
type CreateLiteratureInput struct {
	Title             string
	Type              entity.ItemType
	Barcode           string
	ISBN              string
	AuthorID          int64
	ClassificationID  int64
	AllowedRentalDays int
}

// UpdateItemInput carries the mutable fields of an existing item.
// Zero-valued fields are left unchanged.
type UpdateItemInput struct {
	ID                int64
	Title             string
	Barcode           string
	AllowedRentalDays int
}

// CreateAuthorInput defines the data required to register an author.
type CreateAuthorInput struct {
	Name string
}

// CreateClassificationInput defines the data required to register a
// classification.
type CreateClassificationInput struct {
	Name        string
	Description string
}

// CatalogUsecase defines the interface for item availability operations.
// Besides persistence it owns the in-memory availability indexes: per-title
// stored and available counts plus the registered barcode set.
type CatalogUsecase interface {
	CreateFilm(ctx context.Context, input *CreateFilmInput) (*entity.Item, error)
	CreateLiterature(ctx context.Context, input *CreateLiteratureInput) (*entity.Item, error)

	GetItemByID(ctx context.Context, id int64) (*entity.Item, error)
	GetItemsByTitle(ctx context.Context, title string) ([]*entity.Item, error)
	GetItemsByISBN(ctx context.Context, isbn string) ([]*entity.Item, error)
	GetItemsByAuthor(ctx context.Context, authorID int64) ([]*entity.Item, error)
	GetItemsByClassification(ctx context.Context, classificationID int64) ([]*entity.Item, error)

	UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.Item, error)
	DeleteItem(ctx context.Context, id int64) error
	RecoverItem(ctx context.Context, id int64) error
	HardDeleteItem(ctx context.Context, id int64) error

	// FindRentableCopy returns the requested copy when it is rentable and
	// available, or the first available copy of the same title in id order.
	FindRentableCopy(ctx context.Context, itemID int64) (*entity.Item, error)

	// SetAvailability adjusts the in-memory available count for a title after
	// the caller has already persisted the item row change. It is the only
	// path that mutates the availability index outside of catalog writes.
	SetAvailability(title string, available bool)

	// StoredCount reports how many non-purged copies of a title exist.
	StoredCount(title string) int

	// AvailableCount reports how many copies of a title are available to rent.
	AvailableCount(title string) int

	CreateAuthor(ctx context.Context, input *CreateAuthorInput) (*entity.Author, error)
	ListAuthors(ctx context.Context) ([]*entity.Author, error)
	CreateClassification(ctx context.Context, input *CreateClassificationInput) (*entity.Classification, error)
	ListClassifications(ctx context.Context) ([]*entity.Classification, error)

	// Reset rebuilds the in-memory indexes from the store.
	Reset(ctx context.Context) error
}

// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "librarium/internal/delivery/context"
	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	"librarium/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Field length limits shared by the catalog validations.
const (
	maxTitleLength   = 255
	maxBarcodeLength = 64
	maxISBNLength    = 20
	maxNameLength    = 100
	maxAgeRating     = 100
)

// catalogService implements the CatalogUsecase interface.
//
// The in-memory indexes mirror the store: per-title stored and available
// counts plus the set of registered barcodes. Soft-deleted items keep their
// barcode reserved but drop out of both counts; only a hard delete releases
// the barcode. All index access goes through mu.
type catalogService struct {
	txManager          repository.TransactionManager
	itemRepo           repository.ItemRepository
	authorRepo         repository.AuthorRepository
	classificationRepo repository.ClassificationRepository
	logger             *slog.Logger

	mu             sync.RWMutex
	storedCount    map[string]int
	availableCount map[string]int
	barcodes       map[string]struct{}
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	ItemRepo           repository.ItemRepository
	AuthorRepo         repository.AuthorRepository
	ClassificationRepo repository.ClassificationRepository
	Logger             *slog.Logger
}

// NewCatalogService is the constructor for catalogService. It receives all dependencies as interfaces.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:          params.TxManager,
		itemRepo:           params.ItemRepo,
		authorRepo:         params.AuthorRepo,
		classificationRepo: params.ClassificationRepo,
		logger:             params.Logger,
		storedCount:        make(map[string]int),
		availableCount:     make(map[string]int),
		barcodes:           make(map[string]struct{}),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFilm registers a new film copy in the catalog.
func (srv *catalogService) CreateFilm(ctx context.Context, input *usecase.CreateFilmInput) (*entity.Item, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("create film input is nil")
	}
	if input.AgeRating < 0 || input.AgeRating > maxAgeRating {
		return nil, errors.Wrap(domainerrors.ErrInvalidAgeRating, "create film")
	}

	item := &entity.Item{
		Title:             input.Title,
		Type:              entity.ItemTypeFilm,
		Barcode:           input.Barcode,
		AuthorID:          input.AuthorID,
		ClassificationID:  input.ClassificationID,
		AllowedRentalDays: input.AllowedRentalDays,
		Kind:              entity.KindFilm,
		Film: &entity.Film{
			AgeRating:           input.AgeRating,
			CountryOfProduction: input.CountryOfProduction,
			ListOfActors:        input.ListOfActors,
		},
	}

	return srv.createItem(ctx, item)
}

// CreateLiterature registers a new printed copy of any literature type.
func (srv *catalogService) CreateLiterature(ctx context.Context, input *usecase.CreateLiteratureInput) (*entity.Item, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("create literature input is nil")
	}
	if !input.Type.IsValid() || input.Type == entity.ItemTypeFilm {
		return nil, errors.Wrap(domainerrors.ErrInvalidType, "create literature")
	}
	if input.ISBN == "" || len(input.ISBN) > maxISBNLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidISBN, "create literature")
	}

	item := &entity.Item{
		Title:             input.Title,
		Type:              input.Type,
		Barcode:           input.Barcode,
		AuthorID:          input.AuthorID,
		ClassificationID:  input.ClassificationID,
		AllowedRentalDays: input.AllowedRentalDays,
		Kind:              entity.KindLiterature,
		Literature: &entity.Literature{
			ISBN: input.ISBN,
		},
	}

	return srv.createItem(ctx, item)
}

// createItem holds the shared registration path: validation, reference
// resolution, barcode reservation, the insert, and the index increments.
func (srv *catalogService) createItem(ctx context.Context, item *entity.Item) (*entity.Item, error) {
	srv.log(ctx).Info("Registering catalog item", slog.String("title", item.Title), slog.Any("type", item.Type))

	if item.Title == "" || len(item.Title) > maxTitleLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidTitle, "create item")
	}
	if item.Barcode == "" || len(item.Barcode) > maxBarcodeLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidBarcode, "create item")
	}

	if item.AllowedRentalDays == 0 {
		item.AllowedRentalDays = item.Type.DefaultRentalDays()
	}
	item.Available = item.IsRentable()

	if err := srv.resolveReferences(ctx, item); err != nil {
		return nil, err
	}

	// Reserve the barcode before touching the store so a concurrent create
	// with the same barcode fails fast.
	if err := srv.reserveBarcode(item.Barcode); err != nil {
		return nil, errors.Wrap(err, "create item")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ItemRepo().Create(ctx, item)
	})
	if err != nil {
		srv.releaseBarcode(item.Barcode)
		srv.log(ctx).Error("Failed to execute item create transaction", slog.String("title", item.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute item create transaction")
	}

	srv.mu.Lock()
	srv.storedCount[item.Title]++
	if item.Available {
		srv.availableCount[item.Title]++
	}
	srv.mu.Unlock()

	srv.log(ctx).Debug("Catalog item registered", slog.Any("itemID", item.ID), slog.String("title", item.Title))

	return item, nil
}

// resolveReferences checks the author and classification references and fills
// the denormalized names on the item.
func (srv *catalogService) resolveReferences(ctx context.Context, item *entity.Item) error {
	if item.AuthorID > 0 {
		author, err := srv.authorRepo.FindByID(ctx, item.AuthorID)
		if err != nil {
			if errors.Is(err, repository.ErrAuthorNotFound) {
				return domainerrors.ErrEntityNotFound.WrapMessage("author does not exist")
			}

			return errors.Wrap(err, "failed to resolve author reference")
		}
		item.AuthorName = author.Name
	}

	if item.ClassificationID > 0 {
		classification, err := srv.classificationRepo.FindByID(ctx, item.ClassificationID)
		if err != nil {
			if errors.Is(err, repository.ErrClassificationNotFound) {
				return domainerrors.ErrEntityNotFound.WrapMessage("classification does not exist")
			}

			return errors.Wrap(err, "failed to resolve classification reference")
		}
		item.ClassificationName = classification.Name
	}

	return nil
}

func (srv *catalogService) reserveBarcode(barcode string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, taken := srv.barcodes[barcode]; taken {
		return domainerrors.ErrDuplicateBarcode
	}
	srv.barcodes[barcode] = struct{}{}

	return nil
}

func (srv *catalogService) releaseBarcode(barcode string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.barcodes, barcode)
}

// GetItemByID retrieves a single non-deleted item.
func (srv *catalogService) GetItemByID(ctx context.Context, id int64) (*entity.Item, error) {
	if id <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "get item by id")
	}

	item, err := srv.itemRepo.FindByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("item does not exist")
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return item, nil
}

// GetItemsByTitle retrieves all non-deleted copies sharing a title.
func (srv *catalogService) GetItemsByTitle(ctx context.Context, title string) ([]*entity.Item, error) {
	if title == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidTitle, "get items by title")
	}

	items, err := srv.itemRepo.FindByTitle(ctx, title)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by title")
	}

	return items, nil
}

// GetItemsByISBN retrieves all non-deleted literature copies with the given ISBN.
func (srv *catalogService) GetItemsByISBN(ctx context.Context, isbn string) ([]*entity.Item, error) {
	if isbn == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidISBN, "get items by isbn")
	}

	items, err := srv.itemRepo.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by isbn")
	}

	return items, nil
}

// GetItemsByAuthor retrieves all non-deleted items referencing an author.
func (srv *catalogService) GetItemsByAuthor(ctx context.Context, authorID int64) ([]*entity.Item, error) {
	if authorID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "get items by author")
	}

	items, err := srv.itemRepo.FindByAuthor(ctx, authorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by author")
	}

	return items, nil
}

// GetItemsByClassification retrieves all non-deleted items referencing a classification.
func (srv *catalogService) GetItemsByClassification(ctx context.Context, classificationID int64) ([]*entity.Item, error) {
	if classificationID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "get items by classification")
	}

	items, err := srv.itemRepo.FindByClassification(ctx, classificationID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find items by classification")
	}

	return items, nil
}

// UpdateItem applies the non-zero fields of the input to an existing item and
// reconciles the title and barcode indexes when those change.
func (srv *catalogService) UpdateItem(ctx context.Context, input *usecase.UpdateItemInput) (*entity.Item, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("update item input is nil")
	}
	if input.ID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "update item")
	}

	item, err := srv.GetItemByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	oldTitle := item.Title
	oldBarcode := item.Barcode

	if input.Title != "" {
		if len(input.Title) > maxTitleLength {
			return nil, errors.Wrap(domainerrors.ErrInvalidTitle, "update item")
		}
		item.Title = input.Title
	}
	if input.Barcode != "" && input.Barcode != oldBarcode {
		if len(input.Barcode) > maxBarcodeLength {
			return nil, errors.Wrap(domainerrors.ErrInvalidBarcode, "update item")
		}
		if err := srv.reserveBarcode(input.Barcode); err != nil {
			return nil, errors.Wrap(err, "update item")
		}
		item.Barcode = input.Barcode
	}
	if input.AllowedRentalDays > 0 {
		item.AllowedRentalDays = input.AllowedRentalDays
	}

	if err := srv.itemRepo.Update(ctx, item); err != nil {
		if item.Barcode != oldBarcode {
			srv.releaseBarcode(item.Barcode)
		}
		srv.log(ctx).Error("Failed to update item", slog.Any("itemID", item.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update item")
	}

	srv.mu.Lock()
	if item.Barcode != oldBarcode {
		delete(srv.barcodes, oldBarcode)
	}
	if item.Title != oldTitle {
		srv.decrementLocked(srv.storedCount, oldTitle)
		srv.storedCount[item.Title]++
		if item.Available {
			srv.decrementLocked(srv.availableCount, oldTitle)
			srv.availableCount[item.Title]++
		}
	}
	srv.mu.Unlock()

	return item, nil
}

// DeleteItem soft-deletes an item. The barcode stays reserved; the title
// counts drop.
func (srv *catalogService) DeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.Wrap(domainerrors.ErrInvalidID, "delete item")
	}

	item, err := srv.itemRepo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("item does not exist")
		}

		return errors.Wrap(err, "failed to find item for delete")
	}
	if item.Deleted {
		// Repeated soft delete is a no-op.
		return nil
	}

	if err := srv.itemRepo.SetDeleted(ctx, id, true); err != nil {
		return errors.Wrap(err, "failed to soft-delete item")
	}

	srv.mu.Lock()
	srv.decrementLocked(srv.storedCount, item.Title)
	if item.Available {
		srv.decrementLocked(srv.availableCount, item.Title)
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Item soft-deleted", slog.Any("itemID", id), slog.String("title", item.Title))

	return nil
}

// RecoverItem reverses a soft delete and restores the title counts.
func (srv *catalogService) RecoverItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.Wrap(domainerrors.ErrInvalidID, "recover item")
	}

	item, err := srv.itemRepo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("item does not exist")
		}

		return errors.Wrap(err, "failed to find item for recover")
	}
	if !item.Deleted {
		return nil
	}

	if err := srv.itemRepo.SetDeleted(ctx, id, false); err != nil {
		return errors.Wrap(err, "failed to recover item")
	}

	srv.mu.Lock()
	srv.storedCount[item.Title]++
	if item.Available {
		srv.availableCount[item.Title]++
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Item recovered", slog.Any("itemID", id), slog.String("title", item.Title))

	return nil
}

// HardDeleteItem permanently removes an item and releases its barcode.
func (srv *catalogService) HardDeleteItem(ctx context.Context, id int64) error {
	if id <= 0 {
		return errors.Wrap(domainerrors.ErrInvalidID, "hard delete item")
	}

	item, err := srv.itemRepo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return domainerrors.ErrEntityNotFound.WrapMessage("item does not exist")
		}

		return errors.Wrap(err, "failed to find item for hard delete")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ItemRepo().HardDelete(ctx, id)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute item hard delete transaction", slog.Any("itemID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute item hard delete transaction")
	}

	srv.mu.Lock()
	delete(srv.barcodes, item.Barcode)
	if !item.Deleted {
		srv.decrementLocked(srv.storedCount, item.Title)
		if item.Available {
			srv.decrementLocked(srv.availableCount, item.Title)
		}
	}
	srv.mu.Unlock()

	srv.log(ctx).Info("Item hard-deleted", slog.Any("itemID", id), slog.String("title", item.Title))

	return nil
}

// FindRentableCopy returns the requested copy when it is rentable and on the
// shelf, or falls back to the first available copy of the same title.
func (srv *catalogService) FindRentableCopy(ctx context.Context, itemID int64) (*entity.Item, error) {
	item, err := srv.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if !item.IsRentable() {
		return nil, domainerrors.ErrItemNotRentable.WrapMessage(item.Type.String())
	}

	if item.Available {
		return item, nil
	}

	substitute, err := srv.itemRepo.FindAvailableByTitle(ctx, item.Title)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, domainerrors.ErrNoAvailableCopy.WrapMessage(item.Title)
		}

		return nil, errors.Wrap(err, "failed to find available copy by title")
	}

	if !substitute.IsRentable() {
		return nil, domainerrors.ErrNoAvailableCopy.WrapMessage(item.Title)
	}

	return substitute, nil
}

// SetAvailability adjusts the availability index for one title. The caller
// has already persisted the item row change; every availability transition
// outside of catalog writes funnels through here.
func (srv *catalogService) SetAvailability(title string, available bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if available {
		srv.availableCount[title]++
	} else {
		srv.decrementLocked(srv.availableCount, title)
	}
}

// StoredCount reports how many non-purged, non-deleted copies of a title exist.
func (srv *catalogService) StoredCount(title string) int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.storedCount[title]
}

// AvailableCount reports how many copies of a title are on the shelf.
func (srv *catalogService) AvailableCount(title string) int {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.availableCount[title]
}

// CreateAuthor registers an author reference.
func (srv *catalogService) CreateAuthor(ctx context.Context, input *usecase.CreateAuthorInput) (*entity.Author, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("create author input is nil")
	}
	if input.Name == "" || len(input.Name) > maxNameLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidName, "create author")
	}

	author := &entity.Author{Name: input.Name}
	if err := srv.authorRepo.Create(ctx, author); err != nil {
		return nil, errors.Wrap(err, "failed to create author")
	}

	return author, nil
}

// ListAuthors retrieves all author references.
func (srv *catalogService) ListAuthors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := srv.authorRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list authors")
	}

	return authors, nil
}

// CreateClassification registers a classification reference.
func (srv *catalogService) CreateClassification(ctx context.Context, input *usecase.CreateClassificationInput) (*entity.Classification, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("create classification input is nil")
	}
	if input.Name == "" || len(input.Name) > maxNameLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidName, "create classification")
	}

	classification := &entity.Classification{Name: input.Name, Description: input.Description}
	if err := srv.classificationRepo.Create(ctx, classification); err != nil {
		return nil, errors.Wrap(err, "failed to create classification")
	}

	return classification, nil
}

// ListClassifications retrieves all classification references.
func (srv *catalogService) ListClassifications(ctx context.Context) ([]*entity.Classification, error) {
	classifications, err := srv.classificationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classifications")
	}

	return classifications, nil
}

// Reset rebuilds the in-memory indexes from the store. Called once on start
// and available to operators after manual store surgery.
func (srv *catalogService) Reset(ctx context.Context) error {
	items, err := srv.itemRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load items for index rebuild")
	}

	stored := make(map[string]int)
	available := make(map[string]int)
	barcodes := make(map[string]struct{}, len(items))

	for _, item := range items {
		barcodes[item.Barcode] = struct{}{}
		if item.Deleted {
			continue
		}
		stored[item.Title]++
		if item.Available {
			available[item.Title]++
		}
	}

	srv.mu.Lock()
	srv.storedCount = stored
	srv.availableCount = available
	srv.barcodes = barcodes
	srv.mu.Unlock()

	srv.log(ctx).Info("Catalog indexes rebuilt", slog.Int("items", len(items)))

	return nil
}

// decrementLocked lowers a counter without going below zero. Callers hold mu.
func (srv *catalogService) decrementLocked(counts map[string]int, title string) {
	if counts[title] <= 1 {
		delete(counts, title)

		return
	}
	counts[title]--
}

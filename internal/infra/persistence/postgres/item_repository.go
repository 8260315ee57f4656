package postgres

import (
	"context"

	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	"librarium/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// itemRepository implements the repository.ItemRepository interface.
type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository is the constructor for itemRepository.
func NewItemRepository(db *gorm.DB) repository.ItemRepository {
	return &itemRepository{
		db: db,
	}
}

func (repo *itemRepository) withAssociations(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Film").
		Preload("Literature").
		Preload("Author").
		Preload("Classification")
}

// FindByID retrieves a single item by id, excluding soft-deleted rows unless asked.
func (repo *itemRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*entity.Item, error) {
	var itemM model.ItemModel

	query := repo.withAssociations(ctx).Where("item_id = ?", id)
	if !includeDeleted {
		query = query.Where("deleted = ?", false)
	}

	if err := query.First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return toItemDomain(&itemM), nil
}

// FindByTitle retrieves all non-deleted copies sharing a title, in primary-key order.
func (repo *itemRepository) FindByTitle(ctx context.Context, title string) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.withAssociations(ctx).
		Where("title = ? AND deleted = ?", title, false).
		Order("item_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by title")
	}

	return toItemDomainSlice(itemModels), nil
}

// FindByISBN retrieves all non-deleted literature items with the given ISBN.
func (repo *itemRepository) FindByISBN(ctx context.Context, isbn string) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.withAssociations(ctx).
		Joins("JOIN literature ON literature.literature_id = items.item_id").
		Where("literature.isbn = ? AND items.deleted = ?", isbn, false).
		Order("items.item_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by isbn")
	}

	return toItemDomainSlice(itemModels), nil
}

// FindByAuthor retrieves all non-deleted items referencing the given author.
func (repo *itemRepository) FindByAuthor(ctx context.Context, authorID int64) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.withAssociations(ctx).
		Where("author_id = ? AND deleted = ?", authorID, false).
		Order("item_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by author")
	}

	return toItemDomainSlice(itemModels), nil
}

// FindByClassification retrieves all non-deleted items referencing the given classification.
func (repo *itemRepository) FindByClassification(ctx context.Context, classificationID int64) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.withAssociations(ctx).
		Where("classification_id = ? AND deleted = ?", classificationID, false).
		Order("item_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find items by classification")
	}

	return toItemDomainSlice(itemModels), nil
}

// FindAvailableByTitle returns the first available copy of the title in
// primary-key order. The ordering is the only tie-break guarantee.
func (repo *itemRepository) FindAvailableByTitle(ctx context.Context, title string) (*entity.Item, error) {
	var itemM model.ItemModel

	if err := repo.withAssociations(ctx).
		Where("title = ? AND available = ? AND deleted = ?", title, true, false).
		Order("item_id").
		First(&itemM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find available copy by title")
	}

	return toItemDomain(&itemM), nil
}

// FindAll retrieves every non-purged item, including soft-deleted rows.
func (repo *itemRepository) FindAll(ctx context.Context) ([]*entity.Item, error) {
	var itemModels []*model.ItemModel

	if err := repo.withAssociations(ctx).
		Order("item_id").
		Find(&itemModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all items")
	}

	return toItemDomainSlice(itemModels), nil
}

// Create persists a new item; GORM inserts the film/literature child row in
// the same call through the association.
func (repo *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityNotFound.WrapMessage("invalid author or classification reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required item fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create item")
	}

	item.ID = itemM.ID

	return nil
}

// Update persists all mutable columns of an existing item and its child row.
func (repo *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	itemM := fromItemDomain(item)

	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("item_id = ?", item.ID).
		Updates(map[string]any{
			"title":               itemM.Title,
			"item_type":           itemM.ItemType,
			"barcode":             itemM.Barcode,
			"author_id":           itemM.AuthorID,
			"classification_id":   itemM.ClassificationID,
			"allowed_rental_days": itemM.AllowedRentalDays,
			"available":           itemM.Available,
			"deleted":             itemM.Deleted,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	switch item.Kind {
	case entity.KindFilm:
		if itemM.Film != nil {
			if err := repo.db.WithContext(ctx).Save(itemM.Film).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to update film fields")
			}
		}
	case entity.KindLiterature:
		if itemM.Literature != nil {
			if err := repo.db.WithContext(ctx).Save(itemM.Literature).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to update literature fields")
			}
		}
	}

	return nil
}

// UpdateAvailability flips the available flag of one row.
func (repo *itemRepository) UpdateAvailability(ctx context.Context, id int64, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("item_id = ?", id).
		Update("available", available)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update item availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// SetDeleted toggles the soft-delete flag of one row.
func (repo *itemRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ItemModel{}).
		Where("item_id = ?", id).
		Update("deleted", deleted)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set item deleted flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// HardDelete removes the item row and its child row permanently.
func (repo *itemRepository) HardDelete(ctx context.Context, id int64) error {
	// Child rows first; the parent row carries the generated key.
	if err := repo.db.WithContext(ctx).
		Where("film_id = ?", id).
		Delete(&model.FilmModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete film row")
	}
	if err := repo.db.WithContext(ctx).
		Where("literature_id = ?", id).
		Delete(&model.LiteratureModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete literature row")
	}

	result := repo.db.WithContext(ctx).
		Where("item_id = ?", id).
		Delete(&model.ItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrItemNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toItemDomain converts a GORM ItemModel to a domain Item entity.
func toItemDomain(data *model.ItemModel) *entity.Item {
	if data == nil {
		return nil
	}

	item := &entity.Item{
		ID:                data.ID,
		Title:             data.Title,
		Type:              entity.ItemType(data.ItemType),
		Barcode:           data.Barcode,
		AuthorID:          data.AuthorID,
		ClassificationID:  data.ClassificationID,
		AllowedRentalDays: data.AllowedRentalDays,
		Available:         data.Available,
		Deleted:           data.Deleted,
	}

	if data.Author != nil {
		item.AuthorName = data.Author.Name
	}
	if data.Classification != nil {
		item.ClassificationName = data.Classification.Name
	}

	switch {
	case data.Film != nil:
		item.Kind = entity.KindFilm
		item.Film = &entity.Film{
			AgeRating:           data.Film.AgeRating,
			CountryOfProduction: data.Film.CountryOfProduction,
			ListOfActors:        data.Film.Actors,
		}
	case data.Literature != nil:
		item.Kind = entity.KindLiterature
		item.Literature = &entity.Literature{
			ISBN: data.Literature.ISBN,
		}
	}

	return item
}

func toItemDomainSlice(data []*model.ItemModel) []*entity.Item {
	items := make([]*entity.Item, 0, len(data))
	for _, itemM := range data {
		items = append(items, toItemDomain(itemM))
	}

	return items
}

// fromItemDomain converts a domain Item entity to a GORM ItemModel for persistence.
func fromItemDomain(data *entity.Item) *model.ItemModel {
	if data == nil {
		return nil
	}

	itemM := &model.ItemModel{
		ID:                data.ID,
		Title:             data.Title,
		ItemType:          data.Type.String(),
		Barcode:           data.Barcode,
		AuthorID:          data.AuthorID,
		ClassificationID:  data.ClassificationID,
		AllowedRentalDays: data.AllowedRentalDays,
		Available:         data.Available,
		Deleted:           data.Deleted,
	}

	switch data.Kind {
	case entity.KindFilm:
		if data.Film != nil {
			itemM.Film = &model.FilmModel{
				ItemID:              data.ID,
				AgeRating:           data.Film.AgeRating,
				CountryOfProduction: data.Film.CountryOfProduction,
				Actors:              data.Film.ListOfActors,
			}
		}
	case entity.KindLiterature:
		if data.Literature != nil {
			itemM.Literature = &model.LiteratureModel{
				ItemID: data.ID,
				ISBN:   data.Literature.ISBN,
			}
		}
	}

	return itemM
}

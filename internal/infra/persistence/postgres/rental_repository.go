package postgres

import (
	"context"
	"time"

	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	"librarium/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rentalRepository implements the repository.RentalRepository interface.
type rentalRepository struct {
	db *gorm.DB
}

// NewRentalRepository is the constructor for rentalRepository.
func NewRentalRepository(db *gorm.DB) repository.RentalRepository {
	return &rentalRepository{
		db: db,
	}
}

// FindByID retrieves a single rental by id, soft-deleted or not.
func (repo *rentalRepository) FindByID(ctx context.Context, id int64) (*entity.Rental, error) {
	var rentalM model.RentalModel

	if err := repo.db.WithContext(ctx).
		Where("rental_id = ?", id).
		First(&rentalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find rental by id")
	}

	return toRentalDomain(&rentalM), nil
}

// FindByUser retrieves all rentals of one user, newest first.
func (repo *rentalRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Rental, error) {
	var rentalModels []*model.RentalModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("rental_date DESC, rental_id DESC").
		Find(&rentalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rentals by user")
	}

	return toRentalDomainSlice(rentalModels), nil
}

// FindActiveByItem retrieves the active rental referencing the given item.
func (repo *rentalRepository) FindActiveByItem(ctx context.Context, itemID int64) (*entity.Rental, error) {
	var rentalM model.RentalModel

	if err := repo.db.WithContext(ctx).
		Where("item_id = ? AND rental_return_date IS NULL", itemID).
		First(&rentalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRentalNotFound
		}

		return nil, errors.Wrap(err, "failed to find active rental by item")
	}

	return toRentalDomain(&rentalM), nil
}

// FindOverdue retrieves all active rentals whose due date lies before asOf.
func (repo *rentalRepository) FindOverdue(ctx context.Context, asOf time.Time) ([]*entity.Rental, error) {
	var rentalModels []*model.RentalModel

	if err := repo.db.WithContext(ctx).
		Where("rental_due_date < ? AND rental_return_date IS NULL", asOf).
		Order("rental_due_date").
		Find(&rentalModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find overdue rentals")
	}

	return toRentalDomainSlice(rentalModels), nil
}

// Create persists a new rental and assigns the generated id back onto the entity.
func (repo *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	rentalM := fromRentalDomain(rental)

	if err := repo.db.WithContext(ctx).Create(rentalM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrEntityNotFound.WrapMessage("invalid user or item reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rental")
	}

	rental.ID = rentalM.ID

	return nil
}

// Update persists only the mutable columns: due date, return date and late
// fee. Identity, snapshot and receipt columns never change after creation.
func (repo *rentalRepository) Update(ctx context.Context, rental *entity.Rental) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentalModel{}).
		Where("rental_id = ?", rental.ID).
		Updates(map[string]any{
			"rental_due_date":    rental.DueDate,
			"rental_return_date": rental.ReturnDate,
			"late_fee":           rental.LateFee,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rental")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRentalNotFound
	}

	return nil
}

// SetDeleted toggles the soft-delete flag of one row.
func (repo *rentalRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RentalModel{}).
		Where("rental_id = ?", id).
		Update("deleted", deleted)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set rental deleted flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRentalNotFound
	}

	return nil
}

// HardDelete removes the rental row permanently.
func (repo *rentalRepository) HardDelete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("rental_id = ?", id).
		Delete(&model.RentalModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete rental")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRentalNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRentalDomain converts a GORM RentalModel to a domain Rental entity.
func toRentalDomain(data *model.RentalModel) *entity.Rental {
	if data == nil {
		return nil
	}

	return &entity.Rental{
		ID:         data.ID,
		UserID:     data.UserID,
		ItemID:     data.ItemID,
		Username:   data.Username,
		ItemTitle:  data.ItemTitle,
		ItemType:   entity.ItemType(data.ItemType),
		RentalDate: data.RentalDate,
		DueDate:    data.DueDate,
		ReturnDate: data.ReturnDate,
		LateFee:    data.LateFee,
		Receipt:    data.Receipt,
		ReceiptRef: data.ReceiptRef,
		Deleted:    data.Deleted,
	}
}

func toRentalDomainSlice(data []*model.RentalModel) []*entity.Rental {
	rentals := make([]*entity.Rental, 0, len(data))
	for _, rentalM := range data {
		rentals = append(rentals, toRentalDomain(rentalM))
	}

	return rentals
}

// fromRentalDomain converts a domain Rental entity to a GORM RentalModel for persistence.
func fromRentalDomain(data *entity.Rental) *model.RentalModel {
	if data == nil {
		return nil
	}

	return &model.RentalModel{
		ID:         data.ID,
		UserID:     data.UserID,
		ItemID:     data.ItemID,
		Username:   data.Username,
		ItemTitle:  data.ItemTitle,
		ItemType:   data.ItemType.String(),
		RentalDate: data.RentalDate,
		DueDate:    data.DueDate,
		ReturnDate: data.ReturnDate,
		LateFee:    data.LateFee,
		Receipt:    data.Receipt,
		ReceiptRef: data.ReceiptRef,
		Deleted:    data.Deleted,
	}
}

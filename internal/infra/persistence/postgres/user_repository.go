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

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by id, excluding soft-deleted rows unless asked.
func (repo *userRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*entity.User, error) {
	var userM model.UserModel

	query := repo.db.WithContext(ctx).Where("user_id = ?", id)
	if !includeDeleted {
		query = query.Where("deleted = ?", false)
	}

	if err := query.First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByUsername retrieves a single user by username, soft-deleted or not.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindAll retrieves every non-purged user, including soft-deleted rows.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("user_id").
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user and assigns the generated id back onto the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUsername.WrapMessage("username or email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID

	return nil
}

// Update persists all mutable fields, including counters and late fee.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", user.ID).
		Updates(map[string]any{
			"username":        user.Username,
			"password":        user.PasswordHash,
			"email":           user.Email,
			"user_type":       user.Type.String(),
			"allowed_rentals": user.AllowedRentals,
			"current_rentals": user.CurrentRentals,
			"late_fee":        user.LateFee,
			"deleted":         user.Deleted,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrDuplicateUsername.WrapMessage("username or email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AdjustRentalCount atomically adds delta to a user's current rental count,
// enforcing the quota on increments in the row update itself.
func (repo *userRepository) AdjustRentalCount(ctx context.Context, id int64, delta int) error {
	query := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id)
	if delta > 0 {
		query = query.Where("current_rentals + ? <= allowed_rentals", delta)
	}

	result := query.Update("current_rentals", gorm.Expr("GREATEST(current_rentals + ?, 0)", delta))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to adjust rental count")
	}
	if result.RowsAffected == 0 {
		if delta > 0 {
			// Tell a missing row apart from a refused increment.
			var rows int64
			if err := repo.db.WithContext(ctx).
				Model(&model.UserModel{}).
				Where("user_id = ?", id).
				Count(&rows).Error; err != nil {
				return domainerrors.NewDatabaseExecuteError(err, "failed to adjust rental count")
			}
			if rows > 0 {
				return repository.ErrRentalLimitReached
			}
		}

		return repository.ErrUserNotFound
	}

	return nil
}

// SetDeleted toggles the soft-delete flag of one row.
func (repo *userRepository) SetDeleted(ctx context.Context, id int64, deleted bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_id = ?", id).
		Update("deleted", deleted)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to set user deleted flag")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// HardDelete removes the user row permanently.
func (repo *userRepository) HardDelete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:             data.ID,
		Username:       data.Username,
		PasswordHash:   data.Password,
		Email:          data.Email,
		Type:           entity.UserType(data.UserType),
		AllowedRentals: data.AllowedRentals,
		CurrentRentals: data.CurrentRentals,
		LateFee:        data.LateFee,
		Deleted:        data.Deleted,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:             data.ID,
		Username:       data.Username,
		Password:       data.PasswordHash,
		Email:          data.Email,
		UserType:       data.Type.String(),
		AllowedRentals: data.AllowedRentals,
		CurrentRentals: data.CurrentRentals,
		LateFee:        data.LateFee,
		Deleted:        data.Deleted,
	}
}

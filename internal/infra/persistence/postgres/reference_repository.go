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

// authorRepository implements the repository.AuthorRepository interface.
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository is the constructor for authorRepository.
func NewAuthorRepository(db *gorm.DB) repository.AuthorRepository {
	return &authorRepository{db: db}
}

// FindByID retrieves a single author by id.
func (repo *authorRepository) FindByID(ctx context.Context, id int64) (*entity.Author, error) {
	var authorM model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Where("author_id = ?", id).
		First(&authorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthorNotFound
		}

		return nil, errors.Wrap(err, "failed to find author by id")
	}

	return &entity.Author{ID: authorM.ID, Name: authorM.Name}, nil
}

// FindAll retrieves all authors ordered by name.
func (repo *authorRepository) FindAll(ctx context.Context) ([]*entity.Author, error) {
	var authorModels []*model.AuthorModel

	if err := repo.db.WithContext(ctx).
		Order("name").
		Find(&authorModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all authors")
	}

	authors := make([]*entity.Author, 0, len(authorModels))
	for _, authorM := range authorModels {
		authors = append(authors, &entity.Author{ID: authorM.ID, Name: authorM.Name})
	}

	return authors, nil
}

// Create persists a new author.
func (repo *authorRepository) Create(ctx context.Context, author *entity.Author) error {
	authorM := &model.AuthorModel{Name: author.Name}

	if err := repo.db.WithContext(ctx).Create(authorM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create author")
	}

	author.ID = authorM.ID

	return nil
}

// classificationRepository implements the repository.ClassificationRepository interface.
type classificationRepository struct {
	db *gorm.DB
}

// NewClassificationRepository is the constructor for classificationRepository.
func NewClassificationRepository(db *gorm.DB) repository.ClassificationRepository {
	return &classificationRepository{db: db}
}

// FindByID retrieves a single classification by id.
func (repo *classificationRepository) FindByID(ctx context.Context, id int64) (*entity.Classification, error) {
	var classificationM model.ClassificationModel

	if err := repo.db.WithContext(ctx).
		Where("classification_id = ?", id).
		First(&classificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find classification by id")
	}

	return &entity.Classification{
		ID:          classificationM.ID,
		Name:        classificationM.Name,
		Description: classificationM.Description,
	}, nil
}

// FindAll retrieves all classifications ordered by name.
func (repo *classificationRepository) FindAll(ctx context.Context) ([]*entity.Classification, error) {
	var classificationModels []*model.ClassificationModel

	if err := repo.db.WithContext(ctx).
		Order("name").
		Find(&classificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all classifications")
	}

	classifications := make([]*entity.Classification, 0, len(classificationModels))
	for _, classificationM := range classificationModels {
		classifications = append(classifications, &entity.Classification{
			ID:          classificationM.ID,
			Name:        classificationM.Name,
			Description: classificationM.Description,
		})
	}

	return classifications, nil
}

// Create persists a new classification.
func (repo *classificationRepository) Create(ctx context.Context, classification *entity.Classification) error {
	classificationM := &model.ClassificationModel{
		Name:        classification.Name,
		Description: classification.Description,
	}

	if err := repo.db.WithContext(ctx).Create(classificationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create classification")
	}

	classification.ID = classificationM.ID

	return nil
}

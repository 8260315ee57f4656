package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	mockRepo "librarium/internal/mocks/repository"
	"librarium/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	t                  *testing.T
	service            usecase.CatalogUsecase
	txManager          *mockRepo.MockTransactionManager
	itemRepo           *mockRepo.MockItemRepository
	authorRepo         *mockRepo.MockAuthorRepository
	classificationRepo *mockRepo.MockClassificationRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	itemRepo := mockRepo.NewMockItemRepository(t)
	authorRepo := mockRepo.NewMockAuthorRepository(t)
	classificationRepo := mockRepo.NewMockClassificationRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		TxManager:          txManager,
		ItemRepo:           itemRepo,
		AuthorRepo:         authorRepo,
		ClassificationRepo: classificationRepo,
		Logger:             logger,
	})

	return catalogServiceFixtures{
		t:                  t,
		service:            service,
		txManager:          txManager,
		itemRepo:           itemRepo,
		authorRepo:         authorRepo,
		classificationRepo: classificationRepo,
	}
}

// onExecute arranges the next transaction to run its function against a
// repository factory prepared by setup, then report returnErr.
func (fx catalogServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)

			_ = fn(mockFactory)
		}).
		Return(returnErr).
		Once()
}

// seedCatalog rebuilds the indexes from the given items, as the startup
// warm-up does.
func (fx catalogServiceFixtures) seedCatalog(ctx context.Context, items []*entity.Item) {
	fx.itemRepo.EXPECT().FindAll(ctx).Return(items, nil).Once()
	require.NoError(fx.t, fx.service.Reset(ctx))
}

func TestCatalogService_CreateFilm_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateFilmInput{
		Title:               "Alien",
		Barcode:             "FILM-0001",
		AuthorID:            7,
		AgeRating:           16,
		CountryOfProduction: "UK",
		ListOfActors:        "Sigourney Weaver, Tom Skerritt",
	}

	fx.authorRepo.EXPECT().FindByID(ctx, int64(7)).
		Return(&entity.Author{ID: 7, Name: "Ridley Scott"}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockItemRepo := mockRepo.NewMockItemRepository(t)

		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		mockItemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).
			Run(func(ctx context.Context, item *entity.Item) {
				item.ID = 1
			}).
			Return(nil)
	})

	item, err := fx.service.CreateFilm(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, entity.ItemTypeFilm, item.Type)
	assert.Equal(t, 7, item.AllowedRentalDays)
	assert.True(t, item.Available)
	assert.Equal(t, "Ridley Scott", item.AuthorName)
	assert.Equal(t, entity.KindFilm, item.Kind)
	require.NotNil(t, item.Film)
	assert.Equal(t, 16, item.Film.AgeRating)

	assert.Equal(t, 1, fx.service.StoredCount("Alien"))
	assert.Equal(t, 1, fx.service.AvailableCount("Alien"))
}

func TestCatalogService_CreateLiterature_ReferenceNeverAvailable(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateLiteratureInput{
		Title:   "Encyclopaedia Britannica",
		Type:    entity.ItemTypeReferenceLiterature,
		Barcode: "REF-0001",
		ISBN:    "978-0-85229-961-6",
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockItemRepo := mockRepo.NewMockItemRepository(t)

		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		mockItemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).
			Run(func(ctx context.Context, item *entity.Item) {
				item.ID = 2
			}).
			Return(nil)
	})

	item, err := fx.service.CreateLiterature(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, 0, item.AllowedRentalDays)
	assert.False(t, item.Available)
	assert.False(t, item.IsRentable())

	// Stored but never on the rentable shelf.
	assert.Equal(t, 1, fx.service.StoredCount("Encyclopaedia Britannica"))
	assert.Equal(t, 0, fx.service.AvailableCount("Encyclopaedia Britannica"))
}

func TestCatalogService_CreateLiterature_Validation(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	_, err := fx.service.CreateLiterature(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNullEntity)

	_, err = fx.service.CreateLiterature(ctx, &usecase.CreateLiteratureInput{
		Title:   "Dune",
		Type:    entity.ItemTypeFilm,
		Barcode: "LIT-0001",
		ISBN:    "978-0-441-17271-9",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidType)

	_, err = fx.service.CreateLiterature(ctx, &usecase.CreateLiteratureInput{
		Title:   "Dune",
		Type:    entity.ItemTypeOtherBooks,
		Barcode: "LIT-0001",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidISBN)

	_, err = fx.service.CreateLiterature(ctx, &usecase.CreateLiteratureInput{
		Type:    entity.ItemTypeOtherBooks,
		Barcode: "LIT-0001",
		ISBN:    "978-0-441-17271-9",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTitle)
}

func TestCatalogService_CreateFilm_InvalidAgeRating(t *testing.T) {
	fx := createTestCatalogService(t)

	_, err := fx.service.CreateFilm(context.Background(), &usecase.CreateFilmInput{
		Title:     "Alien",
		Barcode:   "FILM-0001",
		AgeRating: 150,
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidAgeRating)
}

func TestCatalogService_CreateFilm_DuplicateBarcode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockItemRepo := mockRepo.NewMockItemRepository(t)

		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		mockItemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	})

	_, err := fx.service.CreateFilm(ctx, &usecase.CreateFilmInput{Title: "Alien", Barcode: "FILM-0001"})
	require.NoError(t, err)

	// Same barcode again must fail fast, before any store access.
	_, err = fx.service.CreateFilm(ctx, &usecase.CreateFilmInput{Title: "Aliens", Barcode: "FILM-0001"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBarcode)
}

func TestCatalogService_CreateFilm_StoreFailureReleasesBarcode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateFilmInput{Title: "Alien", Barcode: "FILM-0001"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset")).
		Once()

	_, err := fx.service.CreateFilm(ctx, input)
	require.Error(t, err)
	assert.Equal(t, 0, fx.service.StoredCount("Alien"))

	// The failed create must not leave the barcode reserved.
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockItemRepo := mockRepo.NewMockItemRepository(t)

		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		mockItemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	})

	_, err = fx.service.CreateFilm(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, fx.service.StoredCount("Alien"))
}

func TestCatalogService_CreateFilm_AuthorMissing(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.authorRepo.EXPECT().FindByID(ctx, int64(99)).
		Return(nil, repository.ErrAuthorNotFound)

	_, err := fx.service.CreateFilm(ctx, &usecase.CreateFilmInput{
		Title:    "Alien",
		Barcode:  "FILM-0001",
		AuthorID: 99,
	})

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestCatalogService_FindRentableCopy_RequestedCopyAvailable(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	item := &entity.Item{
		ID:                5,
		Title:             "Dune",
		Type:              entity.ItemTypeOtherBooks,
		AllowedRentalDays: 30,
		Available:         true,
	}

	fx.itemRepo.EXPECT().FindByID(ctx, int64(5), false).Return(item, nil)

	found, err := fx.service.FindRentableCopy(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, item, found)
}

func TestCatalogService_FindRentableCopy_SubstitutesSameTitle(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	requested := &entity.Item{
		ID:                5,
		Title:             "Dune",
		Type:              entity.ItemTypeOtherBooks,
		AllowedRentalDays: 30,
		Available:         false,
	}
	substitute := &entity.Item{
		ID:                6,
		Title:             "Dune",
		Type:              entity.ItemTypeOtherBooks,
		AllowedRentalDays: 30,
		Available:         true,
	}

	fx.itemRepo.EXPECT().FindByID(ctx, int64(5), false).Return(requested, nil)
	fx.itemRepo.EXPECT().FindAvailableByTitle(ctx, "Dune").Return(substitute, nil)

	found, err := fx.service.FindRentableCopy(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, int64(6), found.ID)
}

func TestCatalogService_FindRentableCopy_NoCopyAvailable(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	requested := &entity.Item{
		ID:                5,
		Title:             "Dune",
		Type:              entity.ItemTypeOtherBooks,
		AllowedRentalDays: 30,
		Available:         false,
	}

	fx.itemRepo.EXPECT().FindByID(ctx, int64(5), false).Return(requested, nil)
	fx.itemRepo.EXPECT().FindAvailableByTitle(ctx, "Dune").Return(nil, repository.ErrItemNotFound)

	_, err := fx.service.FindRentableCopy(ctx, 5)

	assert.ErrorIs(t, err, domainerrors.ErrNoAvailableCopy)
}

func TestCatalogService_FindRentableCopy_ReferenceLiterature(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	reference := &entity.Item{
		ID:                8,
		Title:             "Encyclopaedia Britannica",
		Type:              entity.ItemTypeReferenceLiterature,
		AllowedRentalDays: 0,
		Available:         false,
	}

	fx.itemRepo.EXPECT().FindByID(ctx, int64(8), false).Return(reference, nil)

	_, err := fx.service.FindRentableCopy(ctx, 8)

	assert.ErrorIs(t, err, domainerrors.ErrItemNotRentable)
}

func TestCatalogService_DeleteItem_AdjustsCountsAndIsIdempotent(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.seedCatalog(ctx, []*entity.Item{
		{ID: 1, Title: "Dune", Barcode: "B-1", Available: true},
		{ID: 2, Title: "Dune", Barcode: "B-2", Available: true},
	})
	require.Equal(t, 2, fx.service.StoredCount("Dune"))

	fx.itemRepo.EXPECT().FindByID(ctx, int64(2), true).
		Return(&entity.Item{ID: 2, Title: "Dune", Barcode: "B-2", Available: true}, nil).Once()
	fx.itemRepo.EXPECT().SetDeleted(ctx, int64(2), true).Return(nil).Once()

	require.NoError(t, fx.service.DeleteItem(ctx, 2))
	assert.Equal(t, 1, fx.service.StoredCount("Dune"))
	assert.Equal(t, 1, fx.service.AvailableCount("Dune"))

	// Deleting an already deleted item changes nothing.
	fx.itemRepo.EXPECT().FindByID(ctx, int64(2), true).
		Return(&entity.Item{ID: 2, Title: "Dune", Barcode: "B-2", Available: true, Deleted: true}, nil).Once()

	require.NoError(t, fx.service.DeleteItem(ctx, 2))
	assert.Equal(t, 1, fx.service.StoredCount("Dune"))
}

func TestCatalogService_RecoverItem_RestoresCounts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.seedCatalog(ctx, []*entity.Item{
		{ID: 1, Title: "Dune", Barcode: "B-1", Available: true},
	})

	fx.itemRepo.EXPECT().FindByID(ctx, int64(2), true).
		Return(&entity.Item{ID: 2, Title: "Dune", Barcode: "B-2", Available: true, Deleted: true}, nil)
	fx.itemRepo.EXPECT().SetDeleted(ctx, int64(2), false).Return(nil)

	require.NoError(t, fx.service.RecoverItem(ctx, 2))
	assert.Equal(t, 2, fx.service.StoredCount("Dune"))
	assert.Equal(t, 2, fx.service.AvailableCount("Dune"))
}

func TestCatalogService_HardDeleteItem_ReleasesBarcode(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.seedCatalog(ctx, []*entity.Item{
		{ID: 1, Title: "Dune", Barcode: "B-1", Available: true},
	})

	fx.itemRepo.EXPECT().FindByID(ctx, int64(1), true).
		Return(&entity.Item{ID: 1, Title: "Dune", Barcode: "B-1", Available: true}, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockItemRepo := mockRepo.NewMockItemRepository(t)

		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		mockItemRepo.EXPECT().HardDelete(ctx, int64(1)).Return(nil)
	})

	require.NoError(t, fx.service.HardDeleteItem(ctx, 1))
	assert.Equal(t, 0, fx.service.StoredCount("Dune"))
	assert.Equal(t, 0, fx.service.AvailableCount("Dune"))

	// The barcode is free again after the purge.
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockItemRepo := mockRepo.NewMockItemRepository(t)

		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		mockItemRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)
	})

	_, err := fx.service.CreateFilm(ctx, &usecase.CreateFilmInput{Title: "Dune", Barcode: "B-1"})
	require.NoError(t, err)
}

func TestCatalogService_SetAvailability_NeverGoesNegative(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.seedCatalog(ctx, []*entity.Item{
		{ID: 1, Title: "Dune", Barcode: "B-1", Available: true},
	})

	fx.service.SetAvailability("Dune", false)
	assert.Equal(t, 0, fx.service.AvailableCount("Dune"))

	fx.service.SetAvailability("Dune", false)
	assert.Equal(t, 0, fx.service.AvailableCount("Dune"))

	fx.service.SetAvailability("Dune", true)
	assert.Equal(t, 1, fx.service.AvailableCount("Dune"))
}

func TestCatalogService_UpdateItem_TitleChangeMovesCounts(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.seedCatalog(ctx, []*entity.Item{
		{ID: 1, Title: "Dune", Barcode: "B-1", Available: true},
	})

	fx.itemRepo.EXPECT().FindByID(ctx, int64(1), false).
		Return(&entity.Item{ID: 1, Title: "Dune", Barcode: "B-1", Available: true}, nil)
	fx.itemRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Item")).Return(nil)

	item, err := fx.service.UpdateItem(ctx, &usecase.UpdateItemInput{ID: 1, Title: "Dune Messiah"})

	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", item.Title)
	assert.Equal(t, 0, fx.service.StoredCount("Dune"))
	assert.Equal(t, 1, fx.service.StoredCount("Dune Messiah"))
	assert.Equal(t, 1, fx.service.AvailableCount("Dune Messiah"))
}

func TestCatalogService_GetItemsByTitle_MixedKinds(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	copies := make([]*entity.Item, 0, 6)
	for i := int64(1); i <= 3; i++ {
		copies = append(copies, &entity.Item{ID: i, Title: "Shared Title", Type: entity.ItemTypeFilm, Kind: entity.KindFilm})
	}
	for i := int64(4); i <= 6; i++ {
		copies = append(copies, &entity.Item{ID: i, Title: "Shared Title", Type: entity.ItemTypeOtherBooks, Kind: entity.KindLiterature})
	}

	fx.itemRepo.EXPECT().FindByTitle(ctx, "Shared Title").Return(copies, nil)

	items, err := fx.service.GetItemsByTitle(ctx, "Shared Title")

	require.NoError(t, err)
	assert.Len(t, items, 6)

	_, err = fx.service.GetItemsByTitle(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTitle)
}

func TestCatalogService_GetItemByID_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	_, err := fx.service.GetItemByID(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	fx.itemRepo.EXPECT().FindByID(ctx, int64(404), false).
		Return(nil, repository.ErrItemNotFound)

	_, err = fx.service.GetItemByID(ctx, 404)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestCatalogService_CreateAuthor(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	_, err := fx.service.CreateAuthor(ctx, &usecase.CreateAuthorInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidName)

	fx.authorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Author")).
		Run(func(ctx context.Context, author *entity.Author) {
			author.ID = 1
		}).
		Return(nil)

	author, err := fx.service.CreateAuthor(ctx, &usecase.CreateAuthorInput{Name: "Frank Herbert"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), author.ID)
	assert.Equal(t, "Frank Herbert", author.Name)
}

func TestCatalogService_CreateClassification(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()

	fx.classificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Classification")).
		Run(func(ctx context.Context, classification *entity.Classification) {
			classification.ID = 3
		}).
		Return(nil)

	classification, err := fx.service.CreateClassification(ctx, &usecase.CreateClassificationInput{
		Name:        "Science Fiction",
		Description: "Speculative fiction",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(3), classification.ID)
}

func TestCatalogService_Reset_SkipsDeletedItems(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.seedCatalog(ctx, []*entity.Item{
		{ID: 1, Title: "Dune", Barcode: "B-1", Available: true},
		{ID: 2, Title: "Dune", Barcode: "B-2", Available: false},
		{ID: 3, Title: "Dune", Barcode: "B-3", Available: true, Deleted: true},
	})

	assert.Equal(t, 2, fx.service.StoredCount("Dune"))
	assert.Equal(t, 1, fx.service.AvailableCount("Dune"))

	// The deleted copy still holds its barcode.
	_, err := fx.service.CreateFilm(ctx, &usecase.CreateFilmInput{Title: "Dune", Barcode: "B-3"})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateBarcode)
}

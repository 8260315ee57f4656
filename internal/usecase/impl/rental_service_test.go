package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	mockRepo "librarium/internal/mocks/repository"
	mockService "librarium/internal/mocks/service"
	mockUsecase "librarium/internal/mocks/usecase"
	"librarium/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// rentalServiceFixtures holds all test dependencies for rental service tests.
type rentalServiceFixtures struct {
	t               *testing.T
	service         usecase.RentalUsecase
	txManager       *mockRepo.MockTransactionManager
	rentalRepo      *mockRepo.MockRentalRepository
	catalog         *mockUsecase.MockCatalogUsecase
	members         *mockUsecase.MockMemberUsecase
	receiptRenderer *mockService.MockReceiptRenderer
}

func createTestRentalService(t *testing.T) rentalServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	rentalRepo := mockRepo.NewMockRentalRepository(t)
	catalog := mockUsecase.NewMockCatalogUsecase(t)
	members := mockUsecase.NewMockMemberUsecase(t)
	receiptRenderer := mockService.NewMockReceiptRenderer(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRentalService(RentalServiceParams{
		TxManager:       txManager,
		RentalRepo:      rentalRepo,
		Catalog:         catalog,
		Members:         members,
		ReceiptRenderer: receiptRenderer,
		Logger:          logger,
	})

	return rentalServiceFixtures{
		t:               t,
		service:         service,
		txManager:       txManager,
		rentalRepo:      rentalRepo,
		catalog:         catalog,
		members:         members,
		receiptRenderer: receiptRenderer,
	}
}

// onExecute arranges the next transaction to run its function against a
// repository factory prepared by setup, then report returnErr.
func (fx rentalServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
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

// onExecuteThrough is like onExecute but reports whatever the transaction
// function itself returns, exercising the in-transaction guards.
func (fx rentalServiceFixtures) onExecuteThrough(ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(fx.t)
			setup(mockFactory)

			return fn(mockFactory)
		}).
		Once()
}

func eligibleStudent() *entity.User {
	return &entity.User{
		ID:             42,
		Username:       "paul",
		Type:           entity.UserTypeStudent,
		AllowedRentals: 5,
		CurrentRentals: 1,
	}
}

func duneCopy() *entity.Item {
	return &entity.Item{
		ID:                7,
		Title:             "Dune",
		Type:              entity.ItemTypeOtherBooks,
		Barcode:           "B-7",
		AllowedRentalDays: 30,
		Available:         true,
	}
}

func TestRentalService_CreateRental_Success(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	user := eligibleStudent()
	item := duneCopy()

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(user, nil)
	fx.catalog.EXPECT().FindRentableCopy(ctx, int64(7)).Return(item, nil)
	fx.receiptRenderer.EXPECT().Render(mock.AnythingOfType("*entity.Rental")).Return("RECEIPT")

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockItemRepo := mockRepo.NewMockItemRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockRentalRepo.EXPECT().FindActiveByItem(ctx, int64(7)).Return(nil, repository.ErrRentalNotFound)
		mockRentalRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Rental")).
			Run(func(ctx context.Context, rental *entity.Rental) {
				rental.ID = 1
			}).
			Return(nil)
		mockItemRepo.EXPECT().UpdateAvailability(ctx, int64(7), false).Return(nil)
		mockUserRepo.EXPECT().AdjustRentalCount(ctx, int64(42), 1).Return(nil)
	})

	fx.catalog.EXPECT().SetAvailability("Dune", false).Return()
	fx.members.EXPECT().RefreshUser(ctx, int64(42)).Return(nil)

	rental, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(1), rental.ID)
	assert.Equal(t, "paul", rental.Username)
	assert.Equal(t, "Dune", rental.ItemTitle)
	assert.Equal(t, entity.ItemTypeOtherBooks, rental.ItemType)
	assert.Equal(t, rental.RentalDate.AddDate(0, 0, 30), rental.DueDate)
	assert.Nil(t, rental.ReturnDate)
	assert.Equal(t, "RECEIPT", rental.Receipt)

	_, err = uuid.Parse(rental.ReceiptRef)
	assert.NoError(t, err)
}

func TestRentalService_CreateRental_RefusedLateFee(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	user := eligibleStudent()
	user.LateFee = 25

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(user, nil)

	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})

	var refusal *domainerrors.RentalNotAllowedError
	require.ErrorAs(t, err, &refusal)
	assert.Equal(t, "outstanding late fee", refusal.Reason)
	assert.Equal(t, 25.0, refusal.LateFee)
}

func TestRentalService_CreateRental_RefusedQuotaExhausted(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	user := eligibleStudent()
	user.CurrentRentals = user.AllowedRentals

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(user, nil)

	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})

	var refusal *domainerrors.RentalNotAllowedError
	require.ErrorAs(t, err, &refusal)
	assert.Equal(t, "rental quota exhausted", refusal.Reason)
	assert.Equal(t, 5, refusal.CurrentRentals)
}

func TestRentalService_CreateRental_RefusedStaffAccount(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	staff := &entity.User{ID: 42, Username: "clerk", Type: entity.UserTypeStaff}

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(staff, nil)

	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})

	var refusal *domainerrors.RentalNotAllowedError
	require.ErrorAs(t, err, &refusal)
	assert.Equal(t, "user type never rents", refusal.Reason)
}

func TestRentalService_CreateRental_InvalidInput(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()

	_, err := fx.service.CreateRental(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNullEntity)

	_, err = fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 0, ItemID: 7})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	_, err = fx.service.UpdateRental(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNullEntity)

	// No store write happens for an invalid id.
	assert.ErrorIs(t, fx.service.DeleteRental(ctx, 0), domainerrors.ErrInvalidID)
}

func TestRentalService_CreateRental_RefreshFailureSwallowed(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(eligibleStudent(), nil)
	fx.catalog.EXPECT().FindRentableCopy(ctx, int64(7)).Return(duneCopy(), nil)
	fx.receiptRenderer.EXPECT().Render(mock.AnythingOfType("*entity.Rental")).Return("RECEIPT")

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockItemRepo := mockRepo.NewMockItemRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockRentalRepo.EXPECT().FindActiveByItem(ctx, int64(7)).Return(nil, repository.ErrRentalNotFound)
		mockRentalRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Rental")).Return(nil)
		mockItemRepo.EXPECT().UpdateAvailability(ctx, int64(7), false).Return(nil)
		mockUserRepo.EXPECT().AdjustRentalCount(ctx, int64(42), 1).Return(nil)
	})

	fx.catalog.EXPECT().SetAvailability("Dune", false).Return()
	fx.members.EXPECT().RefreshUser(ctx, int64(42)).Return(errors.New("connection reset"))

	// A stale member cache is tolerable; the rental itself succeeded.
	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})
	require.NoError(t, err)
}

func TestRentalService_CreateRental_TransactionFailure(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(eligibleStudent(), nil)
	fx.catalog.EXPECT().FindRentableCopy(ctx, int64(7)).Return(duneCopy(), nil)
	fx.receiptRenderer.EXPECT().Render(mock.AnythingOfType("*entity.Rental")).Return("RECEIPT")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(errors.New("connection reset")).
		Once()

	// No SetAvailability or RefreshUser expectations: a failed transaction
	// must leave the indexes untouched.
	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})
	require.Error(t, err)
}

func TestRentalService_CreateRental_CopyAlreadyRented(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(eligibleStudent(), nil)
	fx.catalog.EXPECT().FindRentableCopy(ctx, int64(7)).Return(duneCopy(), nil)
	fx.receiptRenderer.EXPECT().Render(mock.AnythingOfType("*entity.Rental")).Return("RECEIPT")

	// The index claimed the copy was free, but a rental row still holds it.
	fx.onExecuteThrough(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		mockRentalRepo.EXPECT().FindActiveByItem(ctx, int64(7)).Return(activeRental(), nil)
	})

	// No SetAvailability or RefreshUser expectations: nothing was written.
	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})
	assert.ErrorIs(t, err, domainerrors.ErrNoAvailableCopy)
}

func TestRentalService_CreateRental_CounterGuardRefusesLastSlot(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	user := eligibleStudent()
	user.CurrentRentals = user.AllowedRentals - 1

	fx.members.EXPECT().GetUserByID(ctx, int64(42), false).Return(user, nil)
	fx.catalog.EXPECT().FindRentableCopy(ctx, int64(7)).Return(duneCopy(), nil)
	fx.receiptRenderer.EXPECT().Render(mock.AnythingOfType("*entity.Rental")).Return("RECEIPT")

	// The eligibility read passed, but another rental took the last slot
	// before the counter update ran.
	fx.onExecuteThrough(ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockItemRepo := mockRepo.NewMockItemRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockRentalRepo.EXPECT().FindActiveByItem(ctx, int64(7)).Return(nil, repository.ErrRentalNotFound)
		mockRentalRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Rental")).Return(nil)
		mockItemRepo.EXPECT().UpdateAvailability(ctx, int64(7), false).Return(nil)
		mockUserRepo.EXPECT().AdjustRentalCount(ctx, int64(42), 1).Return(repository.ErrRentalLimitReached)
	})

	_, err := fx.service.CreateRental(ctx, &usecase.CreateRentalInput{UserID: 42, ItemID: 7})

	var refusal *domainerrors.RentalNotAllowedError
	require.ErrorAs(t, err, &refusal)
	assert.Equal(t, "rental quota exhausted", refusal.Reason)
}

func activeRental() *entity.Rental {
	now := time.Now().Truncate(time.Second)

	return &entity.Rental{
		ID:         1,
		UserID:     42,
		ItemID:     7,
		Username:   "paul",
		ItemTitle:  "Dune",
		ItemType:   entity.ItemTypeOtherBooks,
		RentalDate: now.AddDate(0, 0, -3),
		DueDate:    now.AddDate(0, 0, 27),
		Receipt:    "RECEIPT",
		ReceiptRef: uuid.New().String(),
	}
}

func TestRentalService_ReturnRental_Success(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockItemRepo := mockRepo.NewMockItemRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockRentalRepo.EXPECT().Update(ctx, stored).Return(nil)
		mockItemRepo.EXPECT().UpdateAvailability(ctx, int64(7), true).Return(nil)
		mockUserRepo.EXPECT().AdjustRentalCount(ctx, int64(42), -1).Return(nil)
	})

	fx.catalog.EXPECT().SetAvailability("Dune", true).Return()
	fx.members.EXPECT().RefreshUser(ctx, int64(42)).Return(nil)

	returned, err := fx.service.ReturnRental(ctx, &entity.Rental{ID: 1})

	require.NoError(t, err)
	require.NotNil(t, returned.ReturnDate)
	assert.False(t, returned.IsActive())
}

func TestRentalService_ReturnRental_AlreadyReturned(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	returnedAt := time.Now().Truncate(time.Second)
	stored.ReturnDate = &returnedAt

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	_, err := fx.service.ReturnRental(ctx, &entity.Rental{ID: 1})

	assert.ErrorIs(t, err, domainerrors.ErrRentalAlreadyReturned)
}

func TestRentalService_ReturnRental_NotFound(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()

	_, err := fx.service.ReturnRental(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNullEntity)

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrRentalNotFound)

	_, err = fx.service.ReturnRental(ctx, &entity.Rental{ID: 404})
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestRentalService_UpdateRental_DueDateAndFee(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	newDue := stored.DueDate.AddDate(0, 0, 7)

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.rentalRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateRental(ctx, &entity.Rental{
		ID:      1,
		DueDate: newDue,
		LateFee: 12.5,
	})

	require.NoError(t, err)
	assert.Equal(t, newDue, updated.DueDate)
	assert.Equal(t, 12.5, updated.LateFee)
}

func TestRentalService_UpdateRental_CannotSetReturnDate(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	returnedAt := time.Now()

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	_, err := fx.service.UpdateRental(ctx, &entity.Rental{
		ID:         1,
		DueDate:    stored.DueDate,
		ReturnDate: &returnedAt,
	})

	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
}

func TestRentalService_UpdateRental_CannotClearReturnDate(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	returnedAt := time.Now().Truncate(time.Second)
	stored.ReturnDate = &returnedAt

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	_, err := fx.service.UpdateRental(ctx, &entity.Rental{
		ID:      1,
		DueDate: stored.DueDate,
	})

	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
}

func TestRentalService_UpdateRental_CorrectsReturnDate(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	returnedAt := time.Now().Truncate(time.Second)
	stored.ReturnDate = &returnedAt

	corrected := returnedAt.AddDate(0, 0, -1)

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.rentalRepo.EXPECT().Update(ctx, stored).Return(nil)

	updated, err := fx.service.UpdateRental(ctx, &entity.Rental{
		ID:         1,
		DueDate:    stored.DueDate,
		ReturnDate: &corrected,
	})

	require.NoError(t, err)
	require.NotNil(t, updated.ReturnDate)
	assert.True(t, updated.ReturnDate.Equal(corrected))
}

func TestRentalService_UpdateRental_ImmutableFields(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil).Times(3)

	_, err := fx.service.UpdateRental(ctx, &entity.Rental{
		ID:      1,
		DueDate: stored.DueDate,
		UserID:  99,
	})
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)

	_, err = fx.service.UpdateRental(ctx, &entity.Rental{
		ID:        1,
		DueDate:   stored.DueDate,
		ItemTitle: "Another Title",
	})
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)

	_, err = fx.service.UpdateRental(ctx, &entity.Rental{
		ID:         1,
		DueDate:    stored.DueDate,
		ReceiptRef: "forged",
	})
	assert.ErrorIs(t, err, domainerrors.ErrImmutableField)
}

func TestRentalService_DeleteRental_Idempotent(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil).Twice()
	fx.rentalRepo.EXPECT().SetDeleted(ctx, int64(1), true).Return(nil).Once()

	require.NoError(t, fx.service.DeleteRental(ctx, 1))

	// Repeated soft delete is a no-op.
	stored.Deleted = true
	require.NoError(t, fx.service.DeleteRental(ctx, 1))
}

func TestRentalService_RecoverRental(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	stored.Deleted = true

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.rentalRepo.EXPECT().SetDeleted(ctx, int64(1), false).Return(nil)

	require.NoError(t, fx.service.RecoverRental(ctx, 1))
}

func TestRentalService_HardDeleteRental_ActiveReleasesCopy(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil).Once()

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)
		mockItemRepo := mockRepo.NewMockItemRepository(t)
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		factory.EXPECT().ItemRepo().Return(mockItemRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockItemRepo.EXPECT().UpdateAvailability(ctx, int64(7), true).Return(nil)
		mockUserRepo.EXPECT().AdjustRentalCount(ctx, int64(42), -1).Return(nil)
		mockRentalRepo.EXPECT().HardDelete(ctx, int64(1)).Return(nil)
	})

	fx.catalog.EXPECT().SetAvailability("Dune", true).Return()
	fx.members.EXPECT().RefreshUser(ctx, int64(42)).Return(nil)

	require.NoError(t, fx.service.HardDeleteRental(ctx, 1))

	// The purged id is gone for good.
	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(nil, repository.ErrRentalNotFound)

	_, err := fx.service.GetRentalByID(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestRentalService_HardDeleteRental_ReturnedTouchesNothing(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	returnedAt := time.Now().Truncate(time.Second)
	stored.ReturnDate = &returnedAt

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)

	// A closed rental already released its copy and slot; only the row goes.
	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		mockRentalRepo := mockRepo.NewMockRentalRepository(t)

		factory.EXPECT().RentalRepo().Return(mockRentalRepo)
		mockRentalRepo.EXPECT().HardDelete(ctx, int64(1)).Return(nil)
	})

	require.NoError(t, fx.service.HardDeleteRental(ctx, 1))
}

func TestRentalService_OverdueRentals(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	overdue := []*entity.Rental{activeRental()}

	fx.rentalRepo.EXPECT().FindOverdue(ctx, mock.AnythingOfType("time.Time")).Return(overdue, nil)

	rentals, err := fx.service.OverdueRentals(ctx)

	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestRentalService_ListRentalsByUser(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()

	_, err := fx.service.ListRentalsByUser(ctx, 0)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)

	fx.rentalRepo.EXPECT().FindByUser(ctx, int64(42)).Return([]*entity.Rental{activeRental()}, nil)

	rentals, err := fx.service.ListRentalsByUser(ctx, 42)
	require.NoError(t, err)
	assert.Len(t, rentals, 1)
}

func TestRentalService_RenderReceiptQR(t *testing.T) {
	fx := createTestRentalService(t)

	ctx := context.Background()
	stored := activeRental()
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.rentalRepo.EXPECT().FindByID(ctx, int64(1)).Return(stored, nil)
	fx.receiptRenderer.EXPECT().RenderQR(stored).Return(png, nil)

	rendered, err := fx.service.RenderReceiptQR(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, png, rendered)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	mockRepo "librarium/internal/mocks/repository"
	mockService "librarium/internal/mocks/service"
	"librarium/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memberServiceFixtures holds all test dependencies for member service tests.
type memberServiceFixtures struct {
	t            *testing.T
	service      usecase.MemberUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
}

func createTestMemberService(t *testing.T) memberServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMemberService(MemberServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return memberServiceFixtures{
		t:            t,
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// seedMembers rebuilds the uniqueness sets and the cache from the given
// users, as the startup warm-up does.
func (fx memberServiceFixtures) seedMembers(ctx context.Context, users []*entity.User) {
	fx.userRepo.EXPECT().FindAll(ctx).Return(users, nil).Once()
	require.NoError(fx.t, fx.service.Reset(ctx))
}

func TestMemberService_CreateUser_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Username: "paul",
		Password: "secret",
		Email:    "paul@arrakis.example",
		Type:     entity.UserTypeStudent,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 1
		}).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "hashed-secret", user.PasswordHash)
	assert.Equal(t, entity.UserTypeStudent, user.Type)
	assert.Equal(t, 5, user.AllowedRentals)
}

func TestMemberService_CreateUser_QuotaOverride(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username:       "irulan",
		Password:       "secret",
		Email:          "irulan@arrakis.example",
		Type:           entity.UserTypeResearcher,
		AllowedRentals: 2,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, user.AllowedRentals)
}

func TestMemberService_CreateUser_Validation(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()

	_, err := fx.service.CreateUser(ctx, nil)
	assert.ErrorIs(t, err, domainerrors.ErrNullEntity)

	_, err = fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Password: "secret", Email: "a@b.example", Type: entity.UserTypePatron,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidName)

	_, err = fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul", Email: "a@b.example", Type: entity.UserTypePatron,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	_, err = fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul", Password: "secret", Type: entity.UserTypePatron,
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmail)

	_, err = fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul", Password: "secret", Email: "a@b.example", Type: entity.UserType("WIZARD"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidType)
}

func TestMemberService_CreateUser_DuplicateUsername(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent},
	})

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul",
		Password: "secret",
		Email:    "other@arrakis.example",
		Type:     entity.UserTypePatron,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestMemberService_CreateUser_DuplicateEmail(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent},
	})

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "leto",
		Password: "secret",
		Email:    "paul@arrakis.example",
		Type:     entity.UserTypePatron,
	})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestMemberService_CreateUser_StoreFailureReleasesNames(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	input := &usecase.CreateUserInput{
		Username: "paul",
		Password: "secret",
		Email:    "paul@arrakis.example",
		Type:     entity.UserTypeStudent,
	}

	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil).Twice()
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(errors.New("connection reset")).Once()

	_, err := fx.service.CreateUser(ctx, input)
	require.Error(t, err)

	// The failed create must not leave the username or email reserved.
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Once()

	_, err = fx.service.CreateUser(ctx, input)
	require.NoError(t, err)
}

func TestMemberService_GetUserByID_CacheHit(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent},
	})

	// No FindByID expectation: the lookup must be served from the cache.
	user, err := fx.service.GetUserByID(ctx, 1, false)

	require.NoError(t, err)
	assert.Equal(t, "paul", user.Username)
}

func TestMemberService_GetUserByID_DeletedHidden(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(1), true).
		Return(&entity.User{ID: 1, Username: "paul", Deleted: true}, nil).Once()

	_, err := fx.service.GetUserByID(ctx, 1, false)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)

	// The row is cached; including deleted members now succeeds without
	// another store round trip.
	user, err := fx.service.GetUserByID(ctx, 1, true)
	require.NoError(t, err)
	assert.True(t, user.Deleted)
}

func TestMemberService_GetUserByID_ReturnsDetachedCopy(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent, AllowedRentals: 5},
	})

	user, err := fx.service.GetUserByID(ctx, 1, false)
	require.NoError(t, err)

	// Scribbling on the result must not leak into the cache.
	user.Username = "impostor"
	user.LateFee = 99

	fresh, err := fx.service.GetUserByID(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, "paul", fresh.Username)
	assert.Equal(t, 0.0, fresh.LateFee)
}

func TestMemberService_SetLateFee_ConcurrentWithReads(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5},
	})

	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	// Readers and fee writers race on the same cache entry; every read must
	// see a consistent user.
	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		fee := float64(i)
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, fx.service.SetLateFee(ctx, 1, fee))
		}()
		go func() {
			defer wg.Done()
			user, err := fx.service.GetUserByID(ctx, 1, true)
			if assert.NoError(t, err) {
				assert.Equal(t, "paul", user.Username)
			}
		}()
	}
	wg.Wait()
}

func TestMemberService_DeleteUser_BlockedByObligations(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5, CurrentRentals: 2},
	})

	err := fx.service.DeleteUser(ctx, 1)

	var blocked *domainerrors.DeletionBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 2, blocked.CurrentRentals)
}

func TestMemberService_HardDeleteUser_BlockedByLateFee(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5, LateFee: 25},
	})

	err := fx.service.HardDeleteUser(ctx, 1)

	var blocked *domainerrors.DeletionBlockedError
	require.ErrorAs(t, err, &blocked)
	assert.Equal(t, 25.0, blocked.LateFee)
}

func TestMemberService_DeleteUser_KeepsNamesReserved(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent, AllowedRentals: 5},
	})

	fx.userRepo.EXPECT().SetDeleted(ctx, int64(1), true).Return(nil).Once()

	require.NoError(t, fx.service.DeleteUser(ctx, 1))

	// Repeated soft delete is a no-op and must not call the store again.
	require.NoError(t, fx.service.DeleteUser(ctx, 1))

	// The soft-deleted member still owns their username and email.
	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul",
		Password: "secret",
		Email:    "new@arrakis.example",
		Type:     entity.UserTypePatron,
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestMemberService_RecoverUser(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5, Deleted: true},
	})

	fx.userRepo.EXPECT().SetDeleted(ctx, int64(1), false).Return(nil).Once()

	require.NoError(t, fx.service.RecoverUser(ctx, 1))

	user, err := fx.service.GetUserByID(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, user.Deleted)

	// Recovering a live member is a no-op.
	require.NoError(t, fx.service.RecoverUser(ctx, 1))
}

func TestMemberService_HardDeleteUser_ReleasesNames(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent, AllowedRentals: 5},
	})

	fx.userRepo.EXPECT().HardDelete(ctx, int64(1)).Return(nil)

	require.NoError(t, fx.service.HardDeleteUser(ctx, 1))

	// Both names are free for a new registration.
	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul",
		Password: "secret",
		Email:    "paul@arrakis.example",
		Type:     entity.UserTypePatron,
	})
	require.NoError(t, err)
}

func TestMemberService_UpdateUser_DuplicateUsername(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent},
		{ID: 2, Username: "leto", Email: "leto@arrakis.example", Type: entity.UserTypeTeacher},
	})

	_, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{ID: 1, Username: "leto"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateUsername)
}

func TestMemberService_UpdateUser_RenameReleasesOldName(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Email: "paul@arrakis.example", Type: entity.UserTypeStudent},
	})

	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.UpdateUser(ctx, &usecase.UpdateUserInput{ID: 1, Username: "muaddib"})

	require.NoError(t, err)
	assert.Equal(t, "muaddib", user.Username)

	// The old username is free again.
	fx.hasher.EXPECT().Hash("secret").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	_, err = fx.service.CreateUser(ctx, &usecase.CreateUserInput{
		Username: "paul",
		Password: "secret",
		Email:    "other@arrakis.example",
		Type:     entity.UserTypePatron,
	})
	require.NoError(t, err)
}

func TestMemberService_Login_Success(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           1,
		Username:     "paul",
		PasswordHash: "hashed-secret",
		Type:         entity.UserTypeStudent,
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "paul").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hashed-secret").Return(true)
	fx.tokenService.EXPECT().GenerateToken(int64(1), "STUDENT").Return("access-token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "paul", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestMemberService_Login_WrongPassword(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "paul").
		Return(&entity.User{ID: 1, Username: "paul", PasswordHash: "hashed-secret"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "paul", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrLoginFailed)
}

func TestMemberService_Login_DeletedAccount(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "paul").
		Return(&entity.User{ID: 1, Username: "paul", Deleted: true}, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "paul", Password: "secret"})

	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

func TestMemberService_Validate(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()

	_, err := fx.service.Validate(ctx, "", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrNullEntity)

	_, err = fx.service.Validate(ctx, "paul", "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPassword)

	fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound).Once()

	_, err = fx.service.Validate(ctx, "ghost", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)

	fx.userRepo.EXPECT().FindByUsername(ctx, "idaho").
		Return(&entity.User{ID: 3, Username: "idaho", Deleted: true}, nil).Once()

	_, err = fx.service.Validate(ctx, "idaho", "secret")
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)

	fx.userRepo.EXPECT().FindByUsername(ctx, "paul").
		Return(&entity.User{ID: 1, Username: "paul", PasswordHash: "hashed-secret"}, nil).Twice()
	fx.hasher.EXPECT().Check("secret", "hashed-secret").Return(true).Once()
	fx.hasher.EXPECT().Check("wrong", "hashed-secret").Return(false).Once()

	ok, err := fx.service.Validate(ctx, "paul", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	// A wrong password is the only case answered without an error.
	ok, err = fx.service.Validate(ctx, "paul", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemberService_SetLateFee(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5},
	})

	err := fx.service.SetLateFee(ctx, 1, -5)
	require.Error(t, err)

	fx.userRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	require.NoError(t, fx.service.SetLateFee(ctx, 1, 25))

	user, err := fx.service.GetUserByID(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 25.0, user.LateFee)
	assert.False(t, user.IsAllowedToRent())
}

func TestMemberService_RefreshUser(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5, CurrentRentals: 0},
	})

	fx.userRepo.EXPECT().FindByID(ctx, int64(1), true).
		Return(&entity.User{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5, CurrentRentals: 1}, nil).Once()

	require.NoError(t, fx.service.RefreshUser(ctx, 1))

	user, err := fx.service.GetUserByID(ctx, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, user.CurrentRentals)
}

func TestMemberService_RefreshUser_GoneFromStore(t *testing.T) {
	fx := createTestMemberService(t)

	ctx := context.Background()
	fx.seedMembers(ctx, []*entity.User{
		{ID: 1, Username: "paul", Type: entity.UserTypeStudent, AllowedRentals: 5},
	})

	// A purge from another path dropped the row; the cache entry goes too.
	fx.userRepo.EXPECT().FindByID(ctx, int64(1), true).
		Return(nil, repository.ErrUserNotFound).Twice()

	require.NoError(t, fx.service.RefreshUser(ctx, 1))

	_, err := fx.service.GetUserByID(ctx, 1, false)
	assert.ErrorIs(t, err, domainerrors.ErrEntityNotFound)
}

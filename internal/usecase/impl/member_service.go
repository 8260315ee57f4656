package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "librarium/internal/delivery/context"
	"librarium/internal/domain/entity"
	domainerrors "librarium/internal/domain/errors"
	"librarium/internal/domain/repository"
	"librarium/internal/domain/service"
	"librarium/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Field length limits shared by the member validations.
const (
	maxUsernameLength = 64
	maxPasswordLength = 72 // bcrypt input cap
	maxEmailLength    = 255
)

// memberService implements the MemberUsecase interface.
//
// It owns the username and email uniqueness sets and a user-by-id cache.
// The sets map each reserved name to its owning user id so uniqueness
// re-checks on update can exclude the user itself. Soft-deleted members stay
// in the sets; only a hard delete releases their names.
//
// The cache never hands out its own pointers. Reads return a private copy
// and writers mutate their copy before swapping it in under the lock, so
// concurrent requests cannot observe a half-written user.
type memberService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	mu        sync.RWMutex
	usernames map[string]int64
	emails    map[string]int64
	cache     map[int64]*entity.User
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewMemberService is the constructor for memberService. It receives all dependencies as interfaces.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	return &memberService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		usernames:    make(map[string]int64),
		emails:       make(map[string]int64),
		cache:        make(map[int64]*entity.User),
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser registers a new member account.
func (srv *memberService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("create user input is nil")
	}
	if input.Username == "" || len(input.Username) > maxUsernameLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidName, "create user")
	}
	if input.Password == "" || len(input.Password) > maxPasswordLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "create user")
	}
	if input.Email == "" || len(input.Email) > maxEmailLength {
		return nil, errors.Wrap(domainerrors.ErrInvalidEmail, "create user")
	}
	if !input.Type.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidType, "create user")
	}

	srv.log(ctx).Info("Registering member", slog.String("username", input.Username), slog.Any("type", input.Type))

	// Reserve both names before touching the store so a concurrent create
	// with the same username or email fails fast.
	if err := srv.reserveNames(input.Username, input.Email); err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.releaseNames(input.Username, input.Email)

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	allowed := input.AllowedRentals
	if allowed == 0 {
		allowed = input.Type.DefaultAllowedRentals()
	}

	user := &entity.User{
		Username:       input.Username,
		PasswordHash:   hashedPassword,
		Email:          input.Email,
		Type:           input.Type,
		AllowedRentals: allowed,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.releaseNames(input.Username, input.Email)
		srv.log(ctx).Error("Failed to create member", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.mu.Lock()
	srv.usernames[user.Username] = user.ID
	srv.emails[user.Email] = user.ID
	srv.cache[user.ID] = cloneUser(user)
	srv.mu.Unlock()

	srv.log(ctx).Debug("Member registered", slog.Any("userID", user.ID), slog.String("username", user.Username))

	return user, nil
}

// GetUserByID retrieves a member by id, consulting the cache first.
// Soft-deleted members are hidden unless includeDeleted is set. The returned
// user is a private copy; mutating it does not touch the cache.
func (srv *memberService) GetUserByID(ctx context.Context, id int64, includeDeleted bool) (*entity.User, error) {
	if id <= 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidID, "get user by id")
	}

	srv.mu.RLock()
	cached, hit := srv.cache[id]
	if hit {
		cached = cloneUser(cached)
	}
	srv.mu.RUnlock()

	if hit {
		if cached.Deleted && !includeDeleted {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
		}

		return cached, nil
	}

	user, err := srv.userRepo.FindByID(ctx, id, true)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	srv.mu.Lock()
	srv.cache[user.ID] = cloneUser(user)
	srv.mu.Unlock()

	if user.Deleted && !includeDeleted {
		return nil, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
	}

	return user, nil
}

// GetUserByUsername retrieves a member by username, soft-deleted or not.
func (srv *memberService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidName, "get user by username")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	srv.mu.Lock()
	srv.cache[user.ID] = cloneUser(user)
	srv.mu.Unlock()

	return user, nil
}

// UpdateUser applies the non-zero fields of the input to an existing member,
// re-checking name uniqueness against everyone but the member itself.
func (srv *memberService) UpdateUser(ctx context.Context, input *usecase.UpdateUserInput) (*entity.User, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("update user input is nil")
	}

	user, err := srv.GetUserByID(ctx, input.ID, false)
	if err != nil {
		return nil, err
	}

	oldUsername := user.Username
	oldEmail := user.Email

	if input.Username != "" && input.Username != oldUsername {
		if len(input.Username) > maxUsernameLength {
			return nil, errors.Wrap(domainerrors.ErrInvalidName, "update user")
		}
		if err := srv.reserveUsernameFor(input.Username, user.ID); err != nil {
			return nil, errors.Wrap(err, "update user")
		}
		user.Username = input.Username
	}
	if input.Email != "" && input.Email != oldEmail {
		if len(input.Email) > maxEmailLength {
			srv.rollbackUsername(user, oldUsername)

			return nil, errors.Wrap(domainerrors.ErrInvalidEmail, "update user")
		}
		if err := srv.reserveEmailFor(input.Email, user.ID); err != nil {
			srv.rollbackUsername(user, oldUsername)

			return nil, errors.Wrap(err, "update user")
		}
		user.Email = input.Email
	}
	if input.AllowedRentals > 0 {
		user.AllowedRentals = input.AllowedRentals
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		srv.rollbackUsername(user, oldUsername)
		srv.rollbackEmail(user, oldEmail)
		srv.log(ctx).Error("Failed to update member", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.mu.Lock()
	if user.Username != oldUsername {
		delete(srv.usernames, oldUsername)
	}
	if user.Email != oldEmail {
		delete(srv.emails, oldEmail)
	}
	srv.cache[user.ID] = cloneUser(user)
	srv.mu.Unlock()

	return user, nil
}

// DeleteUser soft-deletes a member. Refused while the member still has
// active rentals or an outstanding late fee; the names stay reserved.
func (srv *memberService) DeleteUser(ctx context.Context, id int64) error {
	user, err := srv.GetUserByID(ctx, id, true)
	if err != nil {
		return err
	}
	if user.Deleted {
		// Repeated soft delete is a no-op.
		return nil
	}
	if user.HasOpenObligations() {
		return &domainerrors.DeletionBlockedError{
			CurrentRentals: user.CurrentRentals,
			LateFee:        user.LateFee,
		}
	}

	if err := srv.userRepo.SetDeleted(ctx, id, true); err != nil {
		return errors.Wrap(err, "failed to soft-delete user")
	}

	user.Deleted = true
	srv.mu.Lock()
	srv.cache[user.ID] = user
	srv.mu.Unlock()

	srv.log(ctx).Info("Member soft-deleted", slog.Any("userID", id))

	return nil
}

// RecoverUser reverses a soft delete.
func (srv *memberService) RecoverUser(ctx context.Context, id int64) error {
	user, err := srv.GetUserByID(ctx, id, true)
	if err != nil {
		return err
	}
	if !user.Deleted {
		return nil
	}

	if err := srv.userRepo.SetDeleted(ctx, id, false); err != nil {
		return errors.Wrap(err, "failed to recover user")
	}

	user.Deleted = false
	srv.mu.Lock()
	srv.cache[user.ID] = user
	srv.mu.Unlock()

	srv.log(ctx).Info("Member recovered", slog.Any("userID", id))

	return nil
}

// HardDeleteUser permanently removes a member and releases their names for
// reuse. Open obligations block a hard delete just as they block a soft one.
func (srv *memberService) HardDeleteUser(ctx context.Context, id int64) error {
	user, err := srv.GetUserByID(ctx, id, true)
	if err != nil {
		return err
	}
	if user.HasOpenObligations() {
		return &domainerrors.DeletionBlockedError{
			CurrentRentals: user.CurrentRentals,
			LateFee:        user.LateFee,
		}
	}

	if err := srv.userRepo.HardDelete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to hard-delete user")
	}

	srv.mu.Lock()
	delete(srv.usernames, user.Username)
	delete(srv.emails, user.Email)
	delete(srv.cache, id)
	srv.mu.Unlock()

	srv.log(ctx).Info("Member hard-deleted", slog.Any("userID", id))

	return nil
}

// Login checks the member's credentials and issues an access token.
func (srv *memberService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrNullEntity.WrapMessage("login input is nil")
	}
	if input.Username == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidName, "login")
	}
	if input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login")
	}

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

			return nil, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}
	if user.Deleted {
		srv.log(ctx).Warn("Login attempt on deleted account", slog.String("username", input.Username))

		return nil, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
	}

	// bcrypt compare is CPU-bound, keep it outside any lock.
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("username", input.Username))

		return nil, errors.Wrap(domainerrors.ErrLoginFailed, "login failed")
	}

	accessToken, err := srv.tokenService.GenerateToken(user.ID, user.Type.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Member logged in", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// Validate checks a username/password pair. Only a wrong password yields
// false without an error; blank input or an unknown account is reported as
// an error, mirroring Login.
func (srv *memberService) Validate(ctx context.Context, username, password string) (bool, error) {
	if username == "" {
		return false, domainerrors.ErrNullEntity.WrapMessage("username is empty")
	}
	if password == "" {
		return false, errors.Wrap(domainerrors.ErrInvalidPassword, "validate credentials")
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
		}

		return false, errors.Wrap(err, "failed to find user for validation")
	}
	if user.Deleted {
		return false, domainerrors.ErrEntityNotFound.WrapMessage("user does not exist")
	}

	return srv.hasher.Check(password, user.PasswordHash), nil
}

// SetLateFee assesses or clears the member's outstanding late fee.
func (srv *memberService) SetLateFee(ctx context.Context, userID int64, fee float64) error {
	if fee < 0 {
		return domainerrors.ErrInvalidID.WrapMessage("late fee must not be negative")
	}

	user, err := srv.GetUserByID(ctx, userID, true)
	if err != nil {
		return err
	}

	user.LateFee = fee
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update late fee")
	}

	srv.mu.Lock()
	srv.cache[user.ID] = user
	srv.mu.Unlock()

	return nil
}

// RefreshUser reloads one member into the cache after an out-of-band change
// to their row, such as a rental adjusting the counter.
func (srv *memberService) RefreshUser(ctx context.Context, userID int64) error {
	user, err := srv.userRepo.FindByID(ctx, userID, true)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.mu.Lock()
			delete(srv.cache, userID)
			srv.mu.Unlock()

			return nil
		}

		return errors.Wrap(err, "failed to refresh user")
	}

	srv.mu.Lock()
	srv.cache[user.ID] = user
	srv.mu.Unlock()

	return nil
}

// Reset rebuilds the uniqueness sets and the cache from the store.
func (srv *memberService) Reset(ctx context.Context) error {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to load users for index rebuild")
	}

	usernames := make(map[string]int64, len(users))
	emails := make(map[string]int64, len(users))
	cache := make(map[int64]*entity.User, len(users))

	for _, user := range users {
		usernames[user.Username] = user.ID
		emails[user.Email] = user.ID
		cache[user.ID] = user
	}

	srv.mu.Lock()
	srv.usernames = usernames
	srv.emails = emails
	srv.cache = cache
	srv.mu.Unlock()

	srv.log(ctx).Info("Member indexes rebuilt", slog.Int("users", len(users)))

	return nil
}

// cloneUser returns a private copy of the user. Every field is a value type,
// so a shallow copy detaches the result from the cache completely.
func cloneUser(user *entity.User) *entity.User {
	copied := *user

	return &copied
}

// reserveNames reserves a username and email pair for a not-yet-created user.
// Either both names are reserved or neither is.
func (srv *memberService) reserveNames(username, email string) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if _, taken := srv.usernames[username]; taken {
		return domainerrors.ErrDuplicateUsername
	}
	if _, taken := srv.emails[email]; taken {
		return domainerrors.ErrDuplicateEmail
	}
	srv.usernames[username] = 0
	srv.emails[email] = 0

	return nil
}

func (srv *memberService) releaseNames(username, email string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	delete(srv.usernames, username)
	delete(srv.emails, email)
}

// reserveUsernameFor reserves a username for an existing user, allowing the
// user's own current reservation through.
func (srv *memberService) reserveUsernameFor(username string, userID int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if owner, taken := srv.usernames[username]; taken && owner != userID {
		return domainerrors.ErrDuplicateUsername
	}
	srv.usernames[username] = userID

	return nil
}

// reserveEmailFor reserves an email for an existing user, allowing the
// user's own current reservation through.
func (srv *memberService) reserveEmailFor(email string, userID int64) error {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	if owner, taken := srv.emails[email]; taken && owner != userID {
		return domainerrors.ErrDuplicateEmail
	}
	srv.emails[email] = userID

	return nil
}

// rollbackUsername undoes a provisional username change on the entity and in
// the set after a failed update.
func (srv *memberService) rollbackUsername(user *entity.User, oldUsername string) {
	if user.Username == oldUsername {
		return
	}

	srv.mu.Lock()
	delete(srv.usernames, user.Username)
	srv.mu.Unlock()
	user.Username = oldUsername
}

// rollbackEmail undoes a provisional email change on the entity and in the
// set after a failed update.
func (srv *memberService) rollbackEmail(user *entity.User, oldEmail string) {
	if user.Email == oldEmail {
		return
	}

	srv.mu.Lock()
	delete(srv.emails, user.Email)
	srv.mu.Unlock()
	user.Email = oldEmail
}

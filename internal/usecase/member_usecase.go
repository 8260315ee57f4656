package usecase

import (
	"context"

	"librarium/internal/domain/entity"
)

// --- Input DTOs ---

// CreateUserInput defines the data required to register a new member.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Type     entity.UserType
	// AllowedRentals overrides the type default when > 0.
	AllowedRentals int
}

// UpdateUserInput carries the mutable fields of an existing member.
// Zero-valued fields are left unchanged.
type UpdateUserInput struct {
	ID             int64
	Username       string
	Email          string
	AllowedRentals int
}

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the access token issued after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// MemberUsecase defines the interface for user eligibility operations.
// It owns the username and email uniqueness sets plus a user-by-id cache;
// soft-deleted members keep their names reserved until hard deletion.
type MemberUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)

	GetUserByID(ctx context.Context, id int64, includeDeleted bool) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)

	UpdateUser(ctx context.Context, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id int64) error
	RecoverUser(ctx context.Context, id int64) error
	HardDeleteUser(ctx context.Context, id int64) error

	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Validate checks a username/password pair without issuing a token.
	// Blank input or an unknown account is an error; only a wrong password
	// yields a plain false.
	Validate(ctx context.Context, username, password string) (bool, error)

	// SetLateFee assesses or clears the member's outstanding late fee.
	SetLateFee(ctx context.Context, userID int64, fee float64) error

	// RefreshUser reloads one member into the cache after an out-of-band
	// change to their row, such as a rental adjusting the counter.
	RefreshUser(ctx context.Context, userID int64) error

	// Reset rebuilds the uniqueness sets and cache from the store.
	Reset(ctx context.Context) error
}

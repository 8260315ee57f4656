package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for issuing and validating the access
// tokens the HTTP layer hands out after a successful login.
type TokenService interface {
	// GenerateToken creates a signed access token for the given user id and type.
	GenerateToken(userID int64, userType string) (string, error)

	// ValidateToken checks the validity of a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}

package tenantapp

import (
	"context"

	"github.com/bondtrack/backend/internal/domain/shared"
	"github.com/bondtrack/backend/internal/domain/tenant"
	"github.com/bondtrack/backend/internal/infrastructure/auth"
)

// AuthService handles login and token refresh
type AuthService struct {
	userRepo tenant.UserRepository
	jwt      *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo tenant.UserRepository, jwt *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwt:      jwt,
	}
}

// LoginResult carries the issued tokens and the authenticated user
type LoginResult struct {
	Tokens *auth.TokenPair
	User   *tenant.User
}

// Login verifies credentials and issues a token pair. Users without a
// tenant still get tokens; the tenant middleware rejects their scoped
// requests later.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if !user.Active || !user.CheckPassword(password) {
		return nil, shared.ErrUnauthorized
	}

	tokens, err := s.jwt.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Username: user.Username,
		TenantID: user.TenantID,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{Tokens: tokens, User: user}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	tokens, err := s.jwt.RefreshTokenPair(refreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}
	return tokens, nil
}

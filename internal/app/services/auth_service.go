package services

import (
	"context"
	"errors"
	"strings"

	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
	"github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/logger"
)

// AuthService handles authentication operations
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{users: users, jwtService: jwtService}
}

// Login checks the credentials of an active user and issues an access token.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		logger.Warn().Str("username", username).Msg("Login failed: wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, auth.RoleAdmin)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err, "sign access token")
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to record last login")
	}

	logger.Info().Int64("userID", user.ID).Str("username", user.Username).Msg("User logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	}, nil
}

// Me describes the caller from validated token claims.
func (s *AuthService) Me(claims *auth.Claims) *dto.MeResponse {
	return &dto.MeResponse{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}
}

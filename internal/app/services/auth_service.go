package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/app/models/dto"
	"github.com/hillcrest/college-backend/internal/pkg/apperrors"
	"github.com/hillcrest/college-backend/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   UserRepo
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo UserRepo, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a user with the default user role and issues a token.
// Fails with a conflict when the email is taken, and with a validation error
// when the submitted password already looks like a bcrypt hash (defends
// against accidental double hashing).
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if auth.IsHash(req.Password) {
		return nil, apperrors.NewValidationError("password must be plaintext, not a hash")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: user, Token: token, ExpiresIn: expiresIn}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error to avoid user enumeration. A stored value
// that does not look like a valid bcrypt hash is treated as corrupted state
// and also fails authentication, never silently repaired.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.IsHash(user.Password) {
		s.logger.Error().Int64("userID", user.ID).Msg("Stored password hash failed shape check")
		return nil, apperrors.ErrCorruptedCredential
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: user, Token: token, ExpiresIn: expiresIn}, nil
}

// CurrentUser resolves the token's subject. Returns nil, not an error, when
// the subject no longer exists.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateAndExtractClaims(token)
	if err != nil {
		return nil, err
	}

	return s.UserByID(ctx, claims.UserID)
}

// UserByID looks up an already-authenticated subject. Returns nil, not an
// error, when the user no longer exists.
func (s *AuthService) UserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

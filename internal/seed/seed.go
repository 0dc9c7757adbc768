// Package seed provisions baseline data the application expects at startup.
package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/hillcrest/college-backend/internal/app/models"
	"github.com/hillcrest/college-backend/internal/app/repositories"
	"github.com/hillcrest/college-backend/internal/pkg/auth"
	"github.com/hillcrest/college-backend/internal/pkg/logger"
)

// EnsureAdminUser creates the default admin account when it does not exist.
// The operation is idempotent: an existing account with the configured email
// is left untouched, including its password.
func EnsureAdminUser(ctx context.Context, userRepo *repositories.UserRepository, adminEmail, adminPassword string) error {
	if adminEmail == "" || adminPassword == "" {
		logger.Debug().Msg("Admin seed credentials not configured, skipping")
		return nil
	}

	email := strings.ToLower(adminEmail)

	exists, err := userRepo.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Name:     "Administrator",
		Email:    email,
		Password: hashed,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info().Str("email", email).Msg("Default admin user created")
	return nil
}

package migration

import (
	"context"
	"errors"

	"github.com/artify-ai/artify-backend/internal/domain/entity"
	errs "github.com/artify-ai/artify-backend/internal/domain/error"
	coreport "github.com/artify-ai/artify-backend/internal/domain/port/core"
	"github.com/artify-ai/artify-backend/internal/domain/port/persistence"
	"github.com/artify-ai/artify-backend/internal/domain/port/security"
)

// SeedDefaultAdmin creates the configured admin account if it does not
// exist yet. Empty email or password skips seeding.
func SeedDefaultAdmin(
	ctx context.Context,
	userRepo persistence.UserRepository,
	hasher security.PasswordHasher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	email, password string,
) error {
	if email == "" || password == "" {
		logger.Info("No default admin configured, skipping seed", nil)
		return nil
	}

	_, err := userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	admin, err := entity.NewUser(email, hash, timeProvider)
	if err != nil {
		return err
	}
	admin.Role = entity.RoleAdmin

	if err := userRepo.Create(ctx, admin); err != nil {
		// Another instance may have seeded concurrently
		if errors.Is(err, errs.ErrDuplicateUser) {
			return nil
		}
		return err
	}

	logger.Info("Default admin account created", map[string]any{
		"email": email,
	})
	return nil
}

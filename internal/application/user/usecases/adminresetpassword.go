package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 6

// AdminResetPasswordUseCase sets a new password for any active account
// without knowing the old one, and clears any lockout. Used from the CLI.
type AdminResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewAdminResetPasswordUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *AdminResetPasswordUseCase {
	return &AdminResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *AdminResetPasswordUseCase) Execute(ctx context.Context, username, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return errors.NewValidationError(fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	target, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return errors.NewNotFoundError("User not found")
	}

	hash, err := uc.passwordHasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := uc.userRepo.UpdatePassword(ctx, target.ID(), hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if err := uc.userRepo.ResetFailedLogins(ctx, target.ID()); err != nil {
		uc.logger.Warnw("failed to clear lockout after password reset", "user_id", target.ID(), "error", err)
	}

	uc.logger.Infow("password reset by administrator", "user_id", target.ID(), "username", target.Username())
	return nil
}

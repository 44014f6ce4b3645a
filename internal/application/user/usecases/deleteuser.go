package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// DeleteUserUseCase deactivates an account. Tickets and comments that
// reference the user stay in place.
type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, id int64) error {
	target, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return errors.NewNotFoundError("User not found")
	}

	if target.Role().IsSuperAdmin() {
		if err := ensureAnotherSuperAdmin(ctx, uc.userRepo, "Cannot delete the last super admin user"); err != nil {
			return err
		}
	}

	if err := uc.userRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete user", "user_id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	uc.logger.Infow("user deactivated", "user_id", id, "username", target.Username())
	return nil
}

func ensureAnotherSuperAdmin(ctx context.Context, repo user.Repository, message string) error {
	n, err := repo.CountActiveByRole(ctx, user.RoleSuperAdmin)
	if err != nil {
		return fmt.Errorf("failed to count super admins: %w", err)
	}
	if n <= 1 {
		return errors.NewValidationError(message)
	}
	return nil
}

package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// ChangePasswordUseCase lets a signed-in user replace their own password.
type ChangePasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewChangePasswordUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *ChangePasswordUseCase) Execute(ctx context.Context, userID int64, request dto.ChangePasswordRequest) error {
	uc.logger.Infow("executing change password use case", "user_id", userID)

	if request.NewPassword != request.ConfirmPassword {
		return errors.NewValidationError("Password confirmation does not match")
	}

	userEntity, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if userEntity == nil {
		return errors.NewNotFoundError("User not found")
	}

	if !uc.passwordHasher.Verify(request.CurrentPassword, userEntity.PasswordHash()) {
		uc.logger.Warnw("password change with wrong current password", "user_id", userID)
		return errors.NewValidationError("Current password is incorrect")
	}

	hash, err := uc.passwordHasher.Hash(request.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		uc.logger.Errorw("failed to update password", "user_id", userID, "error", err)
		return fmt.Errorf("failed to update password: %w", err)
	}

	uc.logger.Infow("password changed successfully", "user_id", userID)
	return nil
}

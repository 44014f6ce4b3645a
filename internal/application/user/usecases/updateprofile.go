package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute updates the caller's own identity fields. Role and active flag
// are carried over from the stored record.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, userID int64, request dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	userEntity, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	if err := ensureIdentityAvailable(ctx, uc.userRepo, request.Username, request.Email, userID); err != nil {
		return nil, err
	}

	if err := userEntity.UpdateProfile(request.Username, request.Email, request.FirstName, request.LastName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", userID)
	return dto.ToUserResponse(userEntity), nil
}

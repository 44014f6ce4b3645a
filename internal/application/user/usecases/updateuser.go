package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateUserUseCase is the super-admin edit of any account.
type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, id int64, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
	uc.logger.Infow("executing update user use case", "user_id", id)

	userEntity, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("User not found")
	}

	role, err := user.NewRole(request.Role)
	if err != nil {
		return nil, errors.NewValidationError("Invalid role")
	}
	active := userEntity.IsActive()
	if request.Active != nil {
		active = *request.Active
	}

	// demoting or deactivating the last super admin would lock everyone out
	if userEntity.Role().IsSuperAdmin() && (!role.IsSuperAdmin() || !active) {
		if err := ensureAnotherSuperAdmin(ctx, uc.userRepo, "Cannot demote or deactivate the last super admin user"); err != nil {
			return nil, err
		}
	}

	if err := ensureIdentityAvailable(ctx, uc.userRepo, request.Username, request.Email, id); err != nil {
		return nil, err
	}

	if err := userEntity.UpdateProfile(request.Username, request.Email, request.FirstName, request.LastName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := userEntity.ChangeRole(role); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	userEntity.SetActive(active)

	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		if errors.IsConflictError(err) || errors.IsNotFoundError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update user", "user_id", id, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", id, "role", role, "active", active)
	return dto.ToUserResponse(userEntity), nil
}

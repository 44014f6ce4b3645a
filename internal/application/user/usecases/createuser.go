package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher user.PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	uc.logger.Infow("executing create user use case", "username", request.Username, "role", request.Role)

	role, err := user.NewRole(request.Role)
	if err != nil {
		return nil, errors.NewValidationError("Invalid role")
	}

	if err := ensureIdentityAvailable(ctx, uc.userRepo, request.Username, request.Email, 0); err != nil {
		return nil, err
	}

	hash, err := uc.passwordHasher.Hash(request.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(request.Username, request.Email, hash, role, request.FirstName, request.LastName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "username", request.Username, "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.ToUserResponse(newUser), nil
}

// ensureIdentityAvailable rejects a username or email that belongs to a
// different active user. selfID is the user being edited, or 0.
func ensureIdentityAvailable(ctx context.Context, repo user.Repository, username, email string, selfID int64) error {
	byName, err := repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if byName != nil && byName.ID() != selfID {
		return errors.NewConflictError("Username or email already exists")
	}

	byEmail, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if byEmail != nil && byEmail.ID() != selfID {
		return errors.NewConflictError("Username or email already exists")
	}
	return nil
}

package handlers

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
)

// Service interfaces for the handlers in this package - enables unit
// testing with mocks.

type authenticator interface {
	Login(ctx context.Context, username, password, ip string) (*user.User, error)
}

type userManager interface {
	CreateUser(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUser(ctx context.Context, id int64, request dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, id int64) error
	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
}

type profileManager interface {
	GetUser(ctx context.Context, id int64) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, id int64, request dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, id int64, request dto.ChangePasswordRequest) error
}

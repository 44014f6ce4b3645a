package user

import (
	"context"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/application/user/usecases"
	domainUser "helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// Service is the application service that orchestrates the account use
// cases for handlers and the CLI.
type Service struct {
	loginUC          *usecases.LoginWithPasswordUseCase
	createUserUC     *usecases.CreateUserUseCase
	updateUserUC     *usecases.UpdateUserUseCase
	deleteUserUC     *usecases.DeleteUserUseCase
	getUserUC        *usecases.GetUserUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	resetPasswordUC  *usecases.AdminResetPasswordUseCase
	userRepo         domainUser.Repository
	logger           logger.Interface
}

func NewService(
	userRepo domainUser.Repository,
	passwordHasher domainUser.PasswordHasher,
	policy *domainUser.SecurityPolicy,
	logger logger.Interface,
) *Service {
	return &Service{
		loginUC:          usecases.NewLoginWithPasswordUseCase(userRepo, passwordHasher, policy, logger),
		createUserUC:     usecases.NewCreateUserUseCase(userRepo, passwordHasher, logger),
		updateUserUC:     usecases.NewUpdateUserUseCase(userRepo, logger),
		deleteUserUC:     usecases.NewDeleteUserUseCase(userRepo, logger),
		getUserUC:        usecases.NewGetUserUseCase(userRepo, logger),
		updateProfileUC:  usecases.NewUpdateProfileUseCase(userRepo, logger),
		changePasswordUC: usecases.NewChangePasswordUseCase(userRepo, passwordHasher, logger),
		resetPasswordUC:  usecases.NewAdminResetPasswordUseCase(userRepo, passwordHasher, logger),
		userRepo:         userRepo,
		logger:           logger,
	}
}

func (s *Service) Login(ctx context.Context, username, password, ip string) (*domainUser.User, error) {
	return s.loginUC.Execute(ctx, usecases.LoginWithPasswordCommand{
		Username:  username,
		Password:  password,
		IPAddress: ip,
	})
}

// FindByID returns the active user or (nil, nil). The session gate uses it
// to re-check every request.
func (s *Service) FindByID(ctx context.Context, id int64) (*domainUser.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	return s.createUserUC.Execute(ctx, request)
}

func (s *Service) UpdateUser(ctx context.Context, id int64, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return s.updateUserUC.Execute(ctx, id, request)
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteUserUC.Execute(ctx, id)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return s.getUserUC.ExecuteByID(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	return s.getUserUC.ExecuteList(ctx)
}

func (s *Service) ListStaff(ctx context.Context) ([]*dto.UserResponse, error) {
	return s.getUserUC.ExecuteListStaff(ctx)
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, request dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return s.updateProfileUC.Execute(ctx, id, request)
}

func (s *Service) ChangePassword(ctx context.Context, id int64, request dto.ChangePasswordRequest) error {
	return s.changePasswordUC.Execute(ctx, id, request)
}

func (s *Service) ResetPassword(ctx context.Context, username, newPassword string) error {
	return s.resetPasswordUC.Execute(ctx, username, newPassword)
}

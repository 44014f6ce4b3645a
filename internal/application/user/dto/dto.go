package dto

import (
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/mapper"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Redirect string `json:"redirect" form:"redirect"`
}

type CreateUserRequest struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required,min=6"`
	Role      string `json:"role" form:"role" binding:"required,oneof=staff admin super_admin"`
	FirstName string `json:"first_name" form:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" form:"last_name" binding:"required,max=50"`
}

// UpdateUserRequest is the super-admin edit form. A nil Active leaves the
// flag unchanged.
type UpdateUserRequest struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Role      string `json:"role" form:"role" binding:"required,oneof=staff admin super_admin"`
	FirstName string `json:"first_name" form:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" form:"last_name" binding:"required,max=50"`
	Active    *bool  `json:"active" form:"active"`
}

type UpdateProfileRequest struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	FirstName string `json:"first_name" form:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" form:"last_name" binding:"required,max=50"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

type UserResponse struct {
	ID                  int64      `json:"id"`
	Username            string     `json:"username"`
	Email               string     `json:"email"`
	Role                string     `json:"role"`
	FirstName           string     `json:"first_name"`
	LastName            string     `json:"last_name"`
	FullName            string     `json:"full_name"`
	Active              bool       `json:"active"`
	FailedLoginAttempts int        `json:"failed_login_attempts"`
	LockedUntil         *time.Time `json:"locked_until,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func ToUserResponse(u *user.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:                  u.ID(),
		Username:            u.Username(),
		Email:               u.Email(),
		Role:                u.Role().String(),
		FirstName:           u.FirstName(),
		LastName:            u.LastName(),
		FullName:            u.FullName(),
		Active:              u.IsActive(),
		FailedLoginAttempts: u.FailedLoginAttempts(),
		LockedUntil:         u.LockedUntil(),
		CreatedAt:           u.CreatedAt(),
		UpdatedAt:           u.UpdatedAt(),
	}
}

func ToUserResponses(users []*user.User) []*UserResponse {
	return mapper.MapSlice(users, ToUserResponse)
}

package handlers

import (
	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/infrastructure/session"
)

// LoginPageResponse is returned by GET /auth/login.
type LoginPageResponse struct {
	Redirect string         `json:"redirect"`
	Flash    *session.Flash `json:"flash,omitempty"`
}

// LoginResponse tells the client where to go after signing in.
type LoginResponse struct {
	User     *dto.UserResponse `json:"user"`
	Redirect string            `json:"redirect"`
}

type LogoutResponse struct {
	Redirect string `json:"redirect"`
}

type UserListResponse struct {
	Users []*dto.UserResponse `json:"users"`
	Flash *session.Flash      `json:"flash,omitempty"`
}

type ProfileResponse struct {
	User  *dto.UserResponse `json:"user"`
	Flash *session.Flash    `json:"flash,omitempty"`
}

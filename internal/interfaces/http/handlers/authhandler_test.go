package handlers

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/application/user/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/session"
	"helpdesk/internal/interfaces/http/handlers/testutil"
	"helpdesk/internal/shared/errors"
)

// =====================================================================
// Mock services
// =====================================================================

type mockAuthenticator struct {
	user *user.User
	err  error
	ip   string
}

func (m *mockAuthenticator) Login(ctx context.Context, username, password, ip string) (*user.User, error) {
	m.ip = ip
	return m.user, m.err
}

type mockUserService struct {
	CreateUserFunc     func(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error)
	UpdateUserFunc     func(ctx context.Context, id int64, request dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUserFunc     func(ctx context.Context, id int64) error
	GetUserFunc        func(ctx context.Context, id int64) (*dto.UserResponse, error)
	ListUsersFunc      func(ctx context.Context) ([]*dto.UserResponse, error)
	UpdateProfileFunc  func(ctx context.Context, id int64, request dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePasswordFunc func(ctx context.Context, id int64, request dto.ChangePasswordRequest) error
}

func (m *mockUserService) CreateUser(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
	return m.CreateUserFunc(ctx, request)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return m.UpdateUserFunc(ctx, id, request)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.DeleteUserFunc(ctx, id)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return m.GetUserFunc(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	return m.ListUsersFunc(ctx)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id int64, request dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return m.UpdateProfileFunc(ctx, id, request)
}

func (m *mockUserService) ChangePassword(ctx context.Context, id int64, request dto.ChangePasswordRequest) error {
	return m.ChangePasswordFunc(ctx, id, request)
}

func createTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(user.UserData{
		ID:        1,
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		Role:      role,
		FirstName: "John",
		LastName:  "Doe",
		Active:    true,
	})
	require.NoError(t, err)
	return u
}

// =====================================================================
// AuthHandler
// =====================================================================

func TestAuthHandler_Login_Success(t *testing.T) {
	sessions, store := testutil.NewSessions()
	auth := &mockAuthenticator{user: createTestUser(t, user.RoleAdmin)}
	h := NewAuthHandler(auth, sessions, testutil.NewMockLogger())

	form := url.Values{"username": {"jdoe"}, "password": {"secret"}, "redirect": {"/tickets/list?status=open"}}
	c, w := testutil.NewFormContext(http.MethodPost, "/auth/login", form)
	h.Login(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data LoginResponse
	require.NoError(t, testutil.ParseData(w, &data))
	assert.Equal(t, "/tickets/list?status=open", data.Redirect)
	assert.Equal(t, "jdoe", data.User.Username)
	assert.Equal(t, 1, store.Len())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "helpdesk_session=")
	assert.Contains(t, w.Header().Get("Set-Cookie"), "HttpOnly")
}

func TestAuthHandler_Login_RegeneratesSessionID(t *testing.T) {
	sessions, store := testutil.NewSessions()
	h := NewAuthHandler(&mockAuthenticator{user: createTestUser(t, user.RoleStaff)}, sessions, testutil.NewMockLogger())

	c, _ := testutil.NewFormContext(http.MethodPost, "/auth/login", url.Values{"username": {"jdoe"}, "password": {"x"}})
	testutil.SetAuthContext(c, 99, user.RoleStaff)
	require.NoError(t, store.Save(context.Background(), "test-session-id", &session.Data{UserID: 1}))
	h.Login(c)

	assert.NotEqual(t, "test-session-id", c.GetString("session_id"))
	old, err := store.Get(context.Background(), "test-session-id")
	require.NoError(t, err)
	assert.Nil(t, old)
}

func TestAuthHandler_Login_RejectsOffsiteRedirect(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	h := NewAuthHandler(&mockAuthenticator{user: createTestUser(t, user.RoleStaff)}, sessions, testutil.NewMockLogger())

	for _, target := range []string{"https://evil.example", "//evil.example", "tickets"} {
		form := url.Values{"username": {"jdoe"}, "password": {"x"}, "redirect": {target}}
		c, w := testutil.NewFormContext(http.MethodPost, "/auth/login", form)
		h.Login(c)

		var data LoginResponse
		require.NoError(t, testutil.ParseData(w, &data))
		assert.Equal(t, "/tickets", data.Redirect, target)
	}
}

func TestAuthHandler_Login_Failures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantType string
	}{
		{"invalid credentials", errors.NewInvalidCredentialsError(), http.StatusUnauthorized, "invalid_credentials"},
		{"locked", errors.NewAccountLockedError(), http.StatusForbidden, "account_locked"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions, store := testutil.NewSessions()
			h := NewAuthHandler(&mockAuthenticator{err: tt.err}, sessions, testutil.NewMockLogger())

			c, w := testutil.NewFormContext(http.MethodPost, "/auth/login", url.Values{"username": {"jdoe"}, "password": {"x"}})
			h.Login(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantType, resp.Error.Type)
			assert.Equal(t, 0, store.Len())
		})
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	h := NewAuthHandler(&mockAuthenticator{}, sessions, testutil.NewMockLogger())

	c, w := testutil.NewFormContext(http.MethodPost, "/auth/login", url.Values{"username": {"jdoe"}})
	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password is required")
}

func TestAuthHandler_LoginPage(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	h := NewAuthHandler(&mockAuthenticator{}, sessions, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/auth/login?redirect=%2Ftickets%2F3", nil)
	h.LoginPage(c)
	require.Equal(t, http.StatusOK, w.Code)
	var data LoginPageResponse
	require.NoError(t, testutil.ParseData(w, &data))
	assert.Equal(t, "/tickets/3", data.Redirect)

	c, w = testutil.NewTestContext(http.MethodGet, "/auth/login", nil)
	testutil.SetAuthContext(c, 1, user.RoleStaff)
	h.LoginPage(c)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/tickets", w.Header().Get("Location"))
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions, store := testutil.NewSessions()
	h := NewAuthHandler(&mockAuthenticator{}, sessions, testutil.NewMockLogger())
	require.NoError(t, store.Save(context.Background(), "test-session-id", &session.Data{UserID: 1}))

	c, w := testutil.NewTestContext(http.MethodPost, "/auth/logout", nil)
	testutil.SetAuthContext(c, 1, user.RoleStaff)
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, store.Len())
	assert.Contains(t, w.Header().Get("Set-Cookie"), "Max-Age=0")
}

// =====================================================================
// UserHandler
// =====================================================================

func TestUserHandler_CreateUser(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	svc := &mockUserService{
		CreateUserFunc: func(ctx context.Context, request dto.CreateUserRequest) (*dto.UserResponse, error) {
			if request.Username == "taken" {
				return nil, errors.NewConflictError("Username or email already exists")
			}
			return &dto.UserResponse{ID: 5, Username: request.Username, Role: request.Role}, nil
		},
	}
	h := NewUserHandler(svc, sessions, testutil.NewMockLogger())

	body := map[string]string{
		"username":   "newtech",
		"email":      "newtech@example.com",
		"password":   "secret1",
		"role":       "staff",
		"first_name": "New",
		"last_name":  "Tech",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/users", body)
	testutil.SetAuthContext(c, 1, user.RoleSuperAdmin)
	h.CreateUser(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	body["username"] = "taken"
	c, w = testutil.NewTestContext(http.MethodPost, "/admin/users", body)
	testutil.SetAuthContext(c, 1, user.RoleSuperAdmin)
	h.CreateUser(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Username or email already exists")
}

func TestUserHandler_CreateUser_ShortPassword(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	h := NewUserHandler(&mockUserService{}, sessions, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/users", map[string]string{
		"username":   "newtech",
		"email":      "newtech@example.com",
		"password":   "123",
		"role":       "staff",
		"first_name": "New",
		"last_name":  "Tech",
	})
	h.CreateUser(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password must be at least 6 characters long")
}

func TestUserHandler_DeleteUser_LastSuperAdmin(t *testing.T) {
	sessions, store := testutil.NewSessions()
	svc := &mockUserService{
		DeleteUserFunc: func(ctx context.Context, id int64) error {
			return errors.NewValidationError("Cannot delete the last super admin user")
		},
		ListUsersFunc: func(ctx context.Context) ([]*dto.UserResponse, error) {
			return []*dto.UserResponse{{ID: 1, Username: "admin"}}, nil
		},
	}
	h := NewUserHandler(svc, sessions, testutil.NewMockLogger())
	require.NoError(t, store.Save(context.Background(), "test-session-id", &session.Data{UserID: 1}))

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/users/1/delete", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetAuthContext(c, 1, user.RoleSuperAdmin)
	h.DeleteUser(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the next list page shows the error flash once
	data, err := store.Get(context.Background(), "test-session-id")
	require.NoError(t, err)
	require.NotNil(t, data.Flash)

	c, w = testutil.NewTestContext(http.MethodGet, "/admin/users", nil)
	c.Set("session", data)
	c.Set("session_id", "test-session-id")
	h.ListUsers(c)
	var page UserListResponse
	require.NoError(t, testutil.ParseData(w, &page))
	require.NotNil(t, page.Flash)
	assert.Equal(t, "error", page.Flash.Type)
	assert.Equal(t, "Cannot delete the last super admin user", page.Flash.Message)

	after, err := store.Get(context.Background(), "test-session-id")
	require.NoError(t, err)
	assert.Nil(t, after.Flash)
}

func TestUserHandler_UpdateUser(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	var gotActive *bool
	svc := &mockUserService{
		UpdateUserFunc: func(ctx context.Context, id int64, request dto.UpdateUserRequest) (*dto.UserResponse, error) {
			gotActive = request.Active
			return &dto.UserResponse{ID: id, Username: request.Username, Active: *request.Active}, nil
		},
	}
	h := NewUserHandler(svc, sessions, testutil.NewMockLogger())

	form := url.Values{
		"username":   {"tech"},
		"email":      {"tech@example.com"},
		"role":       {"admin"},
		"first_name": {"Tech"},
		"last_name":  {"Person"},
		"active":     {"false"},
	}
	c, w := testutil.NewFormContext(http.MethodPost, "/admin/users/2/edit", form)
	testutil.SetURLParam(c, "id", "2")
	testutil.SetAuthContext(c, 1, user.RoleSuperAdmin)
	h.UpdateUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotActive)
	assert.False(t, *gotActive)
}

func TestUserHandler_GetUser_NotFound(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	svc := &mockUserService{
		GetUserFunc: func(ctx context.Context, id int64) (*dto.UserResponse, error) {
			return nil, errors.NewNotFoundError("User not found")
		},
	}
	h := NewUserHandler(svc, sessions, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/users/42", nil)
	testutil.SetURLParam(c, "id", "42")
	h.GetUser(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// ProfileHandler
// =====================================================================

func TestProfileHandler_ChangePassword(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	var gotID int64
	svc := &mockUserService{
		ChangePasswordFunc: func(ctx context.Context, id int64, request dto.ChangePasswordRequest) error {
			gotID = id
			if request.CurrentPassword != "old-secret" {
				return errors.NewValidationError("Current password is incorrect")
			}
			return nil
		},
	}
	h := NewProfileHandler(svc, sessions, testutil.NewMockLogger())

	body := map[string]string{"current_password": "old-secret", "new_password": "new-secret", "confirm_password": "new-secret"}
	c, w := testutil.NewTestContext(http.MethodPost, "/admin/profile/password", body)
	testutil.SetAuthContext(c, 7, user.RoleAdmin)
	h.ChangePassword(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(7), gotID)

	body["current_password"] = "wrong"
	c, w = testutil.NewTestContext(http.MethodPost, "/admin/profile/password", body)
	testutil.SetAuthContext(c, 7, user.RoleAdmin)
	h.ChangePassword(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Current password is incorrect")
}

func TestProfileHandler_RequiresUser(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	h := NewProfileHandler(&mockUserService{}, sessions, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/admin/profile", nil)
	h.GetProfile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	sessions, _ := testutil.NewSessions()
	svc := &mockUserService{
		UpdateProfileFunc: func(ctx context.Context, id int64, request dto.UpdateProfileRequest) (*dto.UserResponse, error) {
			return &dto.UserResponse{ID: id, Username: request.Username, Role: "admin"}, nil
		},
	}
	h := NewProfileHandler(svc, sessions, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/admin/profile", map[string]string{
		"username":   "jdoe",
		"email":      "jdoe@example.com",
		"first_name": "John",
		"last_name":  "Doe",
	})
	testutil.SetAuthContext(c, 7, user.RoleAdmin)
	h.UpdateProfile(c)

	require.Equal(t, http.StatusOK, w.Code)
	var data dto.UserResponse
	require.NoError(t, testutil.ParseData(w, &data))
	assert.Equal(t, "admin", data.Role)
}

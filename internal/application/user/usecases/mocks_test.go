package usecases

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/domain/user"
)

type mockUserRepository struct {
	CreateFunc                func(ctx context.Context, u *user.User) error
	GetByIDFunc               func(ctx context.Context, id int64) (*user.User, error)
	GetByUsernameFunc         func(ctx context.Context, username string) (*user.User, error)
	GetByEmailFunc            func(ctx context.Context, email string) (*user.User, error)
	ListFunc                  func(ctx context.Context) ([]*user.User, error)
	UpdateFunc                func(ctx context.Context, u *user.User) error
	UpdatePasswordFunc        func(ctx context.Context, id int64, hash string) error
	DeleteFunc                func(ctx context.Context, id int64) error
	CountActiveByRoleFunc     func(ctx context.Context, role user.Role) (int64, error)
	IncrementFailedLoginsFunc func(ctx context.Context, id int64) (int, error)
	ResetFailedLoginsFunc     func(ctx context.Context, id int64) error
	LockFunc                  func(ctx context.Context, id int64, until time.Time) error
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*user.User{}, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) CountActiveByRole(ctx context.Context, role user.Role) (int64, error) {
	if m.CountActiveByRoleFunc != nil {
		return m.CountActiveByRoleFunc(ctx, role)
	}
	return 0, nil
}

func (m *mockUserRepository) IncrementFailedLogins(ctx context.Context, id int64) (int, error) {
	if m.IncrementFailedLoginsFunc != nil {
		return m.IncrementFailedLoginsFunc(ctx, id)
	}
	return 1, nil
}

func (m *mockUserRepository) ResetFailedLogins(ctx context.Context, id int64) error {
	if m.ResetFailedLoginsFunc != nil {
		return m.ResetFailedLoginsFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) Lock(ctx context.Context, id int64, until time.Time) error {
	if m.LockFunc != nil {
		return m.LockFunc(ctx, id, until)
	}
	return nil
}

// plainHasher stands in for bcrypt so tests stay fast.
type plainHasher struct {
	dummyCalls int
}

func (h *plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (h *plainHasher) Verify(password, hash string) bool {
	return strings.TrimPrefix(hash, "hashed:") == password && strings.HasPrefix(hash, "hashed:")
}

func (h *plainHasher) CompareDummy(string) {
	h.dummyCalls++
}

func newTestUser(id int64, username string, role user.Role, password string) *user.User {
	u, err := user.ReconstructUser(user.UserData{
		ID:           id,
		Username:     username,
		Email:        username + "@company.com",
		PasswordHash: "hashed:" + password,
		Role:         role,
		FirstName:    "Test",
		LastName:     "User",
		Active:       true,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		panic(err)
	}
	return u
}

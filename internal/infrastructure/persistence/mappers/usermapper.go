package mappers

import (
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/database"
)

// UserColumns is the column list every user query selects.
const UserColumns = `id, username, email, password, role, first_name, last_name, active,
	failed_login_attempts, locked_until, created_at, updated_at`

// UserMapper converts between user rows and domain entities.
type UserMapper interface {
	ToEntity(row database.Row) (*user.User, error)
	ToEntities(rows []database.Row) ([]*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(row database.Row) (*user.User, error) {
	if row == nil {
		return nil, nil
	}

	u, err := user.ReconstructUser(user.UserData{
		ID:                  row.Int64("id"),
		Username:            row.String("username"),
		Email:               row.String("email"),
		PasswordHash:        row.String("password"),
		Role:                user.Role(row.String("role")),
		FirstName:           row.String("first_name"),
		LastName:            row.String("last_name"),
		Active:              row.Bool("active"),
		FailedLoginAttempts: row.Int("failed_login_attempts"),
		LockedUntil:         row.NullTime("locked_until"),
		CreatedAt:           row.Time("created_at"),
		UpdatedAt:           row.Time("updated_at"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to map user row: %w", err)
	}
	return u, nil
}

func (m *userMapper) ToEntities(rows []database.Row) ([]*user.User, error) {
	users := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		u, err := m.ToEntity(row)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UserRepository stores users through the backend-neutral Store.
type UserRepository struct {
	store  database.Store
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(store database.Store, logger logger.Interface) user.Repository {
	return &UserRepository{
		store:  store,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	res, err := r.store.Run(ctx,
		`INSERT INTO users (username, email, password, role, first_name, last_name, active)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username(), u.Email(), u.PasswordHash(), u.Role().String(), u.FirstName(), u.LastName(), boolToInt(u.IsActive()),
	)
	if err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("Username or email already exists")
		}
		r.logger.Errorw("failed to create user in database", "username", u.Username(), "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}
	if res.LastInsertID == nil {
		return fmt.Errorf("failed to create user: no id returned")
	}

	if err := u.SetID(*res.LastInsertID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", u.ID(), "username", u.Username(), "role", u.Role())
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return r.getOne(ctx, "id", id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return r.getOne(ctx, "username", username)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.getOne(ctx, "email", email)
}

// getOne looks up an active user by a trusted column name.
func (r *UserRepository) getOne(ctx context.Context, column string, value any) (*user.User, error) {
	row, err := r.store.Get(ctx,
		"SELECT "+mappers.UserColumns+" FROM users WHERE "+column+" = ? AND active = 1",
		value,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}
	return r.mapper.ToEntity(row)
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	rows, err := r.store.All(ctx,
		"SELECT "+mappers.UserColumns+" FROM users ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return r.mapper.ToEntities(rows)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	res, err := r.store.Run(ctx,
		`UPDATE users
		SET username = ?, email = ?, role = ?, first_name = ?, last_name = ?,
			active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		u.Username(), u.Email(), u.Role().String(), u.FirstName(), u.LastName(), boolToInt(u.IsActive()), u.ID(),
	)
	if err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("Username or email already exists")
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	res, err := r.store.Run(ctx,
		"UPDATE users SET password = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.store.Run(ctx,
		"UPDATE users SET active = 0, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		id,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	if res.RowsAffected == 0 {
		return errors.NewNotFoundError("User not found")
	}
	return nil
}

func (r *UserRepository) CountActiveByRole(ctx context.Context, role user.Role) (int64, error) {
	row, err := r.store.Get(ctx,
		"SELECT COUNT(*) AS count FROM users WHERE role = ? AND active = 1",
		role.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to count users by role: %w", err)
	}
	if row == nil {
		return 0, nil
	}
	return row.Int64("count"), nil
}

// IncrementFailedLogins increments in SQL so concurrent failures are all
// counted, then reads the counter back.
func (r *UserRepository) IncrementFailedLogins(ctx context.Context, id int64) (int, error) {
	if _, err := r.store.Run(ctx,
		"UPDATE users SET failed_login_attempts = COALESCE(failed_login_attempts, 0) + 1 WHERE id = ?",
		id,
	); err != nil {
		return 0, fmt.Errorf("failed to increment failed logins: %w", err)
	}

	row, err := r.store.Get(ctx, "SELECT failed_login_attempts FROM users WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to read failed logins: %w", err)
	}
	if row == nil {
		return 0, errors.NewNotFoundError("User not found")
	}
	return row.Int("failed_login_attempts"), nil
}

func (r *UserRepository) ResetFailedLogins(ctx context.Context, id int64) error {
	if _, err := r.store.Run(ctx,
		"UPDATE users SET failed_login_attempts = 0, locked_until = NULL WHERE id = ?",
		id,
	); err != nil {
		return fmt.Errorf("failed to reset failed logins: %w", err)
	}
	return nil
}

func (r *UserRepository) Lock(ctx context.Context, id int64, until time.Time) error {
	if _, err := r.store.Run(ctx,
		"UPDATE users SET locked_until = ? WHERE id = ?",
		until.UTC(), id,
	); err != nil {
		return fmt.Errorf("failed to lock user: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

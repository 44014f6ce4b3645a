package user

import (
	"context"
	"time"
)

// Repository persists users. Lookups by id, username and email only see
// active users and return (nil, nil) when nothing matches.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List returns every user, active or not, newest first.
	List(ctx context.Context) ([]*User, error)
	// Update writes username, email, role, names and the active flag.
	Update(ctx context.Context, u *User) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// Delete deactivates the user.
	Delete(ctx context.Context, id int64) error
	CountActiveByRole(ctx context.Context, role Role) (int64, error)

	// IncrementFailedLogins atomically bumps the counter and returns the
	// value after the increment.
	IncrementFailedLogins(ctx context.Context, id int64) (int, error)
	// ResetFailedLogins zeroes the counter and clears any lock.
	ResetFailedLogins(ctx context.Context, id int64) error
	Lock(ctx context.Context, id int64, until time.Time) error
}

// PasswordHasher hashes and checks passwords. Verify never errors; a
// malformed hash is a mismatch.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

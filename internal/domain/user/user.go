package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

const minUsernameLength = 3

// User is a help-desk account. Accounts are never removed; deactivation is
// the delete operation.
type User struct {
	id                  int64
	username            string
	email               string
	passwordHash        string
	role                Role
	firstName           string
	lastName            string
	active              bool
	failedLoginAttempts int
	lockedUntil         *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewUser validates and builds an active user that has not been persisted.
func NewUser(username, email, passwordHash string, role Role, firstName, lastName string) (*User, error) {
	u := &User{
		passwordHash: passwordHash,
		active:       true,
	}
	if err := u.setProfile(username, email, firstName, lastName); err != nil {
		return nil, err
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	u.role = role

	now := time.Now().UTC()
	u.createdAt = now
	u.updatedAt = now
	return u, nil
}

// UserData is the persisted form of a User.
type UserData struct {
	ID                  int64
	Username            string
	Email               string
	PasswordHash        string
	Role                Role
	FirstName           string
	LastName            string
	Active              bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func ReconstructUser(d UserData) (*User, error) {
	if d.ID == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:                  d.ID,
		username:            d.Username,
		email:               d.Email,
		passwordHash:        d.PasswordHash,
		role:                d.Role,
		firstName:           d.FirstName,
		lastName:            d.LastName,
		active:              d.Active,
		failedLoginAttempts: d.FailedLoginAttempts,
		lockedUntil:         d.LockedUntil,
		createdAt:           d.CreatedAt,
		updatedAt:           d.UpdatedAt,
	}, nil
}

func (u *User) ID() int64 {
	return u.id
}

// SetID is called by the repository once the row is inserted.
func (u *User) SetID(id int64) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.firstName + " " + u.lastName)
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) FailedLoginAttempts() int {
	return u.failedLoginAttempts
}

func (u *User) LockedUntil() *time.Time {
	return u.lockedUntil
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

// IsLocked reports whether the lockout expiry is set and after now. It only
// looks at the state the user was loaded with.
func (u *User) IsLocked(now time.Time) bool {
	return u.lockedUntil != nil && u.lockedUntil.After(now)
}

// IsStaffMember reports whether the user can work tickets.
func (u *User) IsStaffMember() bool {
	return u.active && u.role.AtLeast(RoleStaff)
}

// UpdateProfile changes the identity fields and leaves role and active flag
// untouched.
func (u *User) UpdateProfile(username, email, firstName, lastName string) error {
	if err := u.setProfile(username, email, firstName, lastName); err != nil {
		return err
	}
	u.touch()
	return nil
}

func (u *User) ChangeRole(role Role) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.touch()
	return nil
}

func (u *User) SetActive(active bool) {
	u.active = active
	u.touch()
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.touch()
	return nil
}

func (u *User) setProfile(username, email, firstName, lastName string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	if len(username) < minUsernameLength {
		return fmt.Errorf("username must be at least %d characters", minUsernameLength)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("valid email is required")
	}
	if firstName == "" {
		return fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return fmt.Errorf("last name is required")
	}

	u.username = username
	u.email = email
	u.firstName = firstName
	u.lastName = lastName
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now().UTC()
}

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorHelpers(t *testing.T) {
	err := fmt.Errorf("wrap: %w", NewNotFoundError("Ticket not found", "id=42"))

	assert.True(t, IsAppError(err))
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsConflictError(err))

	appErr := GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, http.StatusNotFound, appErr.Code)
		assert.Equal(t, "not_found: Ticket not found (id=42)", appErr.Error())
	}

	assert.Nil(t, GetAppError(stderrors.New("plain")))
}

func TestAuthErrorUnwrapsToAppError(t *testing.T) {
	err := fmt.Errorf("login: %w", NewAccountLockedError())

	assert.True(t, IsAuthError(err))
	assert.True(t, IsAccountLocked(err))
	assert.True(t, ShouldLogAuthError(err))
	assert.True(t, IsSecurityEvent(err))

	appErr := GetAppError(err)
	if assert.NotNil(t, appErr) {
		assert.Equal(t, http.StatusForbidden, appErr.Code)
		assert.Equal(t, ErrorTypeAccountLocked, appErr.Type)
	}

	invalid := NewInvalidCredentialsError()
	assert.False(t, ShouldLogAuthError(invalid))
	assert.Equal(t, "Invalid username or password", invalid.Message)
	assert.True(t, ShouldLogAuthError(stderrors.New("db down")))
}

func TestIsDuplicateError(t *testing.T) {
	cases := []struct {
		msg  string
		want bool
	}{
		{"UNIQUE constraint failed: users.username", true},
		{"Error 1062 (23000): Duplicate entry 'bob' for key 'username'", true},
		{`ERROR: duplicate key value violates unique constraint "users_username_key"`, true},
		{"mssql: Cannot insert duplicate key row in object 'dbo.users'", true},
		{"connection refused", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsDuplicateError(stderrors.New(c.msg)), c.msg)
	}
	assert.False(t, IsDuplicateError(nil))
}

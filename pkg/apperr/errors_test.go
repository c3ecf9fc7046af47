package apperr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := Validation("Age", "must be greater than 0")

	assert.True(t, errors.Is(err, ErrValidation))

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Age", vErr.Field)
	assert.Contains(t, err.Error(), "Age")
}

func TestNotFoundError(t *testing.T) {
	err := NotFound("doctor", 42)

	assert.True(t, errors.Is(err, ErrNotFound))

	var nfErr *NotFoundError
	require.True(t, errors.As(err, &nfErr))
	assert.Equal(t, "doctor", nfErr.Kind)
	assert.Equal(t, "42", nfErr.Ref)

	byName := NotFoundByName("user", "ghost")
	assert.True(t, errors.Is(byName, ErrNotFound))
	assert.Contains(t, byName.Error(), "ghost")
}

func TestAlreadyLoggedInError(t *testing.T) {
	err := AlreadyLoggedIn(7)

	assert.True(t, errors.Is(err, ErrAlreadyLoggedIn))

	var alErr *AlreadyLoggedInError
	require.True(t, errors.As(err, &alErr))
	assert.Equal(t, uint(7), alErr.UserID)
}

func TestStorageErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("create user", cause)

	assert.True(t, errors.Is(err, ErrStorage))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "create user")
}

func TestDuplicateAndAuthErrors(t *testing.T) {
	assert.True(t, errors.Is(Duplicate("username", "Dr.Smith"), ErrDuplicate))
	assert.True(t, errors.Is(Auth("wrong password"), ErrAuth))
}

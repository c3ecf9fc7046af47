package apperr

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching across layers. The concrete types below
// carry the details; every one of them unwraps to its sentinel.
var (
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrDuplicate       = errors.New("duplicate value")
	ErrAuth            = errors.New("authentication failed")
	ErrAlreadyLoggedIn = errors.New("user already logged in")
	ErrStorage         = errors.New("storage failure")
)

// ValidationError reports a malformed or out-of-domain scalar field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a referenced ID that is missing from its entity set.
// Ref is the textual form of the reference (a numeric ID or a username).
type NotFoundError struct {
	Kind string
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s with id %s", e.Kind, e.Ref)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

func NotFound(kind string, id uint) error {
	return &NotFoundError{Kind: kind, Ref: fmt.Sprintf("%d", id)}
}

func NotFoundByName(kind, name string) error {
	return &NotFoundError{Kind: kind, Ref: name}
}

// DuplicateError reports a uniqueness collision.
type DuplicateError struct {
	Field string
	Value string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Field, e.Value)
}

func (e *DuplicateError) Unwrap() error { return ErrDuplicate }

func Duplicate(field, value string) error {
	return &DuplicateError{Field: field, Value: value}
}

// AuthError reports a failed credential check.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

func (e *AuthError) Unwrap() error { return ErrAuth }

func Auth(reason string) error { return &AuthError{Reason: reason} }

// AlreadyLoggedInError reports a violation of the single active session rule.
type AlreadyLoggedInError struct {
	UserID uint
}

func (e *AlreadyLoggedInError) Error() string {
	return fmt.Sprintf("user %d is already logged in", e.UserID)
}

func (e *AlreadyLoggedInError) Unwrap() error { return ErrAlreadyLoggedIn }

func AlreadyLoggedIn(userID uint) error {
	return &AlreadyLoggedInError{UserID: userID}
}

// StorageError wraps an unrecoverable persistence failure. It is surfaced
// as-is, never retried.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() []error { return []error{ErrStorage, e.Err} }

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

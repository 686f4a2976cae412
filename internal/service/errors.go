package service

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrCompanyConflict       = errors.New("company with this name already exists")
	ErrCompanyNotProvisioned = errors.New("company has no identity organization")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserConflict          = errors.New("user with this email already exists")
)

// ValidationError reports input that violates a field constraint.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ProviderError wraps a failure returned by an external provider.
type ProviderError struct {
	Provider string
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

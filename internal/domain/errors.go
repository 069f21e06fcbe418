package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all services. Repositories and services wrap these
// sentinels with %w; the HTTP layer matches them with errors.Is to pick a
// status code.
var (
	ErrNotFound       = errors.New("entity not found")
	ErrExists         = errors.New("entity already exists")
	ErrValidation     = errors.New("validation failed")
	ErrAuthentication = errors.New("authentication failed")
)

// NotFoundf wraps ErrNotFound with a formatted detail message.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Existsf wraps ErrExists with a formatted detail message.
func Existsf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrExists, fmt.Sprintf(format, args...))
}

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Authenticationf wraps ErrAuthentication with a formatted detail message.
func Authenticationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAuthentication, fmt.Sprintf(format, args...))
}

package service

import "errors"

var (
	// ErrValidation is returned for empty or malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCredentials is returned by login for an unknown email, an
	// inactive account or a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrForbidden is returned when the actor lacks the Admin role.
	ErrForbidden = errors.New("forbidden")

	// ErrLastAdmin is returned when removing the only Admin of a workspace.
	ErrLastAdmin = errors.New("cannot remove the last workspace admin")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionIsNotSpecified is returned when no application version is configured.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

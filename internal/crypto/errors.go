package crypto

import "errors"

var (
	// ErrPrimaryHashUnavailable is reported (logged, never returned) when the
	// argon2id path fails and the SHA-512 fallback is used instead.
	ErrPrimaryHashUnavailable = errors.New("primary hash algorithm unavailable")

	// ErrMalformedDigest is returned when a stored digest cannot be parsed.
	ErrMalformedDigest = errors.New("malformed digest")
)

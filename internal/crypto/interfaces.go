package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns credentials into tagged digests and checks candidates
// against stored digests. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash derives a digest of secret with the primary algorithm (argon2id).
	// If the primary algorithm is unavailable the salted SHA-512 fallback is
	// used and a warning is logged; the returned result is tagged with the
	// algorithm that actually produced it.
	Hash(ctx context.Context, secret string) (HashResult, error)

	// Verify reports whether candidate matches the stored digest. It never
	// panics and returns false for malformed or unknown digests.
	Verify(stored, candidate string) bool
}

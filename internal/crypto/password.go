// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/fortuna/internal/logger"
	"golang.org/x/crypto/argon2"
)

// Algorithm names the function that produced a digest.
type Algorithm string

const (
	AlgorithmArgon2id Algorithm = "argon2id"
	AlgorithmSHA512   Algorithm = "sha512"
)

// HashResult is a digest tagged with the algorithm that produced it.
// Digest is self-describing: it starts with "$<algorithm>$".
type HashResult struct {
	Algorithm Algorithm
	Digest    string
}

const (
	argonSaltLen = 16

	// upper bounds accepted when parsing stored digests
	maxArgonMemory  = 1024 * 1024
	maxArgonTime    = 16
	maxArgonThreads = 64
	maxArgonKeyLen  = 128
)

// passwordHasher is the default implementation of [PasswordHasher].
type passwordHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32

	// random is the salt source for argon2id; a failing read makes the
	// primary algorithm unavailable.
	random io.Reader
}

// NewPasswordHasher constructs a [PasswordHasher] with the argon2id
// parameters recommended by golang.org/x/crypto/argon2:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewPasswordHasher() PasswordHasher {
	return newPasswordHasher(rand.Reader)
}

func newPasswordHasher(random io.Reader) *passwordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
		random:       random,
	}
}

// Hash implements [PasswordHasher].
func (h *passwordHasher) Hash(ctx context.Context, secret string) (HashResult, error) {
	digest, err := h.hashArgon2id(secret)
	if err == nil {
		return HashResult{Algorithm: AlgorithmArgon2id, Digest: digest}, nil
	}

	logger.FromContext(ctx).Warn().
		Err(fmt.Errorf("%w: %w", ErrPrimaryHashUnavailable, err)).
		Str("func", "passwordHasher.Hash").
		Str("algorithm", string(AlgorithmSHA512)).
		Msg("hash fallback used")

	return HashResult{Algorithm: AlgorithmSHA512, Digest: hashSHA512(secret)}, nil
}

// Verify implements [PasswordHasher]. The stored algorithm tag decides how
// the candidate is hashed.
func (h *passwordHasher) Verify(stored, candidate string) bool {
	switch {
	case strings.HasPrefix(stored, "$"+string(AlgorithmArgon2id)+"$"):
		return verifyArgon2id(stored, candidate)
	case strings.HasPrefix(stored, "$"+string(AlgorithmSHA512)+"$"):
		return subtle.ConstantTimeCompare([]byte(stored), []byte(hashSHA512(candidate))) == 1
	default:
		return false
	}
}

func (h *passwordHasher) hashArgon2id(secret string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(h.random, salt); err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt, h.argonTime, h.argonMemory, h.argonThreads, h.argonKeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		AlgorithmArgon2id,
		argon2.Version,
		h.argonMemory, h.argonTime, h.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

type argonParams struct {
	memory  uint32
	time    uint32
	threads uint8
	salt    []byte
	key     []byte
}

// parseArgon2id decodes "$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>".
func parseArgon2id(stored string) (argonParams, error) {
	var p argonParams

	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[1] != string(AlgorithmArgon2id) {
		return p, ErrMalformedDigest
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return p, ErrMalformedDigest
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, ErrMalformedDigest
	}
	if p.memory == 0 || p.memory > maxArgonMemory ||
		p.time == 0 || p.time > maxArgonTime ||
		p.threads == 0 || p.threads > maxArgonThreads {
		return p, ErrMalformedDigest
	}

	var err error
	if p.salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil || len(p.salt) == 0 {
		return p, ErrMalformedDigest
	}
	if p.key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(p.key) == 0 || len(p.key) > maxArgonKeyLen {
		return p, ErrMalformedDigest
	}

	return p, nil
}

func verifyArgon2id(stored, candidate string) bool {
	p, err := parseArgon2id(stored)
	if err != nil {
		return false
	}

	key := argon2.IDKey([]byte(candidate), p.salt, p.time, p.memory, p.threads, uint32(len(p.key)))
	return subtle.ConstantTimeCompare(key, p.key) == 1
}

func hashSHA512(secret string) string {
	sum := sha512.Sum512([]byte(secret))
	return "$" + string(AlgorithmSHA512) + "$" + base64.StdEncoding.EncodeToString(sum[:])
}

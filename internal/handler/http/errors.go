// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidSessionCookie is returned when the session cookie is present
	// but its signature or encoding does not verify.
	ErrInvalidSessionCookie = errors.New("invalid session cookie")

	// ErrInvalidPathParam is returned when a numeric path or query parameter
	// can not be parsed.
	ErrInvalidPathParam = errors.New("invalid path parameter")

	// ErrMalformedBody is returned when a JSON request body can not be decoded.
	ErrMalformedBody = errors.New("malformed request body")
)

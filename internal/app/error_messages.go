// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// fortuna HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. Keeping them in one place keeps the wording of the API
// consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned for infrastructure failures. The
	// cause is logged server side and never echoed.
	MsgInternalServerError = "internal server error"

	// MsgUnauthenticated is returned when a protected route is called
	// without a usable session.
	MsgUnauthenticated = "unauthenticated"

	// MsgAccessDenied is returned when the user is not a member (or not an
	// admin) of the workspace addressed by the request.
	MsgAccessDenied = "access denied"

	// MsgSessionNotFound is returned when revoking a session that does not
	// exist, is already revoked or belongs to another user.
	MsgSessionNotFound = "could not find that session"

	// MsgNotFound is returned when the addressed entity does not exist.
	MsgNotFound = "not found"

	// MsgInvalidPathParam is returned when a numeric path parameter or query
	// value can not be parsed.
	MsgInvalidPathParam = "invalid path parameter"

	// MsgTooManyRequests is returned by the login/signup rate limiter.
	MsgTooManyRequests = "too many requests, please try again later"
)

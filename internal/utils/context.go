// Package utils provides small helpers shared by the transport layer:
// typed context keys for the resolved session and JSON request/response
// helpers.
package utils

import (
	"context"

	"github.com/MKhiriev/fortuna/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// resolved *models.Session.
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext returns the session stored by [WithSession].
// ok is false when the request is anonymous.
func GetSessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(*models.Session)
	if !ok || session == nil {
		return nil, false
	}
	return session, true
}

// GetUserIDFromContext returns the id of the user owning the request session.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	session, ok := GetSessionFromContext(ctx)
	if !ok {
		return 0, false
	}
	return session.UserID, true
}

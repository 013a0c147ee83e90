package models

import "time"

// ClientInfo describes the client that opened a session. It is stored
// JSON-serialized next to the session.
type ClientInfo struct {
	UserAgent string `json:"user_agent,omitempty"`
	IP        string `json:"ip,omitempty"`
	Browser   string `json:"browser,omitempty"`
	OS        string `json:"os,omitempty"`
	Device    string `json:"device,omitempty"`
}

// Session is the descriptor returned when a session is created or resolved.
// Token is the opaque plaintext session key; it is never logged.
type Session struct {
	Token     string    `json:"-"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionInfo is a listing entry for an active session of a user.
type SessionInfo struct {
	Token     string      `json:"session_key"`
	Client    *ClientInfo `json:"client,omitempty"`
	CreatedAt time.Time   `json:"created"`
	LastUsed  time.Time   `json:"last_used"`
	ExpiresAt time.Time   `json:"expires"`
}

// SessionRecord is the persisted shape of a session row.
// Timestamps are unix seconds; UserAgent is JSON-encoded [ClientInfo] or "".
type SessionRecord struct {
	Token     string
	UserID    int64
	Expires   int64
	UserAgent string
	Active    bool
	Created   int64
	LastUsed  int64
}

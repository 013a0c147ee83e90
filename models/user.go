package models

// User represents an account entity used for authentication and authorization.
// Credential material never leaves the service boundary: PassHash and Salt
// are excluded from JSON.
type User struct {
	// UserID is the unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Email is the unique login of the user, compared exactly as stored.
	Email string `json:"email"`

	// PassHash is the stored password digest, tagged with the algorithm that
	// produced it (e.g. "$argon2id$..." or "$sha512$...").
	PassHash string `json:"-"`

	// Salt is the per-password salt mixed into the credential before hashing.
	Salt string `json:"-"`

	// Active reports whether the account may authenticate.
	Active bool `json:"-"`

	// WorkspaceIDs lists the workspaces the user belongs to.
	WorkspaceIDs []int64 `json:"workspace_ids"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

package models

import "strings"

// Role is the membership role of a user in a workspace.
type Role string

const (
	RoleMember Role = "Member"
	RoleAdmin  Role = "Admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleMember || r == RoleAdmin
}

const (
	// PersonalWorkspacePrefix marks a workspace created for a single owner.
	PersonalWorkspacePrefix = "PERSONAL_"
	// PublicWorkspacePrefix marks a shared workspace.
	PublicWorkspacePrefix = "PUBLIC_"
	// PersonalWorkspaceName is the display name of the workspace created on signup.
	PersonalWorkspaceName = "Personal Workspace"
)

// WorkspaceStoredName returns the persisted, prefixed name of a workspace.
func WorkspaceStoredName(name string, personal bool) string {
	if personal {
		return PersonalWorkspacePrefix + name
	}
	return PublicWorkspacePrefix + name
}

// WorkspaceDisplayName strips the personal/public prefix from a stored name.
func WorkspaceDisplayName(stored string) string {
	if s, ok := strings.CutPrefix(stored, PersonalWorkspacePrefix); ok {
		return s
	}
	return strings.TrimPrefix(stored, PublicWorkspacePrefix)
}

// Workspace is a tenant that groups members and experiments.
type Workspace struct {
	WorkspaceID int64             `json:"workspace_id"`
	Name        string            `json:"name"`
	Personal    bool              `json:"personal"`
	Members     []WorkspaceMember `json:"members"`
	Experiments []Experiment      `json:"experiments"`
}

// WorkspaceMember is an active user together with their role in a workspace.
type WorkspaceMember struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// WorkspaceRole is the result of a membership check.
type WorkspaceRole struct {
	IsMember bool `json:"is_member"`
	IsAdmin  bool `json:"is_admin"`
}

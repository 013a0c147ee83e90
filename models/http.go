package models

import "encoding/json"

// Credentials is the request body of signup and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateWorkspaceRequest is the request body for workspace creation.
type CreateWorkspaceRequest struct {
	Name     string `json:"name"`
	Personal bool   `json:"personal"`
}

// AddMemberRequest is the request body for adding a workspace member.
type AddMemberRequest struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

// CreateExperimentRequest is the request body for experiment creation.
type CreateExperimentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// AddOutcomeRequest is the request body for adding an outcome.
type AddOutcomeRequest struct {
	Value       json.RawMessage `json:"value"`
	Weight      float64         `json:"weight"`
	Description string          `json:"description"`
}

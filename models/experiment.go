package models

import "encoding/json"

// ExperimentsPageSize is the number of experiments returned per page.
const ExperimentsPageSize = 50

// Experiment is a tracked experiment owned by a workspace.
type Experiment struct {
	ExperimentID int64     `json:"experiment_id"`
	WorkspaceID  int64     `json:"workspace_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Active       bool      `json:"active"`
	Endpoint     string    `json:"endpoint"`
	APIKeyHash   string    `json:"-"`
	APIKeySalt   string    `json:"-"`
	Outcomes     []Outcome `json:"outcomes"`
	Results      []Result  `json:"results"`
}

// Outcome is a possible outcome of an experiment with its weight.
type Outcome struct {
	OutcomeID    int64           `json:"outcome_id"`
	ExperimentID int64           `json:"experiment_id"`
	Value        json.RawMessage `json:"value"`
	Weight       float64         `json:"weight"`
	Description  string          `json:"description"`
}

// Result records which outcome a subject was assigned.
type Result struct {
	ResultID     int64  `json:"result_id"`
	ExperimentID int64  `json:"experiment_id"`
	SubjectID    string `json:"subject_id"`
	OutcomeID    int64  `json:"outcome_id"`
	Active       bool   `json:"active"`
}

// CreatedExperiment is returned once from experiment creation. APIKey is the
// only copy of the plaintext key.
type CreatedExperiment struct {
	Experiment
	APIKey string `json:"api_key"`
}

// ExperimentPage is one page of a workspace experiment listing.
type ExperimentPage struct {
	Experiments []Experiment `json:"experiments"`
	Page        int          `json:"page"`
	HasNext     bool         `json:"has_next"`
}

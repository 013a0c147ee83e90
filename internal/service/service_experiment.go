package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/MKhiriev/fortuna/internal/crypto"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

type experimentService struct {
	experiments store.ExperimentRepository
	hasher      crypto.PasswordHasher
	logger      *logger.Logger
}

// NewExperimentService constructs an [ExperimentService].
func NewExperimentService(experiments store.ExperimentRepository, hasher crypto.PasswordHasher, logger *logger.Logger) ExperimentService {
	return &experimentService{
		experiments: experiments,
		hasher:      hasher,
		logger:      logger,
	}
}

// CreateExperiment creates an active experiment with a fresh endpoint and
// API key. Only the key hash is stored; the plaintext key is returned once.
func (s *experimentService) CreateExperiment(ctx context.Context, workspaceID int64, name, description string) (models.CreatedExperiment, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return models.CreatedExperiment{}, fmt.Errorf("%w: experiment name is required", ErrValidation)
	}

	apiKey, err := crypto.NewAPIKey()
	if err != nil {
		return models.CreatedExperiment{}, err
	}
	keySalt, err := crypto.NewSalt()
	if err != nil {
		return models.CreatedExperiment{}, err
	}
	keyHash, err := s.hasher.Hash(ctx, crypto.APIKeyCredential(keySalt, apiKey))
	if err != nil {
		log.Err(err).Str("func", "*experimentService.CreateExperiment").Msg("failed to hash api key")
		return models.CreatedExperiment{}, err
	}

	experiment := models.Experiment{
		WorkspaceID: workspaceID,
		Name:        name,
		Description: description,
		Active:      true,
		Endpoint:    uuid.NewString(),
		APIKeyHash:  keyHash.Digest,
		APIKeySalt:  keySalt,
		Outcomes:    []models.Outcome{},
		Results:     []models.Result{},
	}

	experiment.ExperimentID, err = s.experiments.CreateExperiment(ctx, experiment)
	if err != nil {
		return models.CreatedExperiment{}, fmt.Errorf("creating experiment: %w", err)
	}

	return models.CreatedExperiment{Experiment: experiment, APIKey: apiKey}, nil
}

func (s *experimentService) AddOutcome(ctx context.Context, experimentID int64, value json.RawMessage, weight float64, description string) (models.Outcome, error) {
	if len(value) == 0 || !json.Valid(value) {
		return models.Outcome{}, fmt.Errorf("%w: outcome value must be valid json", ErrValidation)
	}
	if weight < 0 {
		return models.Outcome{}, fmt.Errorf("%w: outcome weight must not be negative", ErrValidation)
	}

	if _, err := s.ExperimentWorkspace(ctx, experimentID); err != nil {
		return models.Outcome{}, err
	}

	outcome := models.Outcome{
		ExperimentID: experimentID,
		Value:        value,
		Weight:       weight,
		Description:  description,
	}

	id, err := s.experiments.AddOutcome(ctx, outcome)
	if err != nil {
		return models.Outcome{}, fmt.Errorf("adding outcome: %w", err)
	}
	outcome.OutcomeID = id

	return outcome, nil
}

// ListExperiments returns the page-th page (zero based) of a workspace's
// experiments.
func (s *experimentService) ListExperiments(ctx context.Context, workspaceID int64, page int) (models.ExperimentPage, error) {
	if page < 0 {
		return models.ExperimentPage{}, fmt.Errorf("%w: page must not be negative", ErrValidation)
	}

	// one extra row tells whether a next page exists
	experiments, err := s.experiments.ListExperiments(ctx, workspaceID,
		models.ExperimentsPageSize+1, uint64(page)*models.ExperimentsPageSize)
	if err != nil {
		return models.ExperimentPage{}, fmt.Errorf("listing experiments: %w", err)
	}

	result := models.ExperimentPage{Experiments: experiments, Page: page}
	if len(experiments) > models.ExperimentsPageSize {
		result.Experiments = experiments[:models.ExperimentsPageSize]
		result.HasNext = true
	}
	if result.Experiments == nil {
		result.Experiments = []models.Experiment{}
	}

	return result, nil
}

func (s *experimentService) GetExperiment(ctx context.Context, experimentID int64) (*models.Experiment, error) {
	experiment, err := s.experiments.GetExperiment(ctx, experimentID)
	if err != nil {
		return nil, fmt.Errorf("reading experiment: %w", err)
	}
	return experiment, nil
}

func (s *experimentService) ExperimentWorkspace(ctx context.Context, experimentID int64) (int64, error) {
	workspaceID, err := s.experiments.ExperimentWorkspace(ctx, experimentID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("reading experiment workspace: %w", err)
	}
	return workspaceID, nil
}

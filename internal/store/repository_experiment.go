package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/models"
)

// experimentRepository is the SQL implementation of [ExperimentRepository].
type experimentRepository struct {
	db     *Pool
	logger *logger.Logger
}

// NewExperimentRepository constructs an [ExperimentRepository].
func NewExperimentRepository(db *Pool, logger *logger.Logger) ExperimentRepository {
	logger.Debug().Msg("creating experiment repository")
	return &experimentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *experimentRepository) CreateExperiment(ctx context.Context, e models.Experiment) (int64, error) {
	var experimentID int64
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&experimentID)
	}, createExperiment, e.WorkspaceID, e.Name, e.Description, e.Endpoint, e.APIKeyHash, e.APIKeySalt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*experimentRepository.CreateExperiment").
			Int64("workspace_id", e.WorkspaceID).
			Msg("error inserting experiment")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return experimentID, nil
}

func (r *experimentRepository) AddOutcome(ctx context.Context, o models.Outcome) (int64, error) {
	var outcomeID int64
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&outcomeID)
	}, addOutcome, o.ExperimentID, string(o.Value), o.Weight, o.Description)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*experimentRepository.AddOutcome").
			Int64("experiment_id", o.ExperimentID).
			Msg("error inserting outcome")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return outcomeID, nil
}

func (r *experimentRepository) ListExperiments(ctx context.Context, workspaceID int64, limit, offset uint64) ([]models.Experiment, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExperimentsQuery(workspaceID, limit, offset)
	if err != nil {
		log.Err(err).Str("func", "*experimentRepository.ListExperiments").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	experiments := make([]models.Experiment, 0, limit)
	err = r.db.Query(ctx, func(rows *sql.Rows) error {
		var e models.Experiment
		if err := rows.Scan(&e.ExperimentID, &e.WorkspaceID, &e.Name, &e.Description, &e.Active, &e.Endpoint); err != nil {
			return err
		}
		experiments = append(experiments, e)
		return nil
	}, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*experimentRepository.ListExperiments").
			Int64("workspace_id", workspaceID).
			Msg("error listing experiments")
		return nil, err
	}

	return experiments, nil
}

// experimentJoinRow is one row of the experiment/outcome/result LEFT JOIN.
type experimentJoinRow struct {
	experimentID       int64
	workspaceID        int64
	name               string
	description        string
	active             bool
	endpoint           string
	outcomeID          sql.NullInt64
	outcomeValue       []byte
	outcomeWeight      sql.NullFloat64
	outcomeDescription sql.NullString
	resultID           sql.NullInt64
	resultSubjectID    sql.NullString
	resultOutcomeID    sql.NullInt64
	resultActive       sql.NullBool
}

// GetExperiment folds the LEFT JOIN rows into one experiment. The join is a
// cross product of outcomes and results, so each child is kept once by id.
func (r *experimentRepository) GetExperiment(ctx context.Context, experimentID int64) (*models.Experiment, error) {
	var experiment *models.Experiment
	seenOutcomes := make(map[int64]struct{})
	seenResults := make(map[int64]struct{})

	err := r.db.Query(ctx, func(rows *sql.Rows) error {
		var row experimentJoinRow
		if err := rows.Scan(
			&row.experimentID, &row.workspaceID, &row.name, &row.description, &row.active, &row.endpoint,
			&row.outcomeID, &row.outcomeValue, &row.outcomeWeight, &row.outcomeDescription,
			&row.resultID, &row.resultSubjectID, &row.resultOutcomeID, &row.resultActive,
		); err != nil {
			return err
		}

		if experiment == nil {
			experiment = &models.Experiment{
				ExperimentID: row.experimentID,
				WorkspaceID:  row.workspaceID,
				Name:         row.name,
				Description:  row.description,
				Active:       row.active,
				Endpoint:     row.endpoint,
				Outcomes:     make([]models.Outcome, 0),
				Results:      make([]models.Result, 0),
			}
		}

		if row.outcomeID.Valid {
			if _, ok := seenOutcomes[row.outcomeID.Int64]; !ok {
				seenOutcomes[row.outcomeID.Int64] = struct{}{}
				experiment.Outcomes = append(experiment.Outcomes, models.Outcome{
					OutcomeID:    row.outcomeID.Int64,
					ExperimentID: row.experimentID,
					Value:        row.outcomeValue,
					Weight:       row.outcomeWeight.Float64,
					Description:  row.outcomeDescription.String,
				})
			}
		}

		if row.resultID.Valid {
			if _, ok := seenResults[row.resultID.Int64]; !ok {
				seenResults[row.resultID.Int64] = struct{}{}
				experiment.Results = append(experiment.Results, models.Result{
					ResultID:     row.resultID.Int64,
					ExperimentID: row.experimentID,
					SubjectID:    row.resultSubjectID.String,
					OutcomeID:    row.resultOutcomeID.Int64,
					Active:       row.resultActive.Bool,
				})
			}
		}

		return nil
	}, getExperimentWithChildren, experimentID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*experimentRepository.GetExperiment").
			Int64("experiment_id", experimentID).
			Msg("error reading experiment")
		return nil, err
	}

	return experiment, nil
}

func (r *experimentRepository) ExperimentWorkspace(ctx context.Context, experimentID int64) (int64, error) {
	var workspaceID int64
	err := r.db.QueryRow(ctx, func(row *sql.Row) error {
		return row.Scan(&workspaceID)
	}, getExperimentWorkspace, experimentID)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrNotFound
	case err != nil:
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return workspaceID, nil
}

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/service"
	"github.com/MKhiriev/fortuna/models"
)

func TestListExperiments(t *testing.T) {
	t.Run("page from query", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{IsMember: true}, nil)
		env.experiments.EXPECT().ListExperiments(gomock.Any(), int64(7), 2).
			Return(models.ExperimentPage{Experiments: []models.Experiment{}, Page: 2}, nil)

		rr := env.do(http.MethodGet, "/api/workspaces/7/experiments?page=2", nil, env.cookie(t, "tok"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"experiments":[],"page":2,"has_next":false}`, rr.Body.String())
	})

	t.Run("negative page", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)

		rr := env.do(http.MethodGet, "/api/workspaces/7/experiments?page=-1", nil, env.cookie(t, "tok"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestCreateExperiment(t *testing.T) {
	env := newTestEnv(t)
	env.authenticate("tok", 1)
	env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{IsMember: true}, nil)
	env.experiments.EXPECT().CreateExperiment(gomock.Any(), int64(7), "colors", "button colors").
		Return(models.CreatedExperiment{
			Experiment: models.Experiment{ExperimentID: 3, WorkspaceID: 7, Name: "colors", APIKeyHash: "secret-hash"},
			APIKey:     "plain-key",
		}, nil)

	rr := env.do(http.MethodPost, "/api/workspaces/7/experiments",
		models.CreateExperimentRequest{Name: "colors", Description: "button colors"}, env.cookie(t, "tok"))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"api_key":"plain-key"`)
	assert.NotContains(t, rr.Body.String(), "secret-hash")
}

func TestGetExperiment(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.experiments.EXPECT().ExperimentWorkspace(gomock.Any(), int64(3)).Return(int64(7), nil)
		env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{IsMember: true}, nil)
		env.experiments.EXPECT().GetExperiment(gomock.Any(), int64(3)).
			Return(&models.Experiment{ExperimentID: 3, WorkspaceID: 7, Name: "colors"}, nil)

		rr := env.do(http.MethodGet, "/api/experiments/3", nil, env.cookie(t, "tok"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "colors", decodeBody[models.Experiment](t, rr).Name)
	})

	t.Run("unknown experiment", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.experiments.EXPECT().ExperimentWorkspace(gomock.Any(), int64(3)).Return(int64(0), service.ErrNotFound)

		rr := env.do(http.MethodGet, "/api/experiments/3", nil, env.cookie(t, "tok"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("other workspace", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.experiments.EXPECT().ExperimentWorkspace(gomock.Any(), int64(3)).Return(int64(9), nil)
		env.workspaces.EXPECT().Role(gomock.Any(), int64(9), int64(1)).Return(models.WorkspaceRole{}, nil)

		rr := env.do(http.MethodGet, "/api/experiments/3", nil, env.cookie(t, "tok"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("vanished between checks", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.experiments.EXPECT().ExperimentWorkspace(gomock.Any(), int64(3)).Return(int64(7), nil)
		env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{IsMember: true}, nil)
		env.experiments.EXPECT().GetExperiment(gomock.Any(), int64(3)).Return(nil, nil)

		rr := env.do(http.MethodGet, "/api/experiments/3", nil, env.cookie(t, "tok"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, app.MsgNotFound, errorMessage(t, rr))
	})
}

func TestAddOutcome(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "added", wantStatus: http.StatusCreated},
		{name: "negative weight", serviceErr: service.ErrValidation, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authenticate("tok", 1)
			env.experiments.EXPECT().ExperimentWorkspace(gomock.Any(), int64(3)).Return(int64(7), nil)
			env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{IsMember: true}, nil)
			env.experiments.EXPECT().AddOutcome(gomock.Any(), int64(3), json.RawMessage(`"red"`), 0.5, "red button").
				Return(models.Outcome{OutcomeID: 1, ExperimentID: 3, Value: json.RawMessage(`"red"`), Weight: 0.5}, tt.serviceErr)

			rr := env.do(http.MethodPost, "/api/experiments/3/outcomes",
				`{"value":"red","weight":0.5,"description":"red button"}`, env.cookie(t, "tok"))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

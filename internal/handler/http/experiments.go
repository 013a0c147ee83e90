package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/utils"
	"github.com/MKhiriev/fortuna/models"
)

func (h *Handler) listExperiments(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := int64Param(r, "workspaceID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	page, err := pageParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !h.requireMember(w, r, workspaceID) {
		return
	}

	experiments, err := h.services.ExperimentService.ListExperiments(r.Context(), workspaceID, page)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, experiments, http.StatusOK)
}

// createExperiment answers with the plaintext API key; it is not retrievable
// afterwards.
func (h *Handler) createExperiment(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := int64Param(r, "workspaceID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !h.requireMember(w, r, workspaceID) {
		return
	}

	var req models.CreateExperimentRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}

	created, err := h.services.ExperimentService.CreateExperiment(r.Context(), workspaceID, req.Name, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// experimentAccess resolves the experiment's workspace and checks membership.
func (h *Handler) experimentAccess(w http.ResponseWriter, r *http.Request) (int64, bool) {
	experimentID, err := int64Param(r, "experimentID")
	if err != nil {
		writeError(w, r, err)
		return 0, false
	}

	workspaceID, err := h.services.ExperimentService.ExperimentWorkspace(r.Context(), experimentID)
	if err != nil {
		writeError(w, r, err)
		return 0, false
	}

	if !h.requireMember(w, r, workspaceID) {
		return 0, false
	}
	return experimentID, true
}

func (h *Handler) getExperiment(w http.ResponseWriter, r *http.Request) {
	experimentID, ok := h.experimentAccess(w, r)
	if !ok {
		return
	}

	experiment, err := h.services.ExperimentService.GetExperiment(r.Context(), experimentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if experiment == nil {
		writeMessage(w, http.StatusNotFound, app.MsgNotFound)
		return
	}

	utils.WriteJSON(w, experiment, http.StatusOK)
}

func (h *Handler) addOutcome(w http.ResponseWriter, r *http.Request) {
	experimentID, ok := h.experimentAccess(w, r)
	if !ok {
		return
	}

	var req models.AddOutcomeRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}

	outcome, err := h.services.ExperimentService.AddOutcome(r.Context(), experimentID, req.Value, req.Weight, req.Description)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, outcome, http.StatusCreated)
}

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/utils"
	"github.com/MKhiriev/fortuna/models"
)

// requireMember answers 403 and returns false unless the current user
// belongs to workspaceID.
func (h *Handler) requireMember(w http.ResponseWriter, r *http.Request, workspaceID int64) bool {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	role, err := h.services.WorkspaceService.Role(r.Context(), workspaceID, userID)
	if err != nil {
		writeError(w, r, err)
		return false
	}
	if !role.IsMember {
		writeMessage(w, http.StatusForbidden, app.MsgAccessDenied)
		return false
	}
	return true
}

func (h *Handler) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	workspaces, err := h.services.WorkspaceService.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, workspaces, http.StatusOK)
}

func (h *Handler) createWorkspace(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req models.CreateWorkspaceRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}

	workspace, err := h.services.WorkspaceService.CreateWorkspace(r.Context(), userID, req.Name, req.Personal)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, workspace, http.StatusCreated)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := int64Param(r, "workspaceID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !h.requireMember(w, r, workspaceID) {
		return
	}

	members, err := h.services.WorkspaceService.Members(r.Context(), workspaceID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, members, http.StatusOK)
}

// addMember requires the current user to be an Admin of the workspace.
func (h *Handler) addMember(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	workspaceID, err := int64Param(r, "workspaceID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.AddMemberRequest
	if err = utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedBody, err))
		return
	}

	if err = h.services.WorkspaceService.AddMember(r.Context(), userID, workspaceID, req.UserID, req.Role); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// removeMember requires the current user to be an Admin of the workspace.
func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	actorID, _ := utils.GetUserIDFromContext(r.Context())

	workspaceID, err := int64Param(r, "workspaceID")
	if err != nil {
		writeError(w, r, err)
		return
	}
	memberID, err := int64Param(r, "userID")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.WorkspaceService.RemoveMember(r.Context(), actorID, workspaceID, memberID); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

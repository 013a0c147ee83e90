package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/service"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

func TestListWorkspaces(t *testing.T) {
	env := newTestEnv(t)
	env.authenticate("tok", 1)
	env.workspaces.EXPECT().ListForUser(gomock.Any(), int64(1)).
		Return([]models.Workspace{{WorkspaceID: 7, Name: "Personal", Personal: true}}, nil)

	rr := env.do(http.MethodGet, "/api/workspaces", nil, env.cookie(t, "tok"))

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[[]models.Workspace](t, rr)
	require.Len(t, got, 1)
	assert.Equal(t, int64(7), got[0].WorkspaceID)
}

func TestCreateWorkspace(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{name: "duplicate shared name", serviceErr: store.ErrDuplicateWorkspace, wantStatus: http.StatusBadRequest},
		{name: "empty name", serviceErr: service.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "transaction failure", serviceErr: store.ErrTransaction, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authenticate("tok", 1)
			env.workspaces.EXPECT().CreateWorkspace(gomock.Any(), int64(1), "Team", false).
				Return(models.Workspace{WorkspaceID: 8, Name: "Team"}, tt.serviceErr)

			rr := env.do(http.MethodPost, "/api/workspaces", models.CreateWorkspaceRequest{Name: "Team"}, env.cookie(t, "tok"))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestListMembers(t *testing.T) {
	t.Run("member", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{IsMember: true}, nil)
		env.workspaces.EXPECT().Members(gomock.Any(), int64(7)).
			Return([]models.WorkspaceMember{{UserID: 1, Email: "a@x.com", Role: models.RoleAdmin}}, nil)

		rr := env.do(http.MethodGet, "/api/workspaces/7/users", nil, env.cookie(t, "tok"))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decodeBody[[]models.WorkspaceMember](t, rr), 1)
	})

	t.Run("non member", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)
		env.workspaces.EXPECT().Role(gomock.Any(), int64(7), int64(1)).Return(models.WorkspaceRole{}, nil)

		rr := env.do(http.MethodGet, "/api/workspaces/7/users", nil, env.cookie(t, "tok"))

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, app.MsgAccessDenied, errorMessage(t, rr))
	})

	t.Run("invalid workspace id", func(t *testing.T) {
		env := newTestEnv(t)
		env.authenticate("tok", 1)

		rr := env.do(http.MethodGet, "/api/workspaces/abc/users", nil, env.cookie(t, "tok"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, app.MsgInvalidPathParam, errorMessage(t, rr))
	})
}

func TestAddMember(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "added", wantStatus: http.StatusNoContent},
		{name: "actor is not admin", serviceErr: service.ErrForbidden, wantStatus: http.StatusForbidden},
		{name: "already member", serviceErr: store.ErrAlreadyMember, wantStatus: http.StatusBadRequest},
		{name: "unknown user", serviceErr: service.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authenticate("tok", 1)
			env.workspaces.EXPECT().AddMember(gomock.Any(), int64(1), int64(7), int64(2), models.RoleMember).Return(tt.serviceErr)

			rr := env.do(http.MethodPost, "/api/workspaces/7/users",
				models.AddMemberRequest{UserID: 2, Role: models.RoleMember}, env.cookie(t, "tok"))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRemoveMember(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "removed", wantStatus: http.StatusNoContent},
		{name: "last admin", serviceErr: service.ErrLastAdmin, wantStatus: http.StatusBadRequest},
		{name: "not a member", serviceErr: service.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.authenticate("tok", 1)
			env.workspaces.EXPECT().RemoveMember(gomock.Any(), int64(1), int64(7), int64(1)).Return(tt.serviceErr)

			rr := env.do(http.MethodDelete, "/api/workspaces/7/users/1", nil, env.cookie(t, "tok"))

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

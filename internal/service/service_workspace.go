// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

// workspaceService is the concrete implementation of [WorkspaceService].
type workspaceService struct {
	transactor store.Transactor
	workspaces store.WorkspaceRepository
	logger     *logger.Logger
}

// NewWorkspaceService constructs a [WorkspaceService].
func NewWorkspaceService(transactor store.Transactor, workspaces store.WorkspaceRepository, logger *logger.Logger) WorkspaceService {
	return &workspaceService{
		transactor: transactor,
		workspaces: workspaces,
		logger:     logger,
	}
}

// bootstrapWorkspace inserts a workspace and its single Admin membership for
// ownerID on q. It must run inside a transaction so that neither row can
// exist without the other.
func bootstrapWorkspace(ctx context.Context, q store.Querier, workspaces store.WorkspaceRepository, ownerID int64, name string, personal bool) (int64, error) {
	workspaceID, err := workspaces.CreateWorkspace(ctx, q, models.WorkspaceStoredName(name, personal), personal)
	if err != nil {
		return 0, err
	}

	if err = workspaces.AddMember(ctx, q, workspaceID, ownerID, models.RoleAdmin); err != nil {
		return 0, err
	}

	return workspaceID, nil
}

// CreateWorkspace creates a workspace owned by ownerID.
//
// Returns:
//   - [ErrValidation] for an empty name or missing owner.
//   - [store.ErrDuplicateWorkspace] if a shared workspace with that name exists.
//   - an error matching [store.ErrTransaction] for any other failure; nothing
//     is left behind in that case.
func (s *workspaceService) CreateWorkspace(ctx context.Context, ownerID int64, name string, personal bool) (models.Workspace, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" || ownerID <= 0 {
		return models.Workspace{}, fmt.Errorf("%w: workspace name and owner are required", ErrValidation)
	}

	var workspaceID int64
	err := s.transactor.WithTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		id, err := bootstrapWorkspace(ctx, q, s.workspaces, ownerID, name, personal)
		if err != nil {
			return err
		}
		workspaceID = id
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*workspaceService.CreateWorkspace").
			Int64("owner_id", ownerID).
			Msg("workspace creation rolled back")

		if errors.Is(err, store.ErrDuplicateWorkspace) || errors.Is(err, store.ErrTransaction) {
			return models.Workspace{}, err
		}
		return models.Workspace{}, fmt.Errorf("%w: %w", store.ErrTransaction, err)
	}

	log.Info().
		Str("func", "*workspaceService.CreateWorkspace").
		Int64("workspace_id", workspaceID).
		Bool("personal", personal).
		Msg("workspace created")

	return models.Workspace{
		WorkspaceID: workspaceID,
		Name:        name,
		Personal:    personal,
		Members:     []models.WorkspaceMember{{UserID: ownerID, Role: models.RoleAdmin}},
		Experiments: []models.Experiment{},
	}, nil
}

func (s *workspaceService) Members(ctx context.Context, workspaceID int64) ([]models.WorkspaceMember, error) {
	members, err := s.workspaces.ListMembers(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing workspace members: %w", err)
	}
	return members, nil
}

func (s *workspaceService) Role(ctx context.Context, workspaceID, userID int64) (models.WorkspaceRole, error) {
	var role models.Role
	err := s.transactor.WithConn(ctx, func(ctx context.Context, q store.Querier) error {
		var err error
		role, err = s.workspaces.MemberRole(ctx, q, workspaceID, userID)
		return err
	})
	if err != nil {
		return models.WorkspaceRole{}, fmt.Errorf("checking workspace role: %w", err)
	}

	return models.WorkspaceRole{
		IsMember: role != "",
		IsAdmin:  role == models.RoleAdmin,
	}, nil
}

func (s *workspaceService) ListForUser(ctx context.Context, userID int64) ([]models.Workspace, error) {
	workspaces, err := s.workspaces.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing user workspaces: %w", err)
	}
	return workspaces, nil
}

// AddMember adds userID to the workspace with role. An empty role means
// [models.RoleMember].
func (s *workspaceService) AddMember(ctx context.Context, actorID, workspaceID, userID int64, role models.Role) error {
	if role == "" {
		role = models.RoleMember
	}
	if !role.Valid() || userID <= 0 {
		return fmt.Errorf("%w: unknown role %q", ErrValidation, role)
	}

	return s.transactor.WithTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		if err := s.requireAdmin(ctx, q, workspaceID, actorID); err != nil {
			return err
		}
		err := s.workspaces.AddMember(ctx, q, workspaceID, userID, role)
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	})
}

// RemoveMember removes userID from the workspace. The last Admin can not be
// removed.
func (s *workspaceService) RemoveMember(ctx context.Context, actorID, workspaceID, userID int64) error {
	return s.transactor.WithTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		if err := s.requireAdmin(ctx, q, workspaceID, actorID); err != nil {
			return err
		}

		role, err := s.workspaces.MemberRole(ctx, q, workspaceID, userID)
		if err != nil {
			return err
		}
		if role == "" {
			return ErrNotFound
		}

		if role == models.RoleAdmin {
			admins, err := s.workspaces.CountAdmins(ctx, q, workspaceID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return ErrLastAdmin
			}
		}

		removed, err := s.workspaces.DeleteMember(ctx, q, workspaceID, userID)
		if err != nil {
			return err
		}
		if !removed {
			return ErrNotFound
		}
		return nil
	})
}

func (s *workspaceService) requireAdmin(ctx context.Context, q store.Querier, workspaceID, actorID int64) error {
	role, err := s.workspaces.MemberRole(ctx, q, workspaceID, actorID)
	if err != nil {
		return err
	}
	if role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

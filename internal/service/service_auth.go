// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/fortuna/internal/crypto"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

// authService is the concrete implementation of [AuthService].
type authService struct {
	transactor store.Transactor
	users      store.UserRepository
	workspaces store.WorkspaceRepository
	hasher     crypto.PasswordHasher

	// synthetic is verified against when the email is unknown, so that a
	// missing account costs the same argon2id work as a wrong password.
	synthetic models.User

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService]. It hashes a random secret
// once to build the synthetic account used on lookups that miss.
func NewAuthService(ctx context.Context, storages *store.Storages, hasher crypto.PasswordHasher, logger *logger.Logger) (AuthService, error) {
	synthetic, err := newSyntheticUser(ctx, hasher)
	if err != nil {
		return nil, err
	}

	return &authService{
		transactor: storages.Transactor,
		users:      storages.UserRepository,
		workspaces: storages.WorkspaceRepository,
		hasher:     hasher,
		synthetic:  synthetic,
		logger:     logger,
	}, nil
}

func newSyntheticUser(ctx context.Context, hasher crypto.PasswordHasher) (models.User, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return models.User{}, err
	}
	secret, err := crypto.NewToken()
	if err != nil {
		return models.User{}, err
	}

	hash, err := hasher.Hash(ctx, crypto.Credential(salt, secret))
	if err != nil {
		return models.User{}, fmt.Errorf("hashing synthetic credential: %w", err)
	}

	return models.User{UserID: -100, PassHash: hash.Digest, Salt: salt}, nil
}

// Signup creates an active user together with its personal workspace in one
// transaction. The password is hashed before the transaction opens.
//
// Returns:
//   - [ErrValidation] if email or password is empty.
//   - [store.ErrDuplicateEmail] if the email is taken.
//   - a wrapped storage error otherwise.
func (a *authService) Signup(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("failed to generate salt")
		return models.User{}, err
	}

	hash, err := a.hasher.Hash(ctx, crypto.Credential(salt, password))
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("failed to hash password")
		return models.User{}, err
	}

	user := models.User{Email: email, PassHash: hash.Digest, Salt: salt, Active: true}

	err = a.transactor.WithTransaction(ctx, func(ctx context.Context, q store.Querier) error {
		userID, err := a.users.CreateUser(ctx, q, user)
		if err != nil {
			return err
		}
		user.UserID = userID

		workspaceID, err := bootstrapWorkspace(ctx, q, a.workspaces, userID, models.PersonalWorkspaceName, true)
		if err != nil {
			return err
		}
		user.WorkspaceIDs = []int64{workspaceID}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("signup: %w", err)
	}

	log.Info().Str("func", "*authService.Signup").Int64("user_id", user.UserID).Msg("user signed up")

	return sanitize(user), nil
}

// Login returns the active user matching email and password.
//
// Unknown email, inactive account and wrong password all yield
// [ErrInvalidCredentials] after the same amount of hashing work.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: email and password are required", ErrValidation)
	}

	found, err := a.users.FindActiveUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("login: %w", err)
	}

	candidate := a.synthetic
	if found != nil {
		candidate = *found
	}

	verified := a.hasher.Verify(candidate.PassHash, crypto.Credential(candidate.Salt, password))
	if found == nil || !verified {
		log.Info().Str("func", "*authService.Login").Msg("invalid credentials")
		return models.User{}, ErrInvalidCredentials
	}

	return sanitize(*found), nil
}

// sanitize drops credential material before a user leaves the service.
func sanitize(user models.User) models.User {
	user.PassHash = ""
	user.Salt = ""
	if user.WorkspaceIDs == nil {
		user.WorkspaceIDs = []int64{}
	}
	return user
}

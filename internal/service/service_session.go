// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/fortuna/internal/crypto"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/models"
)

// sessionService is the only component that writes session rows.
//
// A session moves from issued to active, loops on touch and ends either
// revoked (terminal) or expired. Expiry is never written: it is a predicate
// evaluated at query time against the stored expiration.
type sessionService struct {
	sessions store.SessionRepository
	ttl      time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

// NewSessionService constructs a [SessionService] issuing sessions that live
// for ttl.
func NewSessionService(sessions store.SessionRepository, ttl time.Duration, logger *logger.Logger) SessionService {
	return &sessionService{
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// CreateSession issues a fresh token for user and persists it. The returned
// descriptor is the only place the plaintext token is handed out.
func (s *sessionService) CreateSession(ctx context.Context, user models.User, client *models.ClientInfo) (models.Session, error) {
	log := logger.FromContext(ctx)

	if user.UserID <= 0 {
		return models.Session{}, fmt.Errorf("%w: missing user id", ErrValidation)
	}

	token, err := crypto.NewToken()
	if err != nil {
		log.Err(err).Str("func", "*sessionService.CreateSession").Msg("failed to generate session token")
		return models.Session{}, err
	}

	var userAgent string
	if client != nil {
		encoded, err := json.Marshal(client)
		if err != nil {
			return models.Session{}, fmt.Errorf("encoding client info: %w", err)
		}
		userAgent = string(encoded)
	}

	now := s.now()
	record := models.SessionRecord{
		Token:     token,
		UserID:    user.UserID,
		Expires:   now.Add(s.ttl).Unix(),
		UserAgent: userAgent,
		Active:    true,
		Created:   now.Unix(),
		LastUsed:  now.Unix(),
	}

	if err = s.sessions.CreateSession(ctx, record); err != nil {
		log.Err(err).
			Str("func", "*sessionService.CreateSession").
			Int64("user_id", user.UserID).
			Msg("failed to persist session")
		return models.Session{}, fmt.Errorf("creating session: %w", err)
	}

	return models.Session{
		Token:     token,
		UserID:    user.UserID,
		ExpiresAt: time.Unix(record.Expires, 0),
	}, nil
}

// GetSession resolves a token into a usable session.
func (s *sessionService) GetSession(ctx context.Context, token string) (*models.Session, error) {
	if token == "" {
		return nil, nil
	}

	record, err := s.sessions.FindUsableSession(ctx, token, s.now().Unix())
	if err != nil {
		return nil, fmt.Errorf("resolving session: %w", err)
	}
	if record == nil {
		return nil, nil
	}

	return &models.Session{
		Token:     record.Token,
		UserID:    record.UserID,
		ExpiresAt: time.Unix(record.Expires, 0),
	}, nil
}

// Touch is best effort: a failed update never fails the request.
func (s *sessionService) Touch(ctx context.Context, token string) {
	if err := s.sessions.TouchSession(ctx, token, s.now().Unix()); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*sessionService.Touch").
			Msg("failed to update session last used time")
	}
}

func (s *sessionService) ListActive(ctx context.Context, userID int64) ([]models.SessionInfo, error) {
	log := logger.FromContext(ctx)

	records, err := s.sessions.ListActiveSessions(ctx, userID, s.now().Unix())
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	sessions := make([]models.SessionInfo, 0, len(records))
	for _, record := range records {
		info := models.SessionInfo{
			Token:     record.Token,
			CreatedAt: time.Unix(record.Created, 0),
			LastUsed:  time.Unix(record.LastUsed, 0),
			ExpiresAt: time.Unix(record.Expires, 0),
		}

		if record.UserAgent != "" {
			var client models.ClientInfo
			if err := json.Unmarshal([]byte(record.UserAgent), &client); err != nil {
				log.Warn().Err(err).
					Str("func", "*sessionService.ListActive").
					Int64("user_id", userID).
					Msg("stored client info is not valid json")
			} else {
				info.Client = &client
			}
		}

		sessions = append(sessions, info)
	}

	return sessions, nil
}

// Revoke deactivates the session identified by token if it belongs to userID.
func (s *sessionService) Revoke(ctx context.Context, userID int64, token string) (bool, error) {
	if token == "" {
		return false, fmt.Errorf("%w: empty session key", ErrValidation)
	}

	revoked, err := s.sessions.DeactivateSession(ctx, userID, token)
	if err != nil {
		return false, fmt.Errorf("revoking session: %w", err)
	}

	return revoked, nil
}

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/metrics"
	"github.com/MKhiriev/fortuna/internal/utils"
	"github.com/MKhiriev/fortuna/models"
)

// authOutcome classifies a signup/login error for the metrics.
func authOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case statusFromError(err) < http.StatusInternalServerError:
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}

func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var creds models.Credentials
	if err := utils.DecodeJSON(w, r, &creds); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return creds, err
		}
		return creds, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	return creds, nil
}

// signup creates the account with its personal workspace and opens a session.
func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	creds, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, creds.Email, creds.Password)
	h.metrics.RecordSignup(authOutcome(err))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.openSession(w, r, user) {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// login checks the credentials and opens a session.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds.Email, creds.Password)
	h.metrics.RecordLogin(authOutcome(err))
	if err != nil {
		writeError(w, r, err)
		return
	}

	session, ok := h.openSessionWithDescriptor(w, r, user)
	if !ok {
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{User: user, Session: session}, http.StatusOK)
}

func (h *Handler) openSession(w http.ResponseWriter, r *http.Request, user models.User) bool {
	_, ok := h.openSessionWithDescriptor(w, r, user)
	return ok
}

func (h *Handler) openSessionWithDescriptor(w http.ResponseWriter, r *http.Request, user models.User) (models.Session, bool) {
	session, err := h.services.SessionService.CreateSession(r.Context(), user, clientInfoFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return models.Session{}, false
	}

	if err = h.setSessionCookie(w, session); err != nil {
		writeError(w, r, err)
		return models.Session{}, false
	}

	return session, true
}

// valid reports whether the request carries a usable session.
func (h *Handler) valid(w http.ResponseWriter, r *http.Request) {
	_, ok := utils.GetSessionFromContext(r.Context())
	utils.WriteJSON(w, ok, http.StatusOK)
}

// sessions lists the active sessions of the current user; anonymous callers
// get an empty list.
func (h *Handler) sessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, []models.SessionInfo{}, http.StatusOK)
		return
	}

	sessions, err := h.services.SessionService.ListActive(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, sessions, http.StatusOK)
}

// revokeSession deactivates one of the current user's sessions. Revoking the
// session of this very request also clears its cookie.
func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	current, _ := utils.GetSessionFromContext(r.Context())
	sessionKey := chi.URLParam(r, "sessionKey")

	revoked, err := h.services.SessionService.Revoke(r.Context(), current.UserID, sessionKey)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !revoked {
		writeMessage(w, http.StatusBadRequest, app.MsgSessionNotFound)
		return
	}

	if sessionKey == current.Token {
		h.clearSessionCookie(w)
	}

	utils.WriteJSON(w, true, http.StatusOK)
}

// logout revokes the current session and clears the cookie. It answers false
// for anonymous requests.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	current, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, false, http.StatusOK)
		return
	}

	h.clearSessionCookie(w)

	if _, err := h.services.SessionService.Revoke(r.Context(), current.UserID, current.Token); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.logout").Msg("failed to revoke session on logout")
	}

	utils.WriteJSON(w, true, http.StatusOK)
}

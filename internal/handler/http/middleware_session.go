package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/utils"
)

// withSession resolves the session cookie into the request context.
//
// Anonymous requests pass through untouched. A cookie that fails signature
// checks or names an unusable session is cleared. A usable session has its
// last-used time refreshed; a failed refresh never fails the request.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token, err := h.readSessionToken(r)
		if err != nil {
			if !errors.Is(err, ErrNoSessionCookie) {
				log.Warn().Err(err).Str("func", "*Handler.withSession").Msg("session cookie rejected")
				h.clearSessionCookie(w)
				h.metrics.RecordSessionLookup(false)
			}
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.services.SessionService.GetSession(ctx, token)
		if err != nil {
			log.Err(err).Str("func", "*Handler.withSession").Msg("session lookup failed")
			next.ServeHTTP(w, r)
			return
		}

		h.metrics.RecordSessionLookup(session != nil)
		if session == nil {
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		h.services.SessionService.Touch(ctx, token)

		next.ServeHTTP(w, r.WithContext(utils.WithSession(ctx, session)))
	})
}

// requireSession rejects anonymous requests with 401 Unauthorized.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetSessionFromContext(r.Context()); !ok {
			writeMessage(w, http.StatusUnauthorized, app.MsgUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

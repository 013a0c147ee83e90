package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/fortuna/models"
)

// setSessionCookie writes the signed session token with the session's
// expiration.
func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) error {
	encoded, err := h.cookies.Encode(h.cookieName, session.Token)
	if err != nil {
		return fmt.Errorf("encoding session cookie: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    encoded,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// readSessionToken returns the session token carried by the signed cookie.
func (h *Handler) readSessionToken(r *http.Request) (string, error) {
	cookie, err := r.Cookie(h.cookieName)
	if errors.Is(err, http.ErrNoCookie) || (err == nil && cookie.Value == "") {
		return "", ErrNoSessionCookie
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}

	var token string
	if err = h.cookies.Decode(h.cookieName, cookie.Value, &token); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}
	if token == "" {
		return "", ErrInvalidSessionCookie
	}

	return token, nil
}

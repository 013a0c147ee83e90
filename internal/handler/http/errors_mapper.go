package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fortuna/internal/app"
	"github.com/MKhiriev/fortuna/internal/logger"
	"github.com/MKhiriev/fortuna/internal/service"
	"github.com/MKhiriev/fortuna/internal/store"
	"github.com/MKhiriev/fortuna/internal/utils"
	"github.com/MKhiriev/fortuna/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:         http.StatusBadRequest,
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrLastAdmin:          http.StatusBadRequest,
	service.ErrForbidden:          http.StatusForbidden,
	service.ErrNotFound:           http.StatusNotFound,

	store.ErrDuplicateEmail:     http.StatusBadRequest,
	store.ErrDuplicateWorkspace: http.StatusBadRequest,
	store.ErrAlreadyMember:      http.StatusBadRequest,
	store.ErrNotFound:           http.StatusNotFound,

	store.ErrPoolExhausted:    http.StatusInternalServerError,
	store.ErrConnection:       http.StatusInternalServerError,
	store.ErrTransaction:      http.StatusInternalServerError,
	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrInvalidPathParam: http.StatusBadRequest,
	ErrMalformedBody:    http.StatusBadRequest,
	utils.ErrEmptyBody:  http.StatusBadRequest,
}

// errorMessageMap replaces the error text of client errors that would leak
// decoder or parser internals.
var errorMessageMap = map[error]string{
	ErrMalformedBody:    app.MsgInvalidDataProvided,
	utils.ErrEmptyBody:  app.MsgInvalidDataProvided,
	ErrInvalidPathParam: app.MsgInvalidPathParam,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers r with the status mapped from err. Client errors echo
// the error text; server errors are logged in full and answered with a
// generic message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
		message = app.MsgInternalServerError
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		for target, msg := range errorMessageMap {
			if errors.Is(err, target) {
				message = msg
				break
			}
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

// writeMessage answers r with status and a fixed message.
func writeMessage(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

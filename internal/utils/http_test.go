package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/fortuna/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		status     int
		wantBody   string
		wantStatus int
	}{
		{name: "object", data: models.ErrorResponse{Error: "nope"}, status: http.StatusBadRequest, wantBody: `{"error":"nope"}`, wantStatus: http.StatusBadRequest},
		{name: "bool", data: true, status: http.StatusOK, wantBody: "true", wantStatus: http.StatusOK},
		{name: "nil", data: nil, status: http.StatusOK, wantBody: "null", wantStatus: http.StatusOK},
		{name: "empty slice", data: []int{}, status: http.StatusOK, wantBody: "[]", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDecodeJSON(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com","password":"pw1"}`))

		var creds models.Credentials
		require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &creds))
		assert.Equal(t, models.Credentials{Email: "a@x.com", Password: "pw1"}, creds)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))

		var creds models.Credentials
		assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &creds), ErrEmptyBody)
	})

	t.Run("malformed body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))

		var creds models.Credentials
		err := DecodeJSON(httptest.NewRecorder(), r, &creds)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrEmptyBody)
	})

	t.Run("oversized body", func(t *testing.T) {
		payload := `{"email":"` + strings.Repeat("a", MaxJSONBodySize) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(payload))

		var creds models.Credentials
		assert.Error(t, DecodeJSON(httptest.NewRecorder(), r, &creds))
	})
}

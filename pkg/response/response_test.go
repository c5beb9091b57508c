package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Food created successfully", "food", map[string]string{"name": "Pho"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, "Food created successfully", body["message"])
	assert.Equal(t, map[string]interface{}{"name": "Pho"}, body["food"])
}

func TestSuccessWithoutKey(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusOK, "Logged out successfully.", "", nil)

	body := decode(t, rec)
	assert.Len(t, body, 1)
}

func TestErrorHelpers(t *testing.T) {
	cases := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		msg    string
	}{
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "nope") }, http.StatusForbidden, "nope"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, "Resource not found"},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "Email already in use.") }, http.StatusConflict, "Email already in use."},
		{"bad request", func(w http.ResponseWriter) { BadRequest(w, "") }, http.StatusBadRequest, "Bad request"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)
			assert.Equal(t, tc.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tc.msg, body["message"])
			assert.NotContains(t, body, "error")
		})
	}
}

func TestInternalServerErrorEchoesCause(t *testing.T) {
	rec := httptest.NewRecorder()
	InternalServerError(rec, "Failed to create food", errors.New("disk full"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "disk full", body["error"])
}

func TestValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"name": "name is required"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Validation failed", body["message"])
	assert.Equal(t, map[string]interface{}{"name": "name is required"}, body["error"])
}

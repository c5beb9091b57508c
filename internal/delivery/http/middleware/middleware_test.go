package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	usecase.AuthUsecase
	tokens map[string]entity.Identity
	err    error
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*entity.Identity, error) {
	if s.err != nil {
		return nil, s.err
	}
	identity, ok := s.tokens[token]
	if !ok {
		return nil, usecase.ErrInvalidSession
	}
	return &identity, nil
}

type stubAuthorization struct {
	err error
}

func (s stubAuthorization) Authorize(context.Context, uuid.UUID, entity.Resource, entity.Action) error {
	return s.err
}

func okHandler(t *testing.T, wantIdentity bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetIdentityFromContext(r)
		assert.Equal(t, wantIdentity, ok)
		w.WriteHeader(http.StatusNoContent)
	})
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func TestAuthenticateRequiresSession(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), SessionID: "s1"}
	m := NewAuthMiddleware(&stubAuth{tokens: map[string]entity.Identity{"good": identity}}, "sid")

	cases := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bad bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "good") }, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer good") }, http.StatusNoContent},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "sid", Value: "good"}) }, http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()

			m.Authenticate(okHandler(t, true)).ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized {
				assert.Equal(t, "You must be logged in to access this resource.", message(t, rec))
			}
		})
	}
}

func TestAuthenticateStoreFailureIs500(t *testing.T) {
	m := NewAuthMiddleware(&stubAuth{err: errors.New("redis down")}, "sid")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()

	m.Authenticate(okHandler(t, true)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestOptionalFailsOnSessionStoreError(t *testing.T) {
	m := NewAuthMiddleware(&stubAuth{err: errors.New("redis: connection refused")}, "sid")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	m.Optional(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run when the session store fails")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to validate session", message(t, rec))
}

func TestOptionalPassesUnknownTokenThrough(t *testing.T) {
	m := NewAuthMiddleware(&stubAuth{tokens: map[string]entity.Identity{}}, "sid")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	m.Optional(okHandler(t, false)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestOptionalNeverRejects(t *testing.T) {
	identity := entity.Identity{UserID: uuid.New(), SessionID: "s1"}
	m := NewAuthMiddleware(&stubAuth{tokens: map[string]entity.Identity{"good": identity}}, "sid")

	rec := httptest.NewRecorder()
	m.Optional(okHandler(t, false)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec = httptest.NewRecorder()
	m.Optional(okHandler(t, true)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequirePermissionOutcomes(t *testing.T) {
	withIdentity := func(r *http.Request) *http.Request {
		return r.WithContext(entity.ContextWithIdentity(r.Context(), entity.Identity{UserID: uuid.New()}))
	}

	cases := []struct {
		name     string
		err      error
		identity bool
		status   int
		msg      string
	}{
		{"granted", nil, true, http.StatusNoContent, ""},
		{"no identity", nil, false, http.StatusUnauthorized, "You must be logged in to access this resource."},
		{"role missing", usecase.ErrUserRoleNotFound, true, http.StatusForbidden, "User role not found."},
		{"denied", usecase.ErrPermissionDenied, true, http.StatusForbidden, "Access denied. Insufficient permissions."},
		{"store error", errors.New("db down"), true, http.StatusInternalServerError, "Failed to check permissions"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewPermissionMiddleware(stubAuthorization{err: tc.err})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.identity {
				req = withIdentity(req)
			}
			rec := httptest.NewRecorder()

			m.Require(entity.ResourceFood, entity.ActionCreate)(okHandler(t, true)).ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, message(t, rec))
			}
		})
	}
}

func TestCORS(t *testing.T) {
	m := NewCORSMiddleware([]string{"https://shop.example"})

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://shop.example")
	rec := httptest.NewRecorder()
	m.Handle(okHandler(t, false)).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://shop.example", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	m.Handle(okHandler(t, false)).ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = httptest.NewRecorder()
	NewCORSMiddleware([]string{"*"}).Handle(okHandler(t, false)).ServeHTTP(rec, req)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := NewSecurityMiddleware(log, false)

	rec := httptest.NewRecorder()
	m.Handle(okHandler(t, false)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestLoggingRecordsStatus(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := NewLoggingMiddleware(log)

	rec := httptest.NewRecorder()
	m.Handle(okHandler(t, false)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit(t *testing.T) {
	limited := NewRateLimit(2)(okHandler(t, false))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)

	unlimited := NewRateLimit(0)(okHandler(t, false))
	rec := httptest.NewRecorder()
	unlimited.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
)

const msgNotLoggedIn = "You must be logged in to access this resource."

type AuthMiddleware struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
}

func NewAuthMiddleware(authUsecase usecase.AuthUsecase, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		authUsecase: authUsecase,
		cookieName:  cookieName,
	}
}

// Authenticate rejects the request with 401 unless it carries a live session.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := m.authUsecase.Authenticate(r.Context(), m.sessionToken(r))
		if err != nil {
			if errors.Is(err, usecase.ErrInvalidSession) {
				response.Unauthorized(w, msgNotLoggedIn)
				return
			}
			response.InternalServerError(w, "Failed to validate session", err)
			return
		}

		ctx := entity.ContextWithIdentity(r.Context(), *identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional attaches the identity when a live session is present. A missing or dead
// session passes through anonymously; a session store failure is answered with 500.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := m.sessionToken(r)
		if token != "" {
			identity, err := m.authUsecase.Authenticate(r.Context(), token)
			switch {
			case err == nil:
				r = r.WithContext(entity.ContextWithIdentity(r.Context(), *identity))
			case !errors.Is(err, usecase.ErrInvalidSession):
				response.InternalServerError(w, "Failed to validate session", err)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// sessionToken prefers the Authorization header and falls back to the session cookie.
func (m *AuthMiddleware) sessionToken(r *http.Request) string {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}
	if cookie, err := r.Cookie(m.cookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// GetIdentityFromContext extracts the authenticated caller from context
func GetIdentityFromContext(r *http.Request) (entity.Identity, bool) {
	return entity.IdentityFromContext(r.Context())
}

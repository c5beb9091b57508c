package middleware

import (
	"errors"
	"net/http"

	"foodstall-backend/internal/domain/entity"
	"foodstall-backend/internal/usecase"
	"foodstall-backend/pkg/response"
)

type PermissionMiddleware struct {
	authorization usecase.AuthorizationUsecase
}

func NewPermissionMiddleware(authorization usecase.AuthorizationUsecase) *PermissionMiddleware {
	return &PermissionMiddleware{authorization: authorization}
}

// Require lets the request through only if the caller's role grants action on resource.
// It must run after AuthMiddleware.Authenticate.
func (m *PermissionMiddleware) Require(resource entity.Resource, action entity.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := entity.IdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, msgNotLoggedIn)
				return
			}

			err := m.authorization.Authorize(r.Context(), identity.UserID, resource, action)
			switch {
			case err == nil:
				next.ServeHTTP(w, r)
			case errors.Is(err, usecase.ErrUserRoleNotFound):
				response.Forbidden(w, "User role not found.")
			case errors.Is(err, usecase.ErrPermissionDenied):
				response.Forbidden(w, "Access denied. Insufficient permissions.")
			default:
				response.InternalServerError(w, "Failed to check permissions", err)
			}
		})
	}
}

package middleware

import (
	"net/http"
	"time"

	"foodstall-backend/pkg/response"

	"github.com/go-chi/httprate"
)

// NewRateLimit limits requests per client IP over a one minute window.
func NewRateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	if requestsPerMinute <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(requestsPerMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests. Please try again later.", nil)
		}),
	)
}

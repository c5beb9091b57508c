package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/unrolled/secure"
)

type SecurityMiddleware struct {
	log    *logrus.Logger
	secure *secure.Secure
}

func NewSecurityMiddleware(log *logrus.Logger, production bool) *SecurityMiddleware {
	return &SecurityMiddleware{
		log: log,
		secure: secure.New(secure.Options{
			FrameDeny:          true,
			ContentTypeNosniff: true,
			BrowserXssFilter:   true,
			ReferrerPolicy:     "strict-origin-when-cross-origin",
			SSLProxyHeaders:    map[string]string{"X-Forwarded-Proto": "https"},
			STSSeconds:         31536000,
			IsDevelopment:      !production,
		}),
	}
}

func (m *SecurityMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := m.secure.Process(w, r); err != nil {
			m.log.Warnf("Secure headers blocked request: %+v", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ndbell/authstore/internal/logger"
)

type ctxKey struct{}

var subjectKey ctxKey

// TokenParser validates a service token and returns its subject.
type TokenParser interface {
	Parse(tokenString string) (string, error)
}

// Authenticate validates bearer service tokens and injects the caller
// subject into the request context.
type Authenticate struct {
	parser TokenParser
	logger *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(parser TokenParser, logger *logger.Logger) *Authenticate {
	return &Authenticate{parser: parser, logger: logger}
}

// Handle checks the Authorization header before passing the request on.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if tokenString == "" {
			http.Error(w, "missing authorization token", http.StatusUnauthorized)
			return
		}

		subject, err := m.parser.Parse(tokenString)
		if err != nil {
			m.logger.Debug("rejected service token", "error", err.Error())
			http.Error(w, "invalid authorization token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SubjectFromContext returns the caller subject set by Handle.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

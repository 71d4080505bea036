package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/ideanest/ideanest-backend/internal/entity"
	"github.com/ideanest/ideanest-backend/internal/pkg/response"
)

type sessionKey struct{}

// Introspector resolves a bearer token to a session.
type Introspector interface {
	Introspect(ctx context.Context, token string) (*entity.Session, error)
}

// Auth authenticates requests via bearer token introspection. Resolved
// sessions are cached by token so repeated calls within the TTL skip the
// auth service round trip.
func Auth(introspector Introspector, ttl time.Duration) func(next http.Handler) http.Handler {
	sessions := cache.New(ttl, 2*ttl)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := bearerToken(r)
			if token == "" {
				response.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			if cached, ok := sessions.Get(token); ok {
				session := cached.(*entity.Session)
				next.ServeHTTP(w, r.WithContext(withSession(ctx, session)))
				return
			}

			session, err := introspector.Introspect(ctx, token)
			if err != nil {
				ctxzap.Warn(ctx, "token introspection rejected", zap.Error(err))
				response.Error(w, http.StatusUnauthorized, "invalid or expired session")
				return
			}

			sessions.SetDefault(token, session)
			next.ServeHTTP(w, r.WithContext(withSession(ctx, session)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func withSession(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// SessionFromContext returns the authenticated session, or nil when the
// request did not pass the Auth middleware.
func SessionFromContext(ctx context.Context) *entity.Session {
	if session, ok := ctx.Value(sessionKey{}).(*entity.Session); ok {
		return session
	}
	return nil
}

// internal/handlers/middleware/auth.go
package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ammerola/stowage/internal/core/domain"
	"github.com/ammerola/stowage/internal/pkg/auth"
)

// TokenParser turns a bearer token into the calling actor
type TokenParser interface {
	Parse(raw string) (auth.Actor, error)
}

// Authenticate resolves the bearer token into an actor on the request
// context. A present but invalid token is always rejected. Requests without
// a token are rejected only when required is set.
func Authenticate(tokens TokenParser, required bool, l *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				if required {
					writeJSONError(w, http.StatusUnauthorized, "Authentication required")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				writeJSONError(w, http.StatusUnauthorized, "Malformed authorization header")
				return
			}

			actor, err := tokens.Parse(strings.TrimSpace(raw))
			if err != nil {
				l.WarnContext(r.Context(), "rejected bearer token", slog.String("error", err.Error()))
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithActor(r.Context(), actor)))
		})
	}
}

// RequireRole only lets actors with role through. With enforce unset the
// gate is open, matching the unauthenticated development mode.
func RequireRole(role domain.Role, enforce bool) Middleware {
	return func(next http.Handler) http.Handler {
		if !enforce {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := auth.ActorFrom(r.Context())
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if actor.Role != role {
				writeJSONError(w, http.StatusForbidden, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

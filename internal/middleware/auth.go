package middleware

import (
	"context"
	"net/http"

	"hackathon-backend/internal/model"
	"hackathon-backend/internal/session"
)

type contextKey string

const sessionUserContextKey contextKey = "session_user"

type AuthMiddleware struct {
	resolver session.Resolver
}

func NewAuthMiddleware(resolver session.Resolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// Identity resolves the request's identity and stores it in the context.
// Anonymous requests pass through with no identity; whether that is
// acceptable is decided per route by RequireAuth/RequireRoles.
func (m *AuthMiddleware) Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolver.Resolve(r.Context(), w, r)
		if err != nil {
			writeAuthError(w, http.StatusInternalServerError, "Failed to resolve session")
			return
		}

		if user != nil {
			ctx := context.WithValue(r.Context(), sessionUserContextKey, user)
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRoles passes when the identity's role set intersects the allowed
// set. It is evaluated strictly before the wrapped handler runs.
func (m *AuthMiddleware) RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			if !user.HasAnyRole(roles...) {
				writeAuthError(w, http.StatusForbidden, "Forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func UserFromContext(ctx context.Context) (*model.SessionUser, bool) {
	user, ok := ctx.Value(sessionUserContextKey).(*model.SessionUser)
	return user, ok && user != nil
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonEncode(w, map[string]string{"error": message})
}

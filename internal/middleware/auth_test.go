package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"hackathon-backend/internal/model"
)

type staticResolver struct {
	user *model.SessionUser
	err  error
}

func (s *staticResolver) Resolve(context.Context, http.ResponseWriter, *http.Request) (*model.SessionUser, error) {
	return s.user, s.err
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func serve(handler http.Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))
	return rec
}

func TestIdentityAttachesUser(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(&staticResolver{user: &model.SessionUser{UserID: 1, Username: "alice", Roles: []string{"judge"}}})

	var got *model.SessionUser
	handler := mw.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := serve(handler)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	require.Equal(t, "alice", got.Username)
}

func TestIdentityPassesAnonymousThrough(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(&staticResolver{})

	handler := mw.Identity(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := UserFromContext(r.Context())
		require.False(t, ok)
		w.WriteHeader(http.StatusOK)
	}))

	require.Equal(t, http.StatusOK, serve(handler).Code)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	t.Run("rejects anonymous with 401", func(t *testing.T) {
		mw := NewAuthMiddleware(&staticResolver{})
		handler := mw.Identity(mw.RequireAuth(okHandler()))
		require.Equal(t, http.StatusUnauthorized, serve(handler).Code)
	})

	t.Run("passes an authenticated user", func(t *testing.T) {
		mw := NewAuthMiddleware(&staticResolver{user: &model.SessionUser{UserID: 1, Username: "alice"}})
		handler := mw.Identity(mw.RequireAuth(okHandler()))
		require.Equal(t, http.StatusOK, serve(handler).Code)
	})
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	t.Run("anonymous gets 401, not 403", func(t *testing.T) {
		mw := NewAuthMiddleware(&staticResolver{})
		handler := mw.Identity(mw.RequireRoles(model.RoleAdmin)(okHandler()))
		require.Equal(t, http.StatusUnauthorized, serve(handler).Code)
	})

	t.Run("authenticated without role gets 403", func(t *testing.T) {
		mw := NewAuthMiddleware(&staticResolver{user: &model.SessionUser{UserID: 1, Username: "alice", Roles: []string{"participant"}}})
		handler := mw.Identity(mw.RequireRoles(model.RoleAdmin, model.RoleOrganizer)(okHandler()))
		require.Equal(t, http.StatusForbidden, serve(handler).Code)
	})

	t.Run("any intersecting role passes", func(t *testing.T) {
		mw := NewAuthMiddleware(&staticResolver{user: &model.SessionUser{UserID: 1, Username: "alice", Roles: []string{"judge", "organizer"}}})
		handler := mw.Identity(mw.RequireRoles(model.RoleAdmin, model.RoleOrganizer)(okHandler()))
		require.Equal(t, http.StatusOK, serve(handler).Code)
	})
}

func TestIdentityResolverFailure(t *testing.T) {
	t.Parallel()

	mw := NewAuthMiddleware(&staticResolver{err: context.DeadlineExceeded})
	handler := mw.Identity(okHandler())
	require.Equal(t, http.StatusInternalServerError, serve(handler).Code)
}

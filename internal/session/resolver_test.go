package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"hackathon-backend/internal/model"
)

type fakeUserStore struct {
	roles      map[int64][]string
	rolesErr   error
	users      map[string]model.User
	nextUserID int64
	created    []string
}

func (f *fakeUserStore) RolesForUser(_ context.Context, userID int64) ([]string, error) {
	if f.rolesErr != nil {
		return nil, f.rolesErr
	}
	return f.roles[userID], nil
}

func (f *fakeUserStore) FindOrCreateByUsername(_ context.Context, username string) (model.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	f.nextUserID++
	u := model.User{UserID: f.nextUserID, Username: username}
	if f.users == nil {
		f.users = map[string]model.User{}
	}
	f.users[username] = u
	f.created = append(f.created, username)
	return u, nil
}

func newCookieResolver(t *testing.T, store *fakeUserStore) (*CookieResolver, *Cookies) {
	t.Helper()

	signer, err := NewSigner("topsecret")
	require.NoError(t, err)
	cookies := NewCookies(signer, false)
	return NewCookieResolver(signer, cookies, store), cookies
}

func requestWithCookie(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	if token != "" {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}
	return r
}

func TestCookieResolverAnonymous(t *testing.T) {
	t.Parallel()

	resolver, _ := newCookieResolver(t, &fakeUserStore{})

	rec := httptest.NewRecorder()
	identity, err := resolver.Resolve(context.Background(), rec, requestWithCookie(""))
	require.NoError(t, err, "a missing cookie is not an error")
	require.Nil(t, identity)
	require.Empty(t, rec.Result().Cookies(), "nothing to clear for an anonymous request")
}

func TestCookieResolverRejectsTamperedCookie(t *testing.T) {
	t.Parallel()

	resolver, cookies := newCookieResolver(t, &fakeUserStore{})

	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Issue(rec, Payload{UserID: 1, Username: "alice"}))
	token := rec.Result().Cookies()[0].Value

	rec = httptest.NewRecorder()
	identity, err := resolver.Resolve(context.Background(), rec, requestWithCookie(token+"x"))
	require.NoError(t, err)
	require.Nil(t, identity)

	// The dead cookie must be cleared so the client stops resending it.
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	require.Equal(t, CookieName, cleared[0].Name)
	require.Negative(t, cleared[0].MaxAge)
}

func TestCookieResolverRejectsBadPayload(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{roles: map[int64][]string{1: {"admin"}}}
	resolver, _ := newCookieResolver(t, store)

	signer, err := NewSigner("topsecret")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	identity, err := resolver.Resolve(context.Background(), rec, requestWithCookie(signer.Sign("not-json")))
	require.NoError(t, err, "a garbled payload degrades to no session")
	require.Nil(t, identity)
}

func TestCookieResolverFetchesRolesLive(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{roles: map[int64][]string{1: {"judge"}}}
	resolver, cookies := newCookieResolver(t, store)

	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Issue(rec, Payload{UserID: 1, Username: "alice"}))
	token := rec.Result().Cookies()[0].Value

	identity, err := resolver.Resolve(context.Background(), httptest.NewRecorder(), requestWithCookie(token))
	require.NoError(t, err)
	require.Equal(t, &model.SessionUser{UserID: 1, Username: "alice", Roles: []string{"judge"}}, identity)

	// A role granted mid-session shows up on the very next request with the
	// same cookie.
	store.roles[1] = []string{"judge", "organizer"}

	identity, err = resolver.Resolve(context.Background(), httptest.NewRecorder(), requestWithCookie(token))
	require.NoError(t, err)
	require.Equal(t, []string{"judge", "organizer"}, identity.Roles)
}

func TestCookieResolverPropagatesDatastoreFailure(t *testing.T) {
	t.Parallel()

	store := &fakeUserStore{rolesErr: errors.New("connection refused")}
	resolver, cookies := newCookieResolver(t, store)

	rec := httptest.NewRecorder()
	require.NoError(t, cookies.Issue(rec, Payload{UserID: 1, Username: "alice"}))
	token := rec.Result().Cookies()[0].Value

	_, err := resolver.Resolve(context.Background(), httptest.NewRecorder(), requestWithCookie(token))
	require.Error(t, err)
}

func TestHeaderResolver(t *testing.T) {
	t.Parallel()

	t.Run("no header resolves to anonymous", func(t *testing.T) {
		resolver := NewHeaderResolver(&fakeUserStore{})
		r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)

		identity, err := resolver.Resolve(context.Background(), httptest.NewRecorder(), r)
		require.NoError(t, err)
		require.Nil(t, identity)
	})

	t.Run("auto-provisions on first sight and re-derives roles", func(t *testing.T) {
		store := &fakeUserStore{}
		resolver := NewHeaderResolver(store)

		r := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		r.Header.Set("X-User-Username", "carol")

		identity, err := resolver.Resolve(context.Background(), httptest.NewRecorder(), r)
		require.NoError(t, err)
		require.Equal(t, "carol", identity.Username)
		require.Equal(t, []string{"carol"}, store.created)

		// Second request: same user row, no second insert.
		identity2, err := resolver.Resolve(context.Background(), httptest.NewRecorder(), r)
		require.NoError(t, err)
		require.Equal(t, identity.UserID, identity2.UserID)
		require.Len(t, store.created, 1)
	})
}

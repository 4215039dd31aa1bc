package session

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"hackathon-backend/internal/model"
)

// roleSource is the slice of the datastore the resolvers need: the live role
// set for a user. Lookups happen on every request, never from a cache.
type roleSource interface {
	RolesForUser(ctx context.Context, userID int64) ([]string, error)
}

// userProvisioner additionally covers the trusted-header deployment mode,
// which creates a user row the first time an unknown username appears.
type userProvisioner interface {
	roleSource
	FindOrCreateByUsername(ctx context.Context, username string) (model.User, error)
}

// Resolver turns an inbound request into a resolved identity. A nil identity
// with a nil error means an anonymous request, which is not a failure; routes
// decide individually whether anonymous access is acceptable.
type Resolver interface {
	Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (*model.SessionUser, error)
}

// CookieResolver authenticates from the signed session cookie and re-derives
// roles from the datastore.
type CookieResolver struct {
	signer  *Signer
	cookies *Cookies
	roles   roleSource
}

func NewCookieResolver(signer *Signer, cookies *Cookies, roles roleSource) *CookieResolver {
	return &CookieResolver{signer: signer, cookies: cookies, roles: roles}
}

func (cr *CookieResolver) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) (*model.SessionUser, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, nil
	}

	token, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		cr.cookies.Revoke(w)
		return nil, nil
	}

	value, ok := cr.signer.Verify(token)
	if !ok {
		// Tampered or stale-secret token: clear it so the client stops
		// resending a dead cookie.
		cr.cookies.Revoke(w)
		return nil, nil
	}

	payload, ok := Decode(value)
	if !ok {
		slog.Warn("session cookie carried an unparseable payload")
		return nil, nil
	}

	roles, err := cr.roles.RolesForUser(ctx, payload.UserID)
	if err != nil {
		return nil, err
	}

	return &model.SessionUser{
		UserID:   payload.UserID,
		Username: payload.Username,
		Roles:    roles,
	}, nil
}

// HeaderResolver authenticates from a trusted upstream header carrying the
// username, auto-provisioning the user on first sight. It is meant for
// deployments where an authenticating proxy fronts the service.
type HeaderResolver struct {
	header string
	users  userProvisioner
}

const defaultUsernameHeader = "X-User-Username"

func NewHeaderResolver(users userProvisioner) *HeaderResolver {
	return &HeaderResolver{header: defaultUsernameHeader, users: users}
}

func (hr *HeaderResolver) Resolve(ctx context.Context, _ http.ResponseWriter, r *http.Request) (*model.SessionUser, error) {
	username := strings.TrimSpace(r.Header.Get(hr.header))
	if username == "" {
		return nil, nil
	}

	user, err := hr.users.FindOrCreateByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	roles, err := hr.users.RolesForUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	return &model.SessionUser{
		UserID:   user.UserID,
		Username: user.Username,
		Roles:    roles,
	}, nil
}

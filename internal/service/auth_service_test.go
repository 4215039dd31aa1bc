package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type fakeUserStore struct {
	users     map[int64]model.User
	roles     map[int64][]string
	roleIDs   map[string]int64
	nextID    int64
	claimErr  error
	replaced  map[int64][]int64
	claimedAs map[string]int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:     map[int64]model.User{},
		roles:     map[int64][]string{},
		roleIDs:   map[string]int64{"admin": 1, "organizer": 2, "judge": 3, "participant": 4},
		nextID:    1,
		replaced:  map[int64][]int64{},
		claimedAs: map[string]int64{},
	}
}

func (f *fakeUserStore) addUser(username string, roles ...string) int64 {
	id := f.nextID
	f.nextID++
	f.users[id] = model.User{UserID: id, Username: username}
	f.roles[id] = roles
	return id
}

func (f *fakeUserStore) ClaimUsername(ctx context.Context, username string) (int64, error) {
	if f.claimErr != nil {
		return 0, f.claimErr
	}
	id := f.addUser(username, "participant")
	f.claimedAs[username] = id
	return id, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, userID int64) (model.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserStore) RolesForUser(ctx context.Context, userID int64) ([]string, error) {
	return append([]string{}, f.roles[userID]...), nil
}

func (f *fakeUserStore) ListWithRoles(ctx context.Context) ([]model.UserWithRoles, error) {
	list := make([]model.UserWithRoles, 0, len(f.users))
	for id, u := range f.users {
		list = append(list, model.UserWithRoles{UserID: id, Username: u.Username, Roles: f.roles[id]})
	}
	return list, nil
}

func (f *fakeUserStore) RoleIDs(ctx context.Context) (map[string]int64, error) {
	return f.roleIDs, nil
}

func (f *fakeUserStore) ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	f.replaced[userID] = roleIDs

	byID := map[int64]string{}
	for name, id := range f.roleIDs {
		byID[id] = name
	}
	names := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		names = append(names, byID[id])
	}
	f.roles[userID] = names
	return nil
}

func TestAuthServiceClaim(t *testing.T) {
	t.Parallel()

	t.Run("assigns participant role on claim", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		svc := NewAuthService(store)

		user, err := svc.Claim(context.Background(), "alice")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
		require.Equal(t, []string{"participant"}, user.Roles)
		require.Positive(t, user.UserID)
	})

	t.Run("rejects blank username", func(t *testing.T) {
		t.Parallel()
		svc := NewAuthService(newFakeUserStore())

		_, err := svc.Claim(context.Background(), "   ")

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		store.claimErr = errors.New("boom")
		svc := NewAuthService(store)

		_, err := svc.Claim(context.Background(), "alice")
		require.Error(t, err)
	})
}

func TestAuthServiceMe(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	id := store.addUser("bob", "participant")
	svc := NewAuthService(store)
	session := &model.SessionUser{UserID: id, Username: "bob", Roles: []string{"participant"}}

	me, err := svc.Me(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, []string{"participant"}, me.Roles)

	// A grant made after the session was issued shows up immediately.
	store.roles[id] = []string{"participant", "judge"}

	me, err = svc.Me(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, []string{"participant", "judge"}, me.Roles)
}

func TestAuthServiceUpdateRoles(t *testing.T) {
	t.Parallel()

	t.Run("replaces target roles", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		adminID := store.addUser("root", "admin")
		targetID := store.addUser("carol", "participant")
		svc := NewAuthService(store)
		actor := &model.SessionUser{UserID: adminID, Username: "root", Roles: []string{"admin"}}

		result, err := svc.UpdateRoles(context.Background(), actor, targetID, []string{"Judge", " organizer ", "judge"})
		require.NoError(t, err)
		require.Equal(t, targetID, result.UserID)
		require.ElementsMatch(t, []string{"judge", "organizer"}, result.Roles)
	})

	t.Run("admin cannot strip own admin role", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		adminID := store.addUser("root", "admin")
		svc := NewAuthService(store)
		actor := &model.SessionUser{UserID: adminID, Username: "root", Roles: []string{"admin"}}

		_, err := svc.UpdateRoles(context.Background(), actor, adminID, []string{"participant"})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
		require.Empty(t, store.replaced, "role set must be untouched")

		roles, err := store.RolesForUser(context.Background(), adminID)
		require.NoError(t, err)
		require.Equal(t, []string{"admin"}, roles)
	})

	t.Run("admin may change own roles while keeping admin", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		adminID := store.addUser("root", "admin")
		svc := NewAuthService(store)
		actor := &model.SessionUser{UserID: adminID, Username: "root", Roles: []string{"admin"}}

		result, err := svc.UpdateRoles(context.Background(), actor, adminID, []string{"admin", "judge"})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{"admin", "judge"}, result.Roles)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		adminID := store.addUser("root", "admin")
		targetID := store.addUser("carol", "participant")
		svc := NewAuthService(store)
		actor := &model.SessionUser{UserID: adminID, Username: "root", Roles: []string{"admin"}}

		_, err := svc.UpdateRoles(context.Background(), actor, targetID, []string{"wizard"})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
		require.Contains(t, apiErr.Message, "wizard")
	})

	t.Run("unknown target user", func(t *testing.T) {
		t.Parallel()
		store := newFakeUserStore()
		adminID := store.addUser("root", "admin")
		svc := NewAuthService(store)
		actor := &model.SessionUser{UserID: adminID, Username: "root", Roles: []string{"admin"}}

		_, err := svc.UpdateRoles(context.Background(), actor, 9999, []string{"judge"})
		require.ErrorIs(t, err, model.ErrUserNotFound)
	})
}

package service

import (
	"context"
	"strings"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type userStore interface {
	ClaimUsername(ctx context.Context, username string) (int64, error)
	FindByID(ctx context.Context, userID int64) (model.User, error)
	RolesForUser(ctx context.Context, userID int64) ([]string, error)
	ListWithRoles(ctx context.Context) ([]model.UserWithRoles, error)
	RoleIDs(ctx context.Context) (map[string]int64, error)
	ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error
}

type AuthService struct {
	users userStore
}

func NewAuthService(users userStore) *AuthService {
	return &AuthService{users: users}
}

// Claim registers a username and returns the identity to embed in the
// session cookie. Uniqueness is the datastore's call.
func (s *AuthService) Claim(ctx context.Context, username string) (model.SessionUser, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return model.SessionUser{}, apierror.BadRequest("username is required")
	}

	userID, err := s.users.ClaimUsername(ctx, username)
	if err != nil {
		return model.SessionUser{}, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return model.SessionUser{}, err
	}

	roles, err := s.users.RolesForUser(ctx, userID)
	if err != nil {
		return model.SessionUser{}, err
	}

	return model.SessionUser{UserID: user.UserID, Username: user.Username, Roles: roles}, nil
}

// Me re-reads the caller's roles so the response reflects grants made since
// the identity middleware ran.
func (s *AuthService) Me(ctx context.Context, user *model.SessionUser) (model.SessionUser, error) {
	roles, err := s.users.RolesForUser(ctx, user.UserID)
	if err != nil {
		return model.SessionUser{}, err
	}

	return model.SessionUser{UserID: user.UserID, Username: user.Username, Roles: roles}, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]model.UserWithRoles, error) {
	return s.users.ListWithRoles(ctx)
}

// UpdateRoles replaces the target user's role set. The acting admin cannot
// strip their own admin role; the guard deliberately checks only the actor's
// own row, not whether other admins remain.
func (s *AuthService) UpdateRoles(ctx context.Context, actor *model.SessionUser, targetUserID int64, roles []string) (model.UserRoles, error) {
	normalized := normalizeRoles(roles)

	if targetUserID == actor.UserID && !contains(normalized, model.RoleAdmin) {
		return model.UserRoles{}, apierror.BadRequest("Cannot remove your own admin role")
	}

	roleIDs, err := s.users.RoleIDs(ctx)
	if err != nil {
		return model.UserRoles{}, err
	}

	ids := make([]int64, 0, len(normalized))
	for _, name := range normalized {
		id, ok := roleIDs[name]
		if !ok {
			return model.UserRoles{}, apierror.BadRequest("Unknown role: " + name)
		}
		ids = append(ids, id)
	}

	if _, err := s.users.FindByID(ctx, targetUserID); err != nil {
		return model.UserRoles{}, err
	}

	if err := s.users.ReplaceRoles(ctx, targetUserID, ids); err != nil {
		return model.UserRoles{}, err
	}

	updated, err := s.users.RolesForUser(ctx, targetUserID)
	if err != nil {
		return model.UserRoles{}, err
	}

	return model.UserRoles{UserID: targetUserID, Roles: updated}, nil
}

func normalizeRoles(roles []string) []string {
	seen := map[string]struct{}{}
	normalized := make([]string, 0, len(roles))
	for _, role := range roles {
		name := strings.ToLower(strings.TrimSpace(role))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		normalized = append(normalized, name)
	}
	return normalized
}

func contains(roles []string, want string) bool {
	for _, role := range roles {
		if role == want {
			return true
		}
	}
	return false
}

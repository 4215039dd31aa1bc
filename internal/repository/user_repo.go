package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, username, created_at FROM users WHERE user_id = $1`, userID).
		Scan(&u.UserID, &u.Username, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.NotFound("user not found", fmt.Sprintf("%d", userID))
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, username, created_at FROM users WHERE username = $1`,
		strings.TrimSpace(username)).
		Scan(&u.UserID, &u.Username, &u.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, apierror.NotFound("user not found", username)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// ClaimUsername invokes sp_claim_username; uniqueness is enforced by the
// routine and comes back as a rule violation.
func (r *UserRepository) ClaimUsername(ctx context.Context, username string) (int64, error) {
	var userID int64
	err := r.pool.QueryRow(ctx,
		`SELECT sp_claim_username($1)`, strings.TrimSpace(username)).Scan(&userID)
	if err != nil {
		return 0, asRuleViolation(fmt.Errorf("claim username: %w", err))
	}
	return userID, nil
}

// FindOrCreateByUsername backs the trusted-header deployment mode: an
// unknown username gets a user row on first sight.
func (r *UserRepository) FindOrCreateByUsername(ctx context.Context, username string) (model.User, error) {
	username = strings.TrimSpace(username)

	var u model.User
	err := r.pool.QueryRow(ctx, `
		WITH created AS (
			INSERT INTO users (username)
			VALUES ($1)
			ON CONFLICT (username) DO NOTHING
			RETURNING user_id, username, created_at
		)
		SELECT user_id, username, created_at FROM created
		UNION ALL
		SELECT user_id, username, created_at FROM users WHERE username = $1
		LIMIT 1
	`, username).Scan(&u.UserID, &u.Username, &u.CreatedAt)
	if err != nil {
		return model.User{}, fmt.Errorf("find or create user: %w", err)
	}
	return u, nil
}

// RolesForUser is the live role read performed on every request; there is no
// cache in front of it on purpose.
func (r *UserRepository) RolesForUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT r.name
		FROM user_roles ur
		JOIN roles r ON r.role_id = ur.role_id
		WHERE ur.user_id = $1
		ORDER BY r.name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch roles: %w", err)
	}
	defer rows.Close()

	roles := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		roles = append(roles, name)
	}
	return roles, rows.Err()
}

func (r *UserRepository) ListWithRoles(ctx context.Context) ([]model.UserWithRoles, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.user_id, u.username, u.created_at,
		       COALESCE(array_agg(r.name ORDER BY r.name) FILTER (WHERE r.name IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles ur ON ur.user_id = u.user_id
		LEFT JOIN roles r ON r.role_id = ur.role_id
		GROUP BY u.user_id
		ORDER BY u.created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]model.UserWithRoles, 0)
	for rows.Next() {
		var u model.UserWithRoles
		if err := rows.Scan(&u.UserID, &u.Username, &u.CreatedAt, &u.Roles); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// RoleIDs maps role names to ids for validating a role-update request.
func (r *UserRepository) RoleIDs(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, role_id FROM roles`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()

	ids := map[string]int64{}
	for rows.Next() {
		var name string
		var id int64
		if err := rows.Scan(&name, &id); err != nil {
			return nil, fmt.Errorf("scan role id: %w", err)
		}
		ids[name] = id
	}
	return ids, rows.Err()
}

// ReplaceRoles swaps a user's entire role set in one transaction. Role
// mutation is the only write on these tables, so readers never see a partial
// set.
func (r *UserRepository) ReplaceRoles(ctx context.Context, userID int64, roleIDs []int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin role update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear roles: %w", err)
	}

	for _, roleID := range roleIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)`, userID, roleID); err != nil {
			return fmt.Errorf("grant role: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit role update: %w", err)
	}
	return nil
}

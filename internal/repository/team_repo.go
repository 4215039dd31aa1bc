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

type TeamRepository struct {
	pool *pgxpool.Pool
}

func NewTeamRepository(pool *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{pool: pool}
}

func (r *TeamRepository) ListOverview(ctx context.Context) ([]model.TeamOverview, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			t.team_id, t.team_name, t.owner_user_id, t.created_at,
			u.username,
			COUNT(DISTINCT tm.user_id),
			p.project_id
		FROM teams t
		JOIN users u ON u.user_id = t.owner_user_id
		LEFT JOIN team_members tm ON tm.team_id = t.team_id
		LEFT JOIN projects p ON p.team_id = t.team_id
		GROUP BY t.team_id, u.username, p.project_id
		ORDER BY t.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]model.TeamOverview, 0)
	for rows.Next() {
		var t model.TeamOverview
		if err := rows.Scan(&t.TeamID, &t.TeamName, &t.OwnerUserID, &t.CreatedAt,
			&t.OwnerUsername, &t.MemberCount, &t.ProjectID); err != nil {
			return nil, fmt.Errorf("scan team overview: %w", err)
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// TeamForUser returns the user's team, or nil when the user has none.
func (r *TeamRepository) TeamForUser(ctx context.Context, userID int64) (*model.Team, error) {
	var t model.Team
	err := r.pool.QueryRow(ctx, `
		SELECT t.team_id, t.team_name, t.owner_user_id, t.created_at
		FROM team_members tm
		JOIN teams t ON t.team_id = tm.team_id
		WHERE tm.user_id = $1
	`, userID).Scan(&t.TeamID, &t.TeamName, &t.OwnerUserID, &t.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find team for user: %w", err)
	}
	return &t, nil
}

func (r *TeamRepository) FindByID(ctx context.Context, teamID int64) (model.Team, error) {
	var t model.Team
	err := r.pool.QueryRow(ctx,
		`SELECT team_id, team_name, owner_user_id, created_at FROM teams WHERE team_id = $1`,
		teamID).Scan(&t.TeamID, &t.TeamName, &t.OwnerUserID, &t.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Team{}, apierror.NotFound("team not found", fmt.Sprintf("%d", teamID))
	}
	if err != nil {
		return model.Team{}, fmt.Errorf("find team: %w", err)
	}
	return t, nil
}

func (r *TeamRepository) Members(ctx context.Context, teamID int64) ([]model.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.user_id, u.username
		FROM team_members tm
		JOIN users u ON u.user_id = tm.user_id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	members := make([]model.TeamMember, 0)
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.UserID, &m.Username); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) Create(ctx context.Context, ownerUserID int64, teamName string) (model.Team, error) {
	var teamID int64
	err := r.pool.QueryRow(ctx,
		`SELECT sp_create_team($1, $2)`, ownerUserID, strings.TrimSpace(teamName)).Scan(&teamID)
	if err != nil {
		return model.Team{}, asRuleViolation(fmt.Errorf("create team: %w", err))
	}
	return r.FindByID(ctx, teamID)
}

func (r *TeamRepository) CreateInvite(ctx context.Context, actorUserID int64, teamID int64, inviteeUsername string, token string) (model.TeamInvite, error) {
	var returned string
	err := r.pool.QueryRow(ctx,
		`SELECT sp_invite_user($1, $2, $3, $4)`,
		actorUserID, teamID, strings.TrimSpace(inviteeUsername), token).Scan(&returned)
	if err != nil {
		return model.TeamInvite{}, asRuleViolation(fmt.Errorf("create invite: %w", err))
	}
	return r.findInviteByToken(ctx, returned)
}

func (r *TeamRepository) AcceptInvite(ctx context.Context, token string, userID int64) error {
	if _, err := r.pool.Exec(ctx, `SELECT sp_accept_invite($1, $2)`, token, userID); err != nil {
		return asRuleViolation(fmt.Errorf("accept invite: %w", err))
	}
	return nil
}

func (r *TeamRepository) PendingInvitesForTeam(ctx context.Context, teamID int64) ([]model.TeamInvite, error) {
	return r.queryInvites(ctx, `
		SELECT ti.invite_id, ti.team_id, t.team_name, ti.invitee_username, ti.token, ti.status, ti.created_at
		FROM team_invites ti
		JOIN teams t ON t.team_id = ti.team_id
		WHERE ti.team_id = $1 AND ti.status = 'pending'
		ORDER BY ti.created_at DESC
	`, teamID)
}

func (r *TeamRepository) PendingInvitesForUsername(ctx context.Context, username string) ([]model.TeamInvite, error) {
	return r.queryInvites(ctx, `
		SELECT ti.invite_id, ti.team_id, t.team_name, ti.invitee_username, ti.token, ti.status, ti.created_at
		FROM team_invites ti
		JOIN teams t ON t.team_id = ti.team_id
		WHERE ti.status = 'pending' AND ti.invitee_username = $1
		ORDER BY ti.created_at DESC
	`, username)
}

func (r *TeamRepository) queryInvites(ctx context.Context, sql string, args ...any) ([]model.TeamInvite, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	defer rows.Close()

	invites := make([]model.TeamInvite, 0)
	for rows.Next() {
		var inv model.TeamInvite
		if err := rows.Scan(&inv.InviteID, &inv.TeamID, &inv.TeamName, &inv.InviteeUsername,
			&inv.Token, &inv.Status, &inv.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan invite: %w", err)
		}
		invites = append(invites, inv)
	}
	return invites, rows.Err()
}

func (r *TeamRepository) findInviteByToken(ctx context.Context, token string) (model.TeamInvite, error) {
	var inv model.TeamInvite
	err := r.pool.QueryRow(ctx, `
		SELECT ti.invite_id, ti.team_id, t.team_name, ti.invitee_username, ti.token, ti.status, ti.created_at
		FROM team_invites ti
		JOIN teams t ON t.team_id = ti.team_id
		WHERE ti.token = $1
	`, token).Scan(&inv.InviteID, &inv.TeamID, &inv.TeamName, &inv.InviteeUsername,
		&inv.Token, &inv.Status, &inv.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.TeamInvite{}, apierror.NotFound("invite not found", "")
	}
	if err != nil {
		return model.TeamInvite{}, fmt.Errorf("find invite: %w", err)
	}
	return inv, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// ForUser returns the project of the team the user belongs to, or nil.
func (r *ProjectRepository) ForUser(ctx context.Context, userID int64) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx, `
		SELECT p.project_id, p.team_id, p.title, p.abstract, p.repo_url, p.demo_url, p.track_id, p.updated_at
		FROM projects p
		JOIN team_members tm ON tm.team_id = p.team_id
		WHERE tm.user_id = $1
	`, userID).Scan(&p.ProjectID, &p.TeamID, &p.Title, &p.Abstract, &p.RepoURL, &p.DemoURL, &p.TrackID, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project for user: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) ForTeam(ctx context.Context, teamID int64) (*model.Project, error) {
	var p model.Project
	err := r.pool.QueryRow(ctx, `
		SELECT project_id, team_id, title, abstract, repo_url, demo_url, track_id, updated_at
		FROM projects WHERE team_id = $1
	`, teamID).Scan(&p.ProjectID, &p.TeamID, &p.Title, &p.Abstract, &p.RepoURL, &p.DemoURL, &p.TrackID, &p.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project for team: %w", err)
	}
	return &p, nil
}

// Submit upserts the team's single project through sp_submit_project.
func (r *ProjectRepository) Submit(ctx context.Context, teamID int64, req model.SubmitProjectRequest) (*model.Project, error) {
	_, err := r.pool.Exec(ctx,
		`SELECT sp_submit_project($1, $2, $3, $4, $5, $6)`,
		teamID, req.Title, req.Abstract, req.RepoURL, req.DemoURL, req.TrackID)
	if err != nil {
		return nil, asRuleViolation(fmt.Errorf("submit project: %w", err))
	}
	return r.ForTeam(ctx, teamID)
}

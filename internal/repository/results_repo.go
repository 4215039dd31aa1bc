package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

// ResultsRepository reads the reporting views; all aggregation happens in
// the database.
type ResultsRepository struct {
	pool *pgxpool.Pool
}

func NewResultsRepository(pool *pgxpool.Pool) *ResultsRepository {
	return &ResultsRepository{pool: pool}
}

func (r *ResultsRepository) Overall(ctx context.Context) ([]model.OverallScore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT team_id, team_name, project_id, title, rounds_scored, total_avg_score
		FROM vw_overall_scores
		ORDER BY total_avg_score DESC NULLS LAST
	`)
	if err != nil {
		return nil, fmt.Errorf("load overall scores: %w", err)
	}
	defer rows.Close()

	scores := make([]model.OverallScore, 0)
	for rows.Next() {
		var s model.OverallScore
		if err := rows.Scan(&s.TeamID, &s.TeamName, &s.ProjectID, &s.Title, &s.RoundsScored, &s.TotalAvgScore); err != nil {
			return nil, fmt.Errorf("scan overall score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (r *ResultsRepository) ByRound(ctx context.Context, roundID int64) ([]model.RoundScore, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT round_id, team_id, team_name, submission_id, score_count, avg_score
		FROM vw_round_scores
		WHERE round_id = $1
		ORDER BY avg_score DESC NULLS LAST
	`, roundID)
	if err != nil {
		return nil, fmt.Errorf("load round scores: %w", err)
	}
	defer rows.Close()

	scores := make([]model.RoundScore, 0)
	for rows.Next() {
		var s model.RoundScore
		if err := rows.Scan(&s.RoundID, &s.TeamID, &s.TeamName, &s.SubmissionID, &s.ScoreCount, &s.AvgScore); err != nil {
			return nil, fmt.Errorf("scan round score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (r *ResultsRepository) TeamParticipation(ctx context.Context) ([]model.TeamParticipation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT team_id, team_name, member_count, submission_count
		FROM vw_team_participation
		ORDER BY team_name
	`)
	if err != nil {
		return nil, fmt.Errorf("load team participation: %w", err)
	}
	defer rows.Close()

	items := make([]model.TeamParticipation, 0)
	for rows.Next() {
		var p model.TeamParticipation
		if err := rows.Scan(&p.TeamID, &p.TeamName, &p.MemberCount, &p.SubmissionCount); err != nil {
			return nil, fmt.Errorf("scan team participation: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *ResultsRepository) JudgeParticipation(ctx context.Context) ([]model.JudgeParticipation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT judge_user_id, username, assigned_teams, scores_submitted
		FROM vw_judge_participation
		ORDER BY username
	`)
	if err != nil {
		return nil, fmt.Errorf("load judge participation: %w", err)
	}
	defer rows.Close()

	items := make([]model.JudgeParticipation, 0)
	for rows.Next() {
		var p model.JudgeParticipation
		if err := rows.Scan(&p.JudgeUserID, &p.Username, &p.AssignedTeams, &p.ScoresSubmitted); err != nil {
			return nil, fmt.Errorf("scan judge participation: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

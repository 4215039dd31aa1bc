package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
)

type JudgingRepository struct {
	pool *pgxpool.Pool
}

func NewJudgingRepository(pool *pgxpool.Pool) *JudgingRepository {
	return &JudgingRepository{pool: pool}
}

func (r *JudgingRepository) ListRounds(ctx context.Context) ([]model.JudgingRound, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT round_id, name, seq_no, start_at, end_at FROM judging_rounds ORDER BY seq_no ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	defer rows.Close()

	rounds := make([]model.JudgingRound, 0)
	for rows.Next() {
		var jr model.JudgingRound
		if err := rows.Scan(&jr.RoundID, &jr.Name, &jr.SeqNo, &jr.StartAt, &jr.EndAt); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		rounds = append(rounds, jr)
	}
	return rounds, rows.Err()
}

func (r *JudgingRepository) CreateRound(ctx context.Context, name string, seqNo int, startAt, endAt *time.Time) (model.JudgingRound, error) {
	var jr model.JudgingRound
	err := r.pool.QueryRow(ctx, `
		INSERT INTO judging_rounds (name, seq_no, start_at, end_at)
		VALUES ($1, $2, $3, $4)
		RETURNING round_id, name, seq_no, start_at, end_at
	`, name, seqNo, startAt, endAt).Scan(&jr.RoundID, &jr.Name, &jr.SeqNo, &jr.StartAt, &jr.EndAt)
	if err != nil {
		return model.JudgingRound{}, asRuleViolation(fmt.Errorf("create round: %w", err))
	}
	return jr, nil
}

// QueueForJudge lists submissions assigned to the judge that the judge has
// not scored yet, latest first.
func (r *JudgingRepository) QueueForJudge(ctx context.Context, judgeUserID int64) ([]model.QueueItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			s.submission_id, s.project_id, s.round_id,
			s.submitted_at, s.sub_version, s.notes,
			t.team_id, t.team_name,
			p.title, p.abstract, p.repo_url, p.demo_url,
			jr.name, jr.seq_no,
			ja.assignment_id
		FROM submissions s
		JOIN projects p ON p.project_id = s.project_id
		JOIN teams t ON t.team_id = p.team_id
		JOIN judging_rounds jr ON jr.round_id = s.round_id
		JOIN judge_assignments ja ON ja.team_id = t.team_id AND ja.judge_user_id = $1
		WHERE NOT EXISTS (
			SELECT 1 FROM scores sc
			WHERE sc.submission_id = s.submission_id AND sc.judge_user_id = $1
		)
		ORDER BY s.submitted_at DESC
	`, judgeUserID)
	if err != nil {
		return nil, fmt.Errorf("load judge queue: %w", err)
	}
	defer rows.Close()

	queue := make([]model.QueueItem, 0)
	for rows.Next() {
		var q model.QueueItem
		if err := rows.Scan(&q.SubmissionID, &q.ProjectID, &q.RoundID,
			&q.SubmittedAt, &q.SubVersion, &q.Notes,
			&q.TeamID, &q.TeamName,
			&q.Title, &q.Abstract, &q.RepoURL, &q.DemoURL,
			&q.RoundName, &q.RoundSeq,
			&q.AssignmentID); err != nil {
			return nil, fmt.Errorf("scan queue item: %w", err)
		}
		queue = append(queue, q)
	}
	return queue, rows.Err()
}

func (r *JudgingRepository) RecordScore(ctx context.Context, judgeUserID int64, submissionID int64, score float64, feedback *string) error {
	if _, err := r.pool.Exec(ctx,
		`SELECT sp_record_score($1, $2, $3, $4)`, judgeUserID, submissionID, score, feedback); err != nil {
		return asRuleViolation(fmt.Errorf("record score: %w", err))
	}
	return nil
}

func (r *JudgingRepository) ListAssignments(ctx context.Context) ([]model.JudgeAssignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT
			ja.assignment_id,
			ja.judge_user_id,
			u.username,
			ja.team_id,
			t.team_name,
			ja.assigned_at
		FROM judge_assignments ja
		JOIN users u ON u.user_id = ja.judge_user_id
		JOIN teams t ON t.team_id = ja.team_id
		ORDER BY ja.assigned_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list judge assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]model.JudgeAssignment, 0)
	for rows.Next() {
		var a model.JudgeAssignment
		if err := rows.Scan(&a.AssignmentID, &a.JudgeUserID, &a.JudgeUsername,
			&a.TeamID, &a.TeamName, &a.AssignedAt); err != nil {
			return nil, fmt.Errorf("scan judge assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *JudgingRepository) Assign(ctx context.Context, teamID int64, judgeUserID int64, actorUserID int64) error {
	if _, err := r.pool.Exec(ctx,
		`SELECT sp_assign_judge($1, $2, $3)`, teamID, judgeUserID, actorUserID); err != nil {
		return asRuleViolation(fmt.Errorf("assign judge: %w", err))
	}
	return nil
}

func (r *JudgingRepository) RemoveAssignment(ctx context.Context, teamID int64, judgeUserID int64, actorUserID int64) error {
	if _, err := r.pool.Exec(ctx,
		`SELECT sp_remove_judge_assignment($1, $2, $3)`, teamID, judgeUserID, actorUserID); err != nil {
		return asRuleViolation(fmt.Errorf("remove judge assignment: %w", err))
	}
	return nil
}

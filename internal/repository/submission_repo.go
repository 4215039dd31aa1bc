package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type SubmissionRepository struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

// ListForUser returns the submissions of the caller's team, newest rounds
// first.
func (r *SubmissionRepository) ListForUser(ctx context.Context, userID int64) ([]model.Submission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.submission_id, s.project_id, s.round_id, s.sub_version, s.notes, s.submitted_at,
		       jr.name, jr.seq_no, p.team_id
		FROM submissions s
		JOIN projects p ON p.project_id = s.project_id
		JOIN team_members tm ON tm.team_id = p.team_id
		JOIN judging_rounds jr ON jr.round_id = s.round_id
		WHERE tm.user_id = $1
		ORDER BY jr.seq_no DESC, s.submitted_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]model.Submission, 0)
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.SubmissionID, &s.ProjectID, &s.RoundID, &s.SubVersion, &s.Notes,
			&s.SubmittedAt, &s.RoundName, &s.SeqNo, &s.TeamID); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (r *SubmissionRepository) Create(ctx context.Context, projectID int64, roundID int64, notes *string) (model.Submission, error) {
	var submissionID int64
	err := r.pool.QueryRow(ctx,
		`SELECT sp_create_submission($1, $2, $3)`, projectID, roundID, notes).Scan(&submissionID)
	if err != nil {
		return model.Submission{}, asRuleViolation(fmt.Errorf("create submission: %w", err))
	}
	return r.findByID(ctx, submissionID)
}

func (r *SubmissionRepository) findByID(ctx context.Context, submissionID int64) (model.Submission, error) {
	var s model.Submission
	err := r.pool.QueryRow(ctx, `
		SELECT submission_id, project_id, round_id, sub_version, notes, submitted_at
		FROM submissions WHERE submission_id = $1
	`, submissionID).Scan(&s.SubmissionID, &s.ProjectID, &s.RoundID, &s.SubVersion, &s.Notes, &s.SubmittedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Submission{}, apierror.NotFound("submission not found", fmt.Sprintf("%d", submissionID))
	}
	if err != nil {
		return model.Submission{}, fmt.Errorf("find submission: %w", err)
	}
	return s, nil
}

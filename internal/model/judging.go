package model

import "time"

type JudgingRound struct {
	RoundID int64      `json:"round_id"`
	Name    string     `json:"name"`
	SeqNo   int        `json:"seq_no"`
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
}

// QueueItem is an unscored submission assigned to the requesting judge.
type QueueItem struct {
	SubmissionID int64     `json:"submission_id"`
	ProjectID    int64     `json:"project_id"`
	RoundID      int64     `json:"round_id"`
	SubmittedAt  time.Time `json:"submitted_at"`
	SubVersion   int       `json:"sub_version"`
	Notes        *string   `json:"notes"`
	TeamID       int64     `json:"team_id"`
	TeamName     string    `json:"team_name"`
	Title        string    `json:"title"`
	Abstract     *string   `json:"abstract"`
	RepoURL      *string   `json:"repo_url"`
	DemoURL      *string   `json:"demo_url"`
	RoundName    string    `json:"round_name"`
	RoundSeq     int       `json:"round_seq"`
	AssignmentID int64     `json:"assignment_id"`
}

type JudgeAssignment struct {
	AssignmentID  int64     `json:"assignment_id"`
	JudgeUserID   int64     `json:"judge_user_id"`
	JudgeUsername string    `json:"judge_username"`
	TeamID        int64     `json:"team_id"`
	TeamName      string    `json:"team_name"`
	AssignedAt    time.Time `json:"assigned_at"`
}

package model

import "time"

type Project struct {
	ProjectID int64     `json:"project_id"`
	TeamID    int64     `json:"team_id"`
	Title     string    `json:"title"`
	Abstract  *string   `json:"abstract"`
	RepoURL   *string   `json:"repo_url"`
	DemoURL   *string   `json:"demo_url"`
	TrackID   *int64    `json:"track_id"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Submission struct {
	SubmissionID int64     `json:"submission_id"`
	ProjectID    int64     `json:"project_id"`
	RoundID      int64     `json:"round_id"`
	SubVersion   int       `json:"sub_version"`
	Notes        *string   `json:"notes"`
	SubmittedAt  time.Time `json:"submitted_at"`

	// Joined columns on the participant listing.
	RoundName string `json:"round_name,omitempty"`
	SeqNo     int    `json:"seq_no,omitempty"`
	TeamID    int64  `json:"team_id,omitempty"`
}

package model

import "time"

// Hackathon is the singleton event configuration row (hackathon_id = 1).
type Hackathon struct {
	HackathonID int64      `json:"hackathon_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	StartAt     *time.Time `json:"start_at"`
	EndAt       *time.Time `json:"end_at"`
	RegStartAt  *time.Time `json:"reg_start_at"`
	RegEndAt    *time.Time `json:"reg_end_at"`
	MinTeamSize int        `json:"min_team_size"`
	MaxTeamSize int        `json:"max_team_size"`
	Published   bool       `json:"published"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Track struct {
	TrackID     int64   `json:"track_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	MaxTeams    *int    `json:"max_teams"`
}

type Announcement struct {
	AnnouncementID int64     `json:"announcement_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorUserID   *int64    `json:"author_user_id"`
	AuthorUsername *string   `json:"author_username,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

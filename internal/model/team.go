package model

import "time"

type Team struct {
	TeamID      int64     `json:"team_id"`
	TeamName    string    `json:"team_name"`
	OwnerUserID int64     `json:"owner_user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// TeamOverview is one row of the organizer roster listing.
type TeamOverview struct {
	TeamID        int64     `json:"team_id"`
	TeamName      string    `json:"team_name"`
	OwnerUserID   int64     `json:"owner_user_id"`
	CreatedAt     time.Time `json:"created_at"`
	OwnerUsername string    `json:"owner_username"`
	MemberCount   int       `json:"member_count"`
	ProjectID     *int64    `json:"project_id"`
}

type TeamMember struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

type TeamInvite struct {
	InviteID        int64     `json:"invite_id"`
	TeamID          int64     `json:"team_id"`
	TeamName        string    `json:"team_name,omitempty"`
	InviteeUsername string    `json:"invitee_username"`
	Token           string    `json:"token"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// MyTeam bundles everything the team dashboard shows for the caller's team.
type MyTeam struct {
	Team    Team         `json:"team"`
	Members []TeamMember `json:"members"`
	Invites []TeamInvite `json:"invites"`
	Project *Project     `json:"project"`
}

package model

type ClaimRequest struct {
	Username string `json:"username"`
}

type UpdateRolesRequest struct {
	Roles []string `json:"roles"`
}

type UpsertHackathonRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	StartAt     *string `json:"start_at"`
	EndAt       *string `json:"end_at"`
	RegStartAt  *string `json:"reg_start_at"`
	RegEndAt    *string `json:"reg_end_at"`
	MinTeamSize *int    `json:"min_team_size"`
	MaxTeamSize *int    `json:"max_team_size"`
	Published   bool    `json:"published"`
}

type CreateTrackRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	MaxTeams    *int    `json:"max_teams"`
}

type CreatePrizeRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	PrizeValue  *float64 `json:"prize_value"`
}

type AwardPrizeRequest struct {
	TeamID int64 `json:"team_id"`
}

type CreateAnnouncementRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateTeamRequest struct {
	TeamName string `json:"team_name"`
}

type InviteRequest struct {
	Username string `json:"username"`
}

type AcceptInviteRequest struct {
	Token string `json:"token"`
}

type SubmitProjectRequest struct {
	Title    string  `json:"title"`
	Abstract *string `json:"abstract"`
	RepoURL  *string `json:"repo_url"`
	DemoURL  *string `json:"demo_url"`
	TrackID  *int64  `json:"track_id"`
}

type CreateSubmissionRequest struct {
	RoundID int64   `json:"round_id"`
	Notes   *string `json:"notes"`
}

type CreateRoundRequest struct {
	Name    string  `json:"name"`
	SeqNo   *int    `json:"seq_no"`
	StartAt *string `json:"start_at"`
	EndAt   *string `json:"end_at"`
}

type RecordScoreRequest struct {
	SubmissionID int64    `json:"submission_id"`
	Score        *float64 `json:"score"`
	Feedback     *string  `json:"feedback"`
}

type AssignmentRequest struct {
	TeamID      int64 `json:"team_id"`
	JudgeUserID int64 `json:"judge_user_id"`
}

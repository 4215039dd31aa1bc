package model

// Rows projected from the reporting views. Aggregation lives in the database;
// these structs only carry the shapes back to the client.

type OverallScore struct {
	TeamID        int64    `json:"team_id"`
	TeamName      string   `json:"team_name"`
	ProjectID     *int64   `json:"project_id"`
	Title         *string  `json:"title"`
	RoundsScored  int      `json:"rounds_scored"`
	TotalAvgScore *float64 `json:"total_avg_score"`
}

type RoundScore struct {
	RoundID      int64    `json:"round_id"`
	TeamID       int64    `json:"team_id"`
	TeamName     string   `json:"team_name"`
	SubmissionID int64    `json:"submission_id"`
	ScoreCount   int      `json:"score_count"`
	AvgScore     *float64 `json:"avg_score"`
}

type TeamParticipation struct {
	TeamID          int64  `json:"team_id"`
	TeamName        string `json:"team_name"`
	MemberCount     int    `json:"member_count"`
	SubmissionCount int    `json:"submission_count"`
}

type JudgeParticipation struct {
	JudgeUserID     int64  `json:"judge_user_id"`
	Username        string `json:"username"`
	AssignedTeams   int    `json:"assigned_teams"`
	ScoresSubmitted int    `json:"scores_submitted"`
}

package model

import "time"

type Prize struct {
	PrizeID     int64    `json:"prize_id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Quantity    int      `json:"quantity"`
	PrizeValue  *float64 `json:"prize_value"`
}

type PrizeAward struct {
	AwardID   int64     `json:"award_id"`
	PrizeID   int64     `json:"prize_id"`
	TeamID    int64     `json:"team_id"`
	AwardedAt time.Time `json:"awarded_at"`
}

// PrizeBoard is the combined response of the prize listing endpoint.
type PrizeBoard struct {
	Prizes []Prize      `json:"prizes"`
	Awards []PrizeAward `json:"awards"`
}

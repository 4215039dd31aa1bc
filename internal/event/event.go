package event

type Type string

const (
	TypeAnnouncementCreated Type = "announcement.created"
	TypeTeamCreated         Type = "team.created"
	TypeInviteAccepted      Type = "invite.accepted"
	TypeScoreRecorded       Type = "score.recorded"
	TypePrizeAwarded        Type = "prize.awarded"
)

type Event struct {
	ID        string `json:"id"`
	Type      Type   `json:"type"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
	ActorID   int64  `json:"actor_id,omitempty"`
}

type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}

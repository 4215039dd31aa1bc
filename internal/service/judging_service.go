package service

import (
	"context"
	"strings"
	"time"

	"hackathon-backend/internal/event"
	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type judgingStore interface {
	ListRounds(ctx context.Context) ([]model.JudgingRound, error)
	CreateRound(ctx context.Context, name string, seqNo int, startAt, endAt *time.Time) (model.JudgingRound, error)
	QueueForJudge(ctx context.Context, judgeUserID int64) ([]model.QueueItem, error)
	RecordScore(ctx context.Context, judgeUserID, submissionID int64, score float64, feedback *string) error
	ListAssignments(ctx context.Context) ([]model.JudgeAssignment, error)
	Assign(ctx context.Context, teamID, judgeUserID, actorUserID int64) error
	RemoveAssignment(ctx context.Context, teamID, judgeUserID, actorUserID int64) error
}

type JudgingService struct {
	judging judgingStore
	bus     event.Bus
}

func NewJudgingService(judging judgingStore, bus event.Bus) *JudgingService {
	return &JudgingService{judging: judging, bus: bus}
}

func (s *JudgingService) Rounds(ctx context.Context) ([]model.JudgingRound, error) {
	return s.judging.ListRounds(ctx)
}

func (s *JudgingService) CreateRound(ctx context.Context, req model.CreateRoundRequest) (model.JudgingRound, error) {
	if strings.TrimSpace(req.Name) == "" {
		return model.JudgingRound{}, apierror.BadRequest("name is required")
	}
	if req.SeqNo == nil || *req.SeqNo <= 0 {
		return model.JudgingRound{}, apierror.BadRequest("seqNo must be a positive integer")
	}

	startAt, err := parseTimestamp(req.StartAt)
	if err != nil {
		return model.JudgingRound{}, err
	}
	endAt, err := parseTimestamp(req.EndAt)
	if err != nil {
		return model.JudgingRound{}, err
	}

	return s.judging.CreateRound(ctx, strings.TrimSpace(req.Name), *req.SeqNo, startAt, endAt)
}

func (s *JudgingService) Queue(ctx context.Context, user *model.SessionUser) ([]model.QueueItem, error) {
	return s.judging.QueueForJudge(ctx, user.UserID)
}

// Score records or revises the judge's score for a submission. Assignment
// and score-range checks live in the datastore.
func (s *JudgingService) Score(ctx context.Context, user *model.SessionUser, req model.RecordScoreRequest) error {
	if req.SubmissionID <= 0 {
		return apierror.BadRequest("submissionId is required")
	}
	if req.Score == nil {
		return apierror.BadRequest("score is required")
	}

	if err := s.judging.RecordScore(ctx, user.UserID, req.SubmissionID, *req.Score, req.Feedback); err != nil {
		return err
	}

	s.bus.Publish(event.Event{
		Type:    event.TypeScoreRecorded,
		Payload: map[string]any{"submissionId": req.SubmissionID},
		ActorID: user.UserID,
	})
	return nil
}

func (s *JudgingService) Assignments(ctx context.Context) ([]model.JudgeAssignment, error) {
	return s.judging.ListAssignments(ctx)
}

func (s *JudgingService) Assign(ctx context.Context, user *model.SessionUser, req model.AssignmentRequest) error {
	if req.TeamID <= 0 || req.JudgeUserID <= 0 {
		return apierror.BadRequest("teamId and judgeUserId are required")
	}
	return s.judging.Assign(ctx, req.TeamID, req.JudgeUserID, user.UserID)
}

func (s *JudgingService) Unassign(ctx context.Context, user *model.SessionUser, req model.AssignmentRequest) error {
	if req.TeamID <= 0 || req.JudgeUserID <= 0 {
		return apierror.BadRequest("teamId and judgeUserId are required")
	}
	return s.judging.RemoveAssignment(ctx, req.TeamID, req.JudgeUserID, user.UserID)
}

// parseTimestamp accepts RFC 3339 timestamps, passing nil through.
func parseTimestamp(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(*raw))
	if err != nil {
		return nil, apierror.BadRequest("invalid timestamp: " + *raw)
	}
	return &t, nil
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hackathon-backend/internal/event"
	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type fakeJudgingStore struct {
	rounds []model.JudgingRound
	scored []int64
}

func (f *fakeJudgingStore) ListRounds(ctx context.Context) ([]model.JudgingRound, error) {
	return f.rounds, nil
}

func (f *fakeJudgingStore) CreateRound(ctx context.Context, name string, seqNo int, startAt, endAt *time.Time) (model.JudgingRound, error) {
	jr := model.JudgingRound{RoundID: int64(len(f.rounds) + 1), Name: name, SeqNo: seqNo, StartAt: startAt, EndAt: endAt}
	f.rounds = append(f.rounds, jr)
	return jr, nil
}

func (f *fakeJudgingStore) QueueForJudge(ctx context.Context, judgeUserID int64) ([]model.QueueItem, error) {
	return []model.QueueItem{}, nil
}

func (f *fakeJudgingStore) RecordScore(ctx context.Context, judgeUserID, submissionID int64, score float64, feedback *string) error {
	f.scored = append(f.scored, submissionID)
	return nil
}

func (f *fakeJudgingStore) ListAssignments(ctx context.Context) ([]model.JudgeAssignment, error) {
	return []model.JudgeAssignment{}, nil
}

func (f *fakeJudgingStore) Assign(ctx context.Context, teamID, judgeUserID, actorUserID int64) error {
	return nil
}

func (f *fakeJudgingStore) RemoveAssignment(ctx context.Context, teamID, judgeUserID, actorUserID int64) error {
	return nil
}

func intPtr(v int) *int          { return &v }
func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestJudgingServiceCreateRound(t *testing.T) {
	t.Parallel()

	t.Run("parses RFC 3339 bounds", func(t *testing.T) {
		t.Parallel()
		store := &fakeJudgingStore{}
		svc := NewJudgingService(store, &recordingBus{})

		jr, err := svc.CreateRound(context.Background(), model.CreateRoundRequest{
			Name:    "Finals",
			SeqNo:   intPtr(2),
			StartAt: strPtr("2026-09-01T09:00:00Z"),
			EndAt:   strPtr("2026-09-01T17:00:00Z"),
		})
		require.NoError(t, err)
		require.Equal(t, "Finals", jr.Name)
		require.Equal(t, 2, jr.SeqNo)
		require.NotNil(t, jr.StartAt)
		require.Equal(t, 9, jr.StartAt.UTC().Hour())
	})

	t.Run("rejects malformed timestamp", func(t *testing.T) {
		t.Parallel()
		svc := NewJudgingService(&fakeJudgingStore{}, &recordingBus{})

		_, err := svc.CreateRound(context.Background(), model.CreateRoundRequest{
			Name:    "Finals",
			SeqNo:   intPtr(1),
			StartAt: strPtr("next tuesday"),
		})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})

	t.Run("requires name and sequence number", func(t *testing.T) {
		t.Parallel()
		svc := NewJudgingService(&fakeJudgingStore{}, &recordingBus{})

		_, err := svc.CreateRound(context.Background(), model.CreateRoundRequest{Name: " "})
		require.Error(t, err)

		_, err = svc.CreateRound(context.Background(), model.CreateRoundRequest{Name: "Finals"})
		require.Error(t, err)
	})
}

func TestJudgingServiceScore(t *testing.T) {
	t.Parallel()

	t.Run("records and publishes", func(t *testing.T) {
		t.Parallel()
		store := &fakeJudgingStore{}
		bus := &recordingBus{}
		svc := NewJudgingService(store, bus)
		judge := &model.SessionUser{UserID: 3, Username: "judy", Roles: []string{"judge"}}

		err := svc.Score(context.Background(), judge, model.RecordScoreRequest{SubmissionID: 12, Score: floatPtr(8.5)})
		require.NoError(t, err)
		require.Equal(t, []int64{12}, store.scored)

		require.Len(t, bus.published, 1)
		require.Equal(t, event.TypeScoreRecorded, bus.published[0].Type)
	})

	t.Run("requires a score value", func(t *testing.T) {
		t.Parallel()
		svc := NewJudgingService(&fakeJudgingStore{}, &recordingBus{})

		err := svc.Score(context.Background(), &model.SessionUser{UserID: 3}, model.RecordScoreRequest{SubmissionID: 12})

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})
}

package service

import (
	"context"
	"strings"

	"hackathon-backend/internal/event"
	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type prizeStore interface {
	Board(ctx context.Context) (model.PrizeBoard, error)
	Create(ctx context.Context, req model.CreatePrizeRequest) (model.Prize, error)
	Award(ctx context.Context, prizeID, teamID int64) error
}

type PrizeService struct {
	prizes prizeStore
	bus    event.Bus
}

func NewPrizeService(prizes prizeStore, bus event.Bus) *PrizeService {
	return &PrizeService{prizes: prizes, bus: bus}
}

func (s *PrizeService) Board(ctx context.Context) (model.PrizeBoard, error) {
	return s.prizes.Board(ctx)
}

func (s *PrizeService) Create(ctx context.Context, req model.CreatePrizeRequest) (model.Prize, error) {
	if strings.TrimSpace(req.Name) == "" {
		return model.Prize{}, apierror.BadRequest("name is required")
	}
	if req.Quantity != nil && *req.Quantity < 1 {
		return model.Prize{}, apierror.BadRequest("quantity must be a positive integer")
	}
	req.Name = strings.TrimSpace(req.Name)
	return s.prizes.Create(ctx, req)
}

func (s *PrizeService) Award(ctx context.Context, user *model.SessionUser, prizeID int64, req model.AwardPrizeRequest) error {
	if req.TeamID <= 0 {
		return apierror.BadRequest("teamId is required")
	}

	if err := s.prizes.Award(ctx, prizeID, req.TeamID); err != nil {
		return err
	}

	s.bus.Publish(event.Event{
		Type:    event.TypePrizeAwarded,
		Payload: map[string]any{"prizeId": prizeID, "teamId": req.TeamID},
		ActorID: user.UserID,
	})
	return nil
}

package service

import (
	"context"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type resultsStore interface {
	Overall(ctx context.Context) ([]model.OverallScore, error)
	ByRound(ctx context.Context, roundID int64) ([]model.RoundScore, error)
	TeamParticipation(ctx context.Context) ([]model.TeamParticipation, error)
	JudgeParticipation(ctx context.Context) ([]model.JudgeParticipation, error)
}

type ResultsService struct {
	results resultsStore
}

func NewResultsService(results resultsStore) *ResultsService {
	return &ResultsService{results: results}
}

func (s *ResultsService) Overall(ctx context.Context) ([]model.OverallScore, error) {
	return s.results.Overall(ctx)
}

func (s *ResultsService) ByRound(ctx context.Context, roundID int64) ([]model.RoundScore, error) {
	if roundID <= 0 {
		return nil, apierror.BadRequest("invalid round id")
	}
	return s.results.ByRound(ctx, roundID)
}

func (s *ResultsService) TeamParticipation(ctx context.Context) ([]model.TeamParticipation, error) {
	return s.results.TeamParticipation(ctx)
}

func (s *ResultsService) JudgeParticipation(ctx context.Context) ([]model.JudgeParticipation, error) {
	return s.results.JudgeParticipation(ctx)
}

package service

import (
	"context"
	"strings"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

const (
	defaultMinTeamSize = 1
	defaultMaxTeamSize = 5
)

type hackathonStore interface {
	Get(ctx context.Context) (*model.Hackathon, error)
	Upsert(ctx context.Context, h model.Hackathon) error
}

type trackStore interface {
	List(ctx context.Context) ([]model.Track, error)
	Create(ctx context.Context, req model.CreateTrackRequest) (model.Track, error)
}

type HackathonService struct {
	hackathon hackathonStore
	tracks    trackStore
}

func NewHackathonService(hackathon hackathonStore, tracks trackStore) *HackathonService {
	return &HackathonService{hackathon: hackathon, tracks: tracks}
}

// Get returns the event configuration, or nil before an organizer first
// saves it.
func (s *HackathonService) Get(ctx context.Context) (*model.Hackathon, error) {
	return s.hackathon.Get(ctx)
}

func (s *HackathonService) Upsert(ctx context.Context, req model.UpsertHackathonRequest) (*model.Hackathon, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apierror.BadRequest("name is required")
	}

	h := model.Hackathon{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		MinTeamSize: defaultMinTeamSize,
		MaxTeamSize: defaultMaxTeamSize,
		Published:   req.Published,
	}
	if req.MinTeamSize != nil {
		h.MinTeamSize = *req.MinTeamSize
	}
	if req.MaxTeamSize != nil {
		h.MaxTeamSize = *req.MaxTeamSize
	}
	if h.MinTeamSize < 1 || h.MaxTeamSize < h.MinTeamSize {
		return nil, apierror.BadRequest("invalid team size bounds")
	}

	var err error
	if h.StartAt, err = parseTimestamp(req.StartAt); err != nil {
		return nil, err
	}
	if h.EndAt, err = parseTimestamp(req.EndAt); err != nil {
		return nil, err
	}
	if h.RegStartAt, err = parseTimestamp(req.RegStartAt); err != nil {
		return nil, err
	}
	if h.RegEndAt, err = parseTimestamp(req.RegEndAt); err != nil {
		return nil, err
	}

	if err := s.hackathon.Upsert(ctx, h); err != nil {
		return nil, err
	}
	return s.hackathon.Get(ctx)
}

func (s *HackathonService) Tracks(ctx context.Context) ([]model.Track, error) {
	return s.tracks.List(ctx)
}

func (s *HackathonService) CreateTrack(ctx context.Context, req model.CreateTrackRequest) (model.Track, error) {
	if strings.TrimSpace(req.Name) == "" {
		return model.Track{}, apierror.BadRequest("name is required")
	}
	if req.MaxTeams != nil && *req.MaxTeams < 1 {
		return model.Track{}, apierror.BadRequest("maxTeams must be a positive integer")
	}
	req.Name = strings.TrimSpace(req.Name)
	return s.tracks.Create(ctx, req)
}

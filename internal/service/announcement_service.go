package service

import (
	"context"
	"strings"

	"hackathon-backend/internal/event"
	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type announcementStore interface {
	List(ctx context.Context) ([]model.Announcement, error)
	Create(ctx context.Context, title, content string, authorUserID int64) (model.Announcement, error)
}

type AnnouncementService struct {
	announcements announcementStore
	bus           event.Bus
}

func NewAnnouncementService(announcements announcementStore, bus event.Bus) *AnnouncementService {
	return &AnnouncementService{announcements: announcements, bus: bus}
}

func (s *AnnouncementService) List(ctx context.Context) ([]model.Announcement, error) {
	return s.announcements.List(ctx)
}

func (s *AnnouncementService) Create(ctx context.Context, user *model.SessionUser, req model.CreateAnnouncementRequest) (model.Announcement, error) {
	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return model.Announcement{}, apierror.BadRequest("title and content are required")
	}

	created, err := s.announcements.Create(ctx, title, content, user.UserID)
	if err != nil {
		return model.Announcement{}, err
	}
	created.AuthorUsername = &user.Username

	s.bus.Publish(event.Event{
		Type:    event.TypeAnnouncementCreated,
		Payload: created,
		ActorID: user.UserID,
	})
	return created, nil
}

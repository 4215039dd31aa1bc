package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"hackathon-backend/internal/event"
	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type teamStore interface {
	ListOverview(ctx context.Context) ([]model.TeamOverview, error)
	TeamForUser(ctx context.Context, userID int64) (*model.Team, error)
	Members(ctx context.Context, teamID int64) ([]model.TeamMember, error)
	Create(ctx context.Context, ownerUserID int64, teamName string) (model.Team, error)
	CreateInvite(ctx context.Context, actorUserID, teamID int64, inviteeUsername, token string) (model.TeamInvite, error)
	AcceptInvite(ctx context.Context, token string, userID int64) error
	PendingInvitesForTeam(ctx context.Context, teamID int64) ([]model.TeamInvite, error)
	PendingInvitesForUsername(ctx context.Context, username string) ([]model.TeamInvite, error)
}

type teamProjectStore interface {
	ForTeam(ctx context.Context, teamID int64) (*model.Project, error)
}

type TeamService struct {
	teams    teamStore
	projects teamProjectStore
	bus      event.Bus
}

func NewTeamService(teams teamStore, projects teamProjectStore, bus event.Bus) *TeamService {
	return &TeamService{teams: teams, projects: projects, bus: bus}
}

func (s *TeamService) List(ctx context.Context) ([]model.TeamOverview, error) {
	return s.teams.ListOverview(ctx)
}

func (s *TeamService) Create(ctx context.Context, user *model.SessionUser, teamName string) (model.Team, error) {
	if strings.TrimSpace(teamName) == "" {
		return model.Team{}, apierror.BadRequest("teamName is required")
	}

	team, err := s.teams.Create(ctx, user.UserID, teamName)
	if err != nil {
		return model.Team{}, err
	}

	s.bus.Publish(event.Event{
		Type:    event.TypeTeamCreated,
		Payload: team,
		ActorID: user.UserID,
	})
	return team, nil
}

// MyTeam returns the caller's team dashboard, or nil when the caller has no
// team yet.
func (s *TeamService) MyTeam(ctx context.Context, user *model.SessionUser) (*model.MyTeam, error) {
	team, err := s.teams.TeamForUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, nil
	}

	members, err := s.teams.Members(ctx, team.TeamID)
	if err != nil {
		return nil, err
	}

	invites, err := s.teams.PendingInvitesForTeam(ctx, team.TeamID)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.ForTeam(ctx, team.TeamID)
	if err != nil {
		return nil, err
	}

	return &model.MyTeam{Team: *team, Members: members, Invites: invites, Project: project}, nil
}

// Invite creates a pending invite for a username. Membership of the acting
// user and duplicate-invite rules are enforced in the datastore.
func (s *TeamService) Invite(ctx context.Context, user *model.SessionUser, teamID int64, inviteeUsername string) (model.TeamInvite, error) {
	if strings.TrimSpace(inviteeUsername) == "" {
		return model.TeamInvite{}, apierror.BadRequest("username is required")
	}
	if teamID <= 0 {
		return model.TeamInvite{}, apierror.BadRequest("invalid team id")
	}

	return s.teams.CreateInvite(ctx, user.UserID, teamID, inviteeUsername, uuid.NewString())
}

func (s *TeamService) AcceptInvite(ctx context.Context, user *model.SessionUser, token string) error {
	if strings.TrimSpace(token) == "" {
		return apierror.BadRequest("token is required")
	}

	if err := s.teams.AcceptInvite(ctx, token, user.UserID); err != nil {
		return err
	}

	s.bus.Publish(event.Event{
		Type:    event.TypeInviteAccepted,
		Payload: map[string]any{"token": token, "userId": user.UserID},
		ActorID: user.UserID,
	})
	return nil
}

func (s *TeamService) PendingInvites(ctx context.Context, user *model.SessionUser) ([]model.TeamInvite, error) {
	return s.teams.PendingInvitesForUsername(ctx, user.Username)
}

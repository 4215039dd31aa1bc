package service

import (
	"context"
	"strings"

	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type projectStore interface {
	ForUser(ctx context.Context, userID int64) (*model.Project, error)
	Submit(ctx context.Context, teamID int64, req model.SubmitProjectRequest) (*model.Project, error)
}

type projectTeamStore interface {
	TeamForUser(ctx context.Context, userID int64) (*model.Team, error)
}

type submissionStore interface {
	ListForUser(ctx context.Context, userID int64) ([]model.Submission, error)
	Create(ctx context.Context, projectID, roundID int64, notes *string) (model.Submission, error)
}

type ProjectService struct {
	projects    projectStore
	teams       projectTeamStore
	submissions submissionStore
}

func NewProjectService(projects projectStore, teams projectTeamStore, submissions submissionStore) *ProjectService {
	return &ProjectService{projects: projects, teams: teams, submissions: submissions}
}

// Mine returns the caller's team project, or nil when there is none yet.
func (s *ProjectService) Mine(ctx context.Context, user *model.SessionUser) (*model.Project, error) {
	return s.projects.ForUser(ctx, user.UserID)
}

// Submit creates or updates the caller team's single project.
func (s *ProjectService) Submit(ctx context.Context, user *model.SessionUser, req model.SubmitProjectRequest) (*model.Project, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apierror.BadRequest("title is required")
	}

	team, err := s.teams.TeamForUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, apierror.BadRequest("You are not in a team")
	}

	return s.projects.Submit(ctx, team.TeamID, req)
}

func (s *ProjectService) Submissions(ctx context.Context, user *model.SessionUser) ([]model.Submission, error) {
	return s.submissions.ListForUser(ctx, user.UserID)
}

// CreateSubmission snapshots the caller team's project into a judging round.
func (s *ProjectService) CreateSubmission(ctx context.Context, user *model.SessionUser, req model.CreateSubmissionRequest) (model.Submission, error) {
	if req.RoundID <= 0 {
		return model.Submission{}, apierror.BadRequest("roundId is required")
	}

	project, err := s.projects.ForUser(ctx, user.UserID)
	if err != nil {
		return model.Submission{}, err
	}
	if project == nil {
		return model.Submission{}, apierror.BadRequest("Your team has no project to submit")
	}

	return s.submissions.Create(ctx, project.ProjectID, req.RoundID, req.Notes)
}

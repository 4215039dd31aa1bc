package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"hackathon-backend/internal/event"
	"hackathon-backend/internal/model"
	"hackathon-backend/pkg/apierror"
)

type recordingBus struct {
	published []event.Event
}

func (b *recordingBus) Publish(e event.Event)                 { b.published = append(b.published, e) }
func (b *recordingBus) Subscribe() (<-chan event.Event, func()) { return nil, func() {} }

type fakeTeamStore struct {
	teamsByUser map[int64]*model.Team
	members     map[int64][]model.TeamMember
	invites     []model.TeamInvite
	accepted    []string
	nextTeamID  int64
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{
		teamsByUser: map[int64]*model.Team{},
		members:     map[int64][]model.TeamMember{},
		nextTeamID:  1,
	}
}

func (f *fakeTeamStore) ListOverview(ctx context.Context) ([]model.TeamOverview, error) {
	return []model.TeamOverview{}, nil
}

func (f *fakeTeamStore) TeamForUser(ctx context.Context, userID int64) (*model.Team, error) {
	return f.teamsByUser[userID], nil
}

func (f *fakeTeamStore) Members(ctx context.Context, teamID int64) ([]model.TeamMember, error) {
	return f.members[teamID], nil
}

func (f *fakeTeamStore) Create(ctx context.Context, ownerUserID int64, teamName string) (model.Team, error) {
	team := model.Team{TeamID: f.nextTeamID, TeamName: teamName, OwnerUserID: ownerUserID}
	f.nextTeamID++
	f.teamsByUser[ownerUserID] = &team
	return team, nil
}

func (f *fakeTeamStore) CreateInvite(ctx context.Context, actorUserID, teamID int64, inviteeUsername, token string) (model.TeamInvite, error) {
	inv := model.TeamInvite{InviteID: int64(len(f.invites) + 1), TeamID: teamID, InviteeUsername: inviteeUsername, Token: token, Status: "pending"}
	f.invites = append(f.invites, inv)
	return inv, nil
}

func (f *fakeTeamStore) AcceptInvite(ctx context.Context, token string, userID int64) error {
	f.accepted = append(f.accepted, token)
	return nil
}

func (f *fakeTeamStore) PendingInvitesForTeam(ctx context.Context, teamID int64) ([]model.TeamInvite, error) {
	return f.invites, nil
}

func (f *fakeTeamStore) PendingInvitesForUsername(ctx context.Context, username string) ([]model.TeamInvite, error) {
	return f.invites, nil
}

type fakeTeamProjects struct {
	byTeam map[int64]*model.Project
}

func (f *fakeTeamProjects) ForTeam(ctx context.Context, teamID int64) (*model.Project, error) {
	return f.byTeam[teamID], nil
}

func TestTeamServiceCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates team and publishes event", func(t *testing.T) {
		t.Parallel()
		store := newFakeTeamStore()
		bus := &recordingBus{}
		svc := NewTeamService(store, &fakeTeamProjects{byTeam: map[int64]*model.Project{}}, bus)
		user := &model.SessionUser{UserID: 7, Username: "alice"}

		team, err := svc.Create(context.Background(), user, "Rocket")
		require.NoError(t, err)
		require.Equal(t, "Rocket", team.TeamName)

		require.Len(t, bus.published, 1)
		require.Equal(t, event.TypeTeamCreated, bus.published[0].Type)
		require.Equal(t, int64(7), bus.published[0].ActorID)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()
		svc := NewTeamService(newFakeTeamStore(), &fakeTeamProjects{byTeam: map[int64]*model.Project{}}, &recordingBus{})

		_, err := svc.Create(context.Background(), &model.SessionUser{UserID: 7}, "  ")

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})
}

func TestTeamServiceMyTeam(t *testing.T) {
	t.Parallel()

	t.Run("nil when user has no team", func(t *testing.T) {
		t.Parallel()
		svc := NewTeamService(newFakeTeamStore(), &fakeTeamProjects{byTeam: map[int64]*model.Project{}}, &recordingBus{})

		mine, err := svc.MyTeam(context.Background(), &model.SessionUser{UserID: 7})
		require.NoError(t, err)
		require.Nil(t, mine)
	})

	t.Run("bundles members, invites and project", func(t *testing.T) {
		t.Parallel()
		store := newFakeTeamStore()
		team, err := store.Create(context.Background(), 7, "Rocket")
		require.NoError(t, err)
		store.members[team.TeamID] = []model.TeamMember{{UserID: 7, Username: "alice"}}

		project := &model.Project{ProjectID: 11, TeamID: team.TeamID, Title: "Demo"}
		projects := &fakeTeamProjects{byTeam: map[int64]*model.Project{team.TeamID: project}}
		svc := NewTeamService(store, projects, &recordingBus{})

		mine, err := svc.MyTeam(context.Background(), &model.SessionUser{UserID: 7, Username: "alice"})
		require.NoError(t, err)
		require.NotNil(t, mine)
		require.Equal(t, "Rocket", mine.Team.TeamName)
		require.Len(t, mine.Members, 1)
		require.Equal(t, project, mine.Project)
	})
}

func TestTeamServiceInvite(t *testing.T) {
	t.Parallel()

	t.Run("rejects blank invitee", func(t *testing.T) {
		t.Parallel()
		svc := NewTeamService(newFakeTeamStore(), &fakeTeamProjects{byTeam: map[int64]*model.Project{}}, &recordingBus{})

		_, err := svc.Invite(context.Background(), &model.SessionUser{UserID: 7}, 1, " ")

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, 400, apiErr.HTTPStatus)
	})

	t.Run("issues a fresh token per invite", func(t *testing.T) {
		t.Parallel()
		store := newFakeTeamStore()
		team, err := store.Create(context.Background(), 7, "Rocket")
		require.NoError(t, err)
		svc := NewTeamService(store, &fakeTeamProjects{byTeam: map[int64]*model.Project{}}, &recordingBus{})
		user := &model.SessionUser{UserID: 7, Username: "alice"}

		first, err := svc.Invite(context.Background(), user, team.TeamID, "bob")
		require.NoError(t, err)
		second, err := svc.Invite(context.Background(), user, team.TeamID, "carol")
		require.NoError(t, err)

		require.NotEmpty(t, first.Token)
		require.NotEqual(t, first.Token, second.Token)
	})
}

func TestTeamServiceAcceptInvite(t *testing.T) {
	t.Parallel()

	store := newFakeTeamStore()
	bus := &recordingBus{}
	svc := NewTeamService(store, &fakeTeamProjects{byTeam: map[int64]*model.Project{}}, bus)

	err := svc.AcceptInvite(context.Background(), &model.SessionUser{UserID: 9, Username: "bob"}, "tok-123")
	require.NoError(t, err)
	require.Equal(t, []string{"tok-123"}, store.accepted)

	require.Len(t, bus.published, 1)
	require.Equal(t, event.TypeInviteAccepted, bus.published[0].Type)
}

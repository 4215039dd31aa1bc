package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"hackathon-backend/internal/config"
	"hackathon-backend/internal/handler"
	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/model"
	"hackathon-backend/internal/websocket"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	hackathonHandler *handler.HackathonHandler,
	announcementHandler *handler.AnnouncementHandler,
	teamHandler *handler.TeamHandler,
	projectHandler *handler.ProjectHandler,
	judgingHandler *handler.JudgingHandler,
	prizeHandler *handler.PrizeHandler,
	resultsHandler *handler.ResultsHandler,
	healthHandler *handler.HealthHandler,
	hub *websocket.Hub,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	organizers := authMiddleware.RequireRoles(model.RoleAdmin, model.RoleOrganizer)
	admins := authMiddleware.RequireRoles(model.RoleAdmin)
	judges := authMiddleware.RequireRoles(model.RoleJudge)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)
	r.Use(authMiddleware.Identity)

	r.Get("/health", healthHandler.Check)
	r.Get("/ws", func(w http.ResponseWriter, req *http.Request) {
		websocket.ServeWS(hub, w, req)
	})

	r.Group(func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/claim", authHandler.Claim)
			auth.With(authMiddleware.RequireAuth).Get("/me", authHandler.Me)
			auth.With(authMiddleware.RequireAuth).Post("/logout", authHandler.Logout)
			auth.With(authMiddleware.RequireAuth, admins).Get("/users", authHandler.ListUsers)
			auth.With(authMiddleware.RequireAuth, admins).Put("/users/{userID}/roles", authHandler.UpdateRoles)
		})

		api.Get("/hackathon", hackathonHandler.Get)
		api.With(authMiddleware.RequireAuth, admins).Put("/hackathon", hackathonHandler.Upsert)

		api.Get("/tracks", hackathonHandler.ListTracks)
		api.With(authMiddleware.RequireAuth, organizers).Post("/tracks", hackathonHandler.CreateTrack)

		api.Get("/prizes", prizeHandler.Board)
		api.With(authMiddleware.RequireAuth, organizers).Post("/prizes", prizeHandler.Create)
		api.With(authMiddleware.RequireAuth, organizers).Post("/prizes/{prizeID}/award", prizeHandler.Award)

		api.Get("/announcements", announcementHandler.List)
		api.With(authMiddleware.RequireAuth, organizers).Post("/announcements", announcementHandler.Create)

		api.Route("/teams", func(teams chi.Router) {
			teams.With(authMiddleware.RequireAuth, organizers).Get("/", teamHandler.List)
			teams.With(authMiddleware.RequireAuth).Post("/", teamHandler.Create)
			teams.With(authMiddleware.RequireAuth).Get("/me", teamHandler.Mine)
			teams.With(authMiddleware.RequireAuth).Post("/{teamID}/invites", teamHandler.Invite)
			teams.With(authMiddleware.RequireAuth).Post("/invites/accept", teamHandler.AcceptInvite)
			teams.With(authMiddleware.RequireAuth).Get("/invites/pending", teamHandler.MyInvites)
		})

		api.With(authMiddleware.RequireAuth).Get("/projects/me", projectHandler.Mine)
		api.With(authMiddleware.RequireAuth).Put("/projects/me", projectHandler.Submit)

		api.With(authMiddleware.RequireAuth).Get("/submissions", projectHandler.Submissions)
		api.With(authMiddleware.RequireAuth).Post("/submissions", projectHandler.CreateSubmission)

		api.Get("/rounds", judgingHandler.ListRounds)
		api.With(authMiddleware.RequireAuth, organizers).Post("/rounds", judgingHandler.CreateRound)

		api.Route("/judging", func(judging chi.Router) {
			judging.With(authMiddleware.RequireAuth, judges).Get("/queue", judgingHandler.Queue)
			judging.With(authMiddleware.RequireAuth, judges).Post("/score", judgingHandler.Score)
			judging.With(authMiddleware.RequireAuth, organizers).Get("/assignments", judgingHandler.ListAssignments)
			judging.With(authMiddleware.RequireAuth, organizers).Post("/assignments", judgingHandler.Assign)
			judging.With(authMiddleware.RequireAuth, organizers).Delete("/assignments", judgingHandler.Unassign)
		})

		api.Route("/results", func(results chi.Router) {
			results.Get("/overall", resultsHandler.Overall)
			results.Get("/round/{roundID}", resultsHandler.ByRound)
			results.Get("/participation/teams", resultsHandler.TeamParticipation)
			results.Get("/participation/judges", resultsHandler.JudgeParticipation)
		})
	})

	return r
}

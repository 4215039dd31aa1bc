package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hackathon-backend/internal/config"
	"hackathon-backend/internal/database"
	"hackathon-backend/internal/event"
	"hackathon-backend/internal/handler"
	"hackathon-backend/internal/middleware"
	"hackathon-backend/internal/repository"
	"hackathon-backend/internal/router"
	"hackathon-backend/internal/service"
	"hackathon-backend/internal/session"
	"hackathon-backend/internal/websocket"
)

type App struct {
	server *http.Server
	db     *database.DB
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	slog.Info("connecting to PostgreSQL")
	db, err := database.New(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.EnsureSchema(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure database schema: %w", err)
	}

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	hackathonRepo := repository.NewHackathonRepository(pool)
	trackRepo := repository.NewTrackRepository(pool)
	prizeRepo := repository.NewPrizeRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)
	teamRepo := repository.NewTeamRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	submissionRepo := repository.NewSubmissionRepository(pool)
	judgingRepo := repository.NewJudgingRepository(pool)
	resultsRepo := repository.NewResultsRepository(pool)
	slog.Info("database ready")

	resolver, cookies, err := buildResolver(cfg, userRepo)
	if err != nil {
		db.Close()
		return nil, err
	}
	authMiddleware := middleware.NewAuthMiddleware(resolver)

	bus := event.NewBus()
	hub := websocket.NewHub(bus)
	go hub.Run()

	authService := service.NewAuthService(userRepo)
	hackathonService := service.NewHackathonService(hackathonRepo, trackRepo)
	prizeService := service.NewPrizeService(prizeRepo, bus)
	announcementService := service.NewAnnouncementService(announcementRepo, bus)
	teamService := service.NewTeamService(teamRepo, projectRepo, bus)
	projectService := service.NewProjectService(projectRepo, teamRepo, submissionRepo)
	judgingService := service.NewJudgingService(judgingRepo, bus)
	resultsService := service.NewResultsService(resultsRepo)

	appRouter := router.New(cfg, authMiddleware,
		handler.NewAuthHandler(authService, cookies),
		handler.NewHackathonHandler(hackathonService),
		handler.NewAnnouncementHandler(announcementService),
		handler.NewTeamHandler(teamService),
		handler.NewProjectHandler(projectService),
		handler.NewJudgingHandler(judgingService),
		handler.NewPrizeHandler(prizeService),
		handler.NewResultsHandler(resultsService),
		handler.NewHealthHandler(db),
		hub,
	)

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      appRouter,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	return &App{server: server, db: db}, nil
}

// buildResolver wires the configured identity strategy. Cookie mode issues
// and verifies signed session cookies; header mode trusts an upstream proxy
// to assert the username and needs no cookie machinery at all.
func buildResolver(cfg *config.Config, userRepo *repository.UserRepository) (session.Resolver, *session.Cookies, error) {
	if cfg.AuthMode == config.AuthModeHeader {
		return session.NewHeaderResolver(userRepo), nil, nil
	}

	signer, err := session.NewSigner(cfg.SessionSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize session signer: %w", err)
	}

	cookies := session.NewCookies(signer, cfg.IsProduction())
	return session.NewCookieResolver(signer, cookies, userRepo), cookies, nil
}

func (a *App) Run() error {
	go func() {
		slog.Info("server starting", "addr", a.server.Addr)
		if serveErr := a.server.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			slog.Error("server failed", "error", serveErr)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.db.Close()

	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/gestion-eventos/internal/api"
	"github.com/gestion-eventos/internal/auth"
	"github.com/gestion-eventos/internal/mailer"
	"github.com/gestion-eventos/internal/middleware"
	"github.com/gestion-eventos/internal/scheduler"
	"github.com/gestion-eventos/internal/service"
	"github.com/gestion-eventos/internal/storage"
)

const limiterIdleTTL = 10 * time.Minute

var (
	// Server flags (override config/env)
	serverHost string
	serverPort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server and the background scheduler.

The server will:
- Connect to the database and apply migrations
- Schedule the past-event sweep (EVENT_SWEEP_SCHEDULE)
- Serve the REST API, /metrics and /swagger/
- Shut down gracefully on SIGINT/SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host address (default: SERVER_HOST or 0.0.0.0)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (default: PORT or 3000)")
}

func runServer() error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if serverHost != "" {
		cfg.Server.Host = serverHost
	}
	if serverPort != 0 {
		cfg.Server.Port = serverPort
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info().Msg("running migrations")
	migrateCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	err = db.RunMigrations(migrateCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	// Repositories
	attendees := storage.NewAttendeeRepository(db)
	users := storage.NewUserRepository(db)
	roles := storage.NewRoleRepository(db)
	events := storage.NewEventRepository(db)
	participations := storage.NewParticipationRepository(db)

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	mail := mailer.New(cfg.Email, logger)
	if !mail.Enabled() {
		logger.Warn().Msg("EMAIL_USER/EMAIL_PASS not set, outbound e-mail disabled")
	}
	authService := service.NewAuthService(attendees, users, tokens, mail, logger)
	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	// Scheduler
	sched := scheduler.NewScheduler(logger)
	if err := sched.AddJob(cfg.Scheduler.EventSweepSchedule, scheduler.NewEventSweeper(events, logger)); err != nil {
		return fmt.Errorf("schedule event sweep: %w", err)
	}
	if limiter != nil {
		if err := sched.AddJob("@every 10m", scheduler.NewLimiterCleanup(limiter, limiterIdleTTL)); err != nil {
			return fmt.Errorf("schedule limiter cleanup: %w", err)
		}
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	sched.Start(ctx)

	handler := api.NewHandler(api.Dependencies{
		Attendees:      attendees,
		Users:          users,
		Roles:          roles,
		Events:         events,
		Participations: participations,
		Auth:           authService,
		DB:             db,
		Scheduler:      sched,
	})
	router := api.NewRouter(handler, middleware.NewAuthMiddleware(tokens), limiter, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", server.Addr).Str("env", cfg.Environment).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	case err := <-serverErr:
		sched.Stop()
		return fmt.Errorf("server: %w", err)
	}

	sched.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server shutdown error")
	}

	logger.Info().Msg("server stopped")
	return nil
}

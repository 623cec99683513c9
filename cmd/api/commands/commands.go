// Package commands defines the CLI entrypoints: serve, migrate and a
// one-shot retention sweep.
package commands

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/serdarsalim/timespent-sub000/api/swagger"
	"github.com/serdarsalim/timespent-sub000/internal/repository"
	"github.com/serdarsalim/timespent-sub000/internal/router"
	"github.com/serdarsalim/timespent-sub000/internal/service"
	"github.com/serdarsalim/timespent-sub000/pkg/cache"
	"github.com/serdarsalim/timespent-sub000/pkg/config"
	"github.com/serdarsalim/timespent-sub000/pkg/database"
	"github.com/serdarsalim/timespent-sub000/pkg/logger"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands.
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			withMigrator(func(m *database.Migrator) error { return m.Up() })
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			withMigrator(func(m *database.Migrator) error { return m.Down() })
		},
	})
	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			withMigrator(func(m *database.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				fmt.Printf("version=%d dirty=%v\n", version, dirty)
				return nil
			})
		},
	})

	return migrateCmd
}

// NewRetentionCommand creates a one-shot retention sweep, useful for
// operating the cleanup outside the in-process cron.
func NewRetentionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "retention-sweep",
		Short: "Run one retention sweep across all users and exit",
		Run: func(cmd *cobra.Command, args []string) {
			runRetentionSweep()
		},
	}
}

func withMigrator(fn func(*database.Migrator) error) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	migrator, err := database.NewMigrator(db, cfg.Database)
	if err != nil {
		log.Fatalf("failed to init migrator: %v", err)
	}
	if err := fn(migrator); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	schedules *service.ScheduleService
	journal   *service.JournalService
	auth      *service.AuthService
	goals     *service.GoalService
	profile   *service.ProfileService
	exports   *service.ExportService
	metrics   *service.MetricsService
	retention *service.RetentionService
	close     func()
}

func buildApp() *app {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Fatal("failed to connect to redis", zap.Error(err))
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	focusRepo := repository.NewFocusRepository(db)
	dayOffRepo := repository.NewDayOffRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	guestRepo := repository.NewGuestRepository(redisClient, cfg.Guest.TTL)
	cacheRepo := repository.NewCacheRepository(redisClient)

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled)

	provider := service.NewGoogleProvider(cfg.OAuth.GoogleClientID, cfg.OAuth.GoogleClientSecret, cfg.OAuth.RedirectURL)
	authSvc := service.NewAuthService(userRepo, provider, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             cfg.JWT.Issuer,
		GuestEnabled:       cfg.Guest.Enabled,
		GuestTTL:           cfg.Guest.TTL,
	})

	scheduleSvc := service.NewScheduleService(scheduleRepo, profileRepo, guestRepo, cacheSvc, validate, logr)
	journalSvc := service.NewJournalService(ratingRepo, noteRepo, focusRepo, dayOffRepo, guestRepo, validate, logr)
	goalSvc := service.NewGoalService(goalRepo, guestRepo, validate, logr)
	profileSvc := service.NewProfileService(profileRepo, validate, logr)
	exportSvc := service.NewExportService(scheduleSvc, journalSvc, logr, service.ExportConfig{
		Enabled:      cfg.Exports.Enabled,
		CalendarName: cfg.Exports.CalendarName,
	})
	retentionSvc := service.NewRetentionService(userRepo, scheduleSvc, profileRepo, metrics, logr, service.RetentionConfig{
		Enabled:     cfg.Retention.Enabled,
		DefaultDays: cfg.Retention.DefaultDays,
		CronSpec:    cfg.Retention.CronSpec,
		Workers:     cfg.Retention.Workers,
	})

	return &app{
		cfg:       cfg,
		logger:    logr,
		schedules: scheduleSvc,
		journal:   journalSvc,
		auth:      authSvc,
		goals:     goalSvc,
		profile:   profileSvc,
		exports:   exportSvc,
		metrics:   metrics,
		retention: retentionSvc,
		close: func() {
			db.Close()
			redisClient.Close()
			logr.Sync() //nolint:errcheck
		},
	}
}

func runServer() {
	a := buildApp()
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.retention.Start(ctx); err != nil {
		a.logger.Fatal("failed to start retention sweeps", zap.Error(err))
	}
	defer a.retention.Stop()

	engine := router.New(router.Deps{
		Config:   a.cfg,
		Logger:   a.logger,
		Auth:     a.auth,
		Schedule: a.schedules,
		Journal:  a.journal,
		Goals:    a.goals,
		Profile:  a.profile,
		Exports:  a.exports,
		Metrics:  a.metrics,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", a.cfg.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		a.logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", a.cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func runRetentionSweep() {
	a := buildApp()
	defer a.close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if err := a.retention.RunOnce(ctx); err != nil {
		a.logger.Fatal("retention sweep failed", zap.Error(err))
	}
}

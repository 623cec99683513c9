// Package router assembles the HTTP surface: middleware chain, the
// versioned API group and the observability endpoints.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/serdarsalim/timespent-sub000/internal/handler"
	"github.com/serdarsalim/timespent-sub000/internal/middleware"
	"github.com/serdarsalim/timespent-sub000/internal/service"
	"github.com/serdarsalim/timespent-sub000/pkg/config"
	"github.com/serdarsalim/timespent-sub000/pkg/logger"
	corsmiddleware "github.com/serdarsalim/timespent-sub000/pkg/middleware/cors"
	reqidmiddleware "github.com/serdarsalim/timespent-sub000/pkg/middleware/requestid"
)

// Deps carries everything the router needs.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Auth     *service.AuthService
	Schedule *service.ScheduleService
	Journal  *service.JournalService
	Goals    *service.GoalService
	Profile  *service.ProfileService
	Exports  *service.ExportService
	Metrics  *service.MetricsService
}

// New builds the gin engine with all routes registered.
func New(d Deps) *gin.Engine {
	if d.Config.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(d.Logger))
	r.Use(corsmiddleware.New(d.Config.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(d.Metrics))

	metricsHandler := handler.NewMetricsHandler(d.Metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if d.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	authHandler := handler.NewAuthHandler(d.Auth)
	scheduleHandler := handler.NewScheduleHandler(d.Schedule)
	journalHandler := handler.NewJournalHandler(d.Journal)
	goalHandler := handler.NewGoalHandler(d.Goals)
	profileHandler := handler.NewProfileHandler(d.Profile)
	exportHandler := handler.NewExportHandler(d.Exports)

	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/google", authHandler.Google)
	auth.POST("/guest", authHandler.Guest)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/logout", middleware.JWT(d.Auth), authHandler.Logout)

	protected := v1.Group("")
	protected.Use(middleware.JWT(d.Auth))
	if d.Config.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(d.Config.RateLimit.RPS, d.Config.RateLimit.Burst)
		protected.Use(limiter.Middleware())
	}

	protected.GET("/schedule", scheduleHandler.Get)
	protected.PUT("/schedule", scheduleHandler.Put)
	protected.GET("/schedule/occurrences", scheduleHandler.Occurrences)
	protected.POST("/schedule/occurrences/resolve", scheduleHandler.Resolve)
	protected.GET("/schedule/weeks", scheduleHandler.Weeks)

	protected.GET("/ratings", journalHandler.Ratings)
	protected.PUT("/ratings", journalHandler.PutRatings)
	protected.GET("/weekly-notes", journalHandler.WeeklyNotes)
	protected.PUT("/weekly-notes", journalHandler.PutWeeklyNotes)
	protected.GET("/month-notes", journalHandler.MonthNotes)
	protected.PUT("/month-notes", journalHandler.PutMonthNotes)
	protected.GET("/focus-areas", journalHandler.FocusAreas)
	protected.PUT("/focus-areas", journalHandler.PutFocusAreas)
	protected.GET("/day-offs", journalHandler.DayOffs)
	protected.PUT("/day-offs", journalHandler.PutDayOffs)

	protected.GET("/goals", goalHandler.List)
	protected.PUT("/goals", goalHandler.Put)

	protected.GET("/profile", profileHandler.Get)
	protected.PUT("/profile", profileHandler.Put)

	protected.GET("/exports/schedule.csv", exportHandler.ScheduleCSV)
	protected.GET("/exports/ratings.csv", exportHandler.RatingsCSV)
	protected.GET("/exports/week-report.pdf", exportHandler.WeekReportPDF)
	protected.GET("/exports/calendar.ics", exportHandler.CalendarICS)

	return r
}

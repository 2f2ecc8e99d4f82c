package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/eventhub/event-management-backend/config"
	"github.com/eventhub/event-management-backend/database"
	"github.com/eventhub/event-management-backend/internal/attendee"
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/eventhub/event-management-backend/internal/event"
	"github.com/eventhub/event-management-backend/internal/notification"
	"github.com/eventhub/event-management-backend/internal/reports"
	"github.com/eventhub/event-management-backend/internal/venue"
	"github.com/eventhub/event-management-backend/middleware"
	"github.com/eventhub/event-management-backend/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "github.com/eventhub/event-management-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps are the long lived collaborators the router wires into handlers.
type Deps struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client // optional
	Notifier notification.Notifier
}

// NewRouter builds the gin engine with every route and middleware.
func NewRouter(deps Deps) (*gin.Engine, error) {
	cfg := deps.Config
	notifier := deps.Notifier
	if notifier == nil {
		notifier = notification.NewService()
	}

	r := gin.New()
	// 🛡 forwarded client addresses are only believed from configured proxies
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	// CORS for the dashboard
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(middleware.AuditMiddleware())

	limit, err := middleware.RateLimiter(cfg.RateLimit, deps.Redis)
	if err != nil {
		return nil, err
	}

	// ========== Core services ==========
	auditRepo := auditlog.NewRepository(deps.DB)
	auditSvc := auditlog.NewService(auditRepo)

	attendeeHandler := attendee.NewHandler(attendee.NewService(attendee.NewRepository(deps.DB), auditSvc, notifier))
	venueHandler := venue.NewHandler(venue.NewService(venue.NewRepository(deps.DB), auditSvc, notifier))
	eventHandler := event.NewHandler(event.NewService(event.NewRepository(deps.DB), auditSvc, notifier))
	auditHandler := auditlog.NewHandler(auditSvc)
	reportHandler := reports.NewHandler(reports.NewReportService(reports.NewReportRepository(deps.DB), reports.NewReportExporter()))

	// ========== Entity routes ==========
	api := r.Group("/", limit)
	{
		api.GET("/attendees", attendeeHandler.ListAttendees)
		api.POST("/attendees", attendeeHandler.CreateAttendee)
		api.DELETE("/attendees/:id", attendeeHandler.DeleteAttendee)

		api.GET("/venues", venueHandler.ListVenues)
		api.POST("/venues", venueHandler.CreateVenue)

		api.GET("/events", eventHandler.ListEvents)
		api.POST("/events", eventHandler.CreateEvent)

		api.GET("/audit-logs", auditHandler.GetAuditLogs)
		api.GET("/audit-logs/:id", auditHandler.GetAuditLogByID)

		api.GET("/reports/:report", reportHandler.ExportReport)
	}

	// ========== Ops ==========
	r.GET("/healthz", healthHandler(deps.DB, deps.Redis))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

// healthHandler reports 503 when the store is unreachable. Redis is optional,
// so its failure is reported but does not fail the check.
func healthHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		body := gin.H{"status": "ok", "store": "ok"}

		if err := database.Ping(ctx, db); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unavailable"
			body["store"] = err.Error()
		}
		if rdb != nil {
			body["redis"] = "ok"
			if err := utils.RedisHealthCheck(ctx, rdb); err != nil {
				body["redis"] = err.Error()
			}
		}

		c.JSON(status, body)
	}
}

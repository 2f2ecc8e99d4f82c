// @title Event Management API
// @version 1.0
// @description Attendees, venues and events backed by a relational store.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eventhub/event-management-backend/config"
	"github.com/eventhub/event-management-backend/database"
	"github.com/eventhub/event-management-backend/internal/attendee"
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/eventhub/event-management-backend/internal/event"
	"github.com/eventhub/event-management-backend/internal/notification"
	"github.com/eventhub/event-management-backend/internal/sequence"
	"github.com/eventhub/event-management-backend/internal/venue"
	"github.com/eventhub/event-management-backend/pkg/logging"
	"github.com/eventhub/event-management-backend/routes"
	"github.com/eventhub/event-management-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Venue precedes Event: the event table references it.
var models = []interface{}{
	&venue.Venue{},
	&event.Event{},
	&attendee.Attendee{},
	&auditlog.AuditLog{},
}

// Tables whose id generator is realigned at startup.
var sequenced = []interface{}{
	&attendee.Attendee{},
	&venue.Venue{},
	&event.Event{},
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	if err := run(cfg); err != nil {
		slog.Error("❌ Server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)

	slog.Info("🔄 Creating tables...")
	if err := database.CreateTables(db, models...); err != nil {
		return err
	}

	reconciler, err := sequence.NewReconcilerFor(db, sequenced...)
	if err != nil {
		return err
	}
	for _, o := range reconciler.Run(ctx) {
		if o.Err != nil {
			slog.Warn("⚠️ Id generator not realigned", "table", o.Table, "error", o.Err)
			continue
		}
		slog.Info("✅ Id generator realigned", "table", o.Table, "next_id", o.NextID)
	}

	rdb, err := utils.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("⚠️ Redis unavailable, continuing without it", "error", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	notifier := notification.NewService(sinks(cfg, rdb)...)
	defer func() {
		if err := notifier.Close(); err != nil {
			slog.Warn("notice sinks did not close cleanly", "error", err)
		}
	}()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := routes.NewRouter(routes.Deps{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Notifier: notifier,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("🚀 Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("🛑 Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func sinks(cfg *config.Config, rdb *redis.Client) []notification.Publisher {
	var out []notification.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		out = append(out, notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic))
		slog.Info("Change notices go to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}
	if rdb != nil {
		out = append(out, notification.NewRedisPublisher(rdb, cfg.NotifyChannel))
		slog.Info("Change notices go to Redis", "channel", cfg.NotifyChannel)
	}
	return out
}

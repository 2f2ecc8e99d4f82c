package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var publishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "notification_publish_total",
		Help: "Change notices published per sink and result",
	},
	[]string{"sink", "result"},
)

// Publisher delivers a notice to one sink.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, n Notice) error
	Close() error
}

// Notifier announces committed changes. Implementations must not fail the
// caller: delivery problems are theirs to report.
type Notifier interface {
	Notify(ctx context.Context, noticeType string, recordID int64, payload interface{})
}

// Service publishes every notice to all configured sinks.
type Service struct {
	sinks   []Publisher
	timeout time.Duration
}

// NewService creates a notifier over the given sinks. With no sinks it only
// drops notices, which is what tests and local runs want.
func NewService(sinks ...Publisher) *Service {
	return &Service{sinks: sinks, timeout: 3 * time.Second}
}

func (s *Service) Notify(ctx context.Context, noticeType string, recordID int64, payload interface{}) {
	if len(s.sinks) == 0 {
		return
	}

	n, err := NewNotice(noticeType, recordID, payload)
	if err != nil {
		slog.Warn("notice encoding failed", "type", noticeType, "record_id", recordID, "error", err)
		return
	}

	// the change is committed; a cancelled request must not drop its notice
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, n); err != nil {
			publishTotal.WithLabelValues(sink.Name(), "error").Inc()
			slog.Warn("notice publish failed",
				"sink", sink.Name(),
				"type", n.Type,
				"record_id", n.RecordID,
				"error", err,
			)
			continue
		}
		publishTotal.WithLabelValues(sink.Name(), "ok").Inc()
		slog.Debug("notice published", "sink", sink.Name(), "type", n.Type, "record_id", n.RecordID)
	}
}

// Close closes every sink and joins their errors.
func (s *Service) Close() error {
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

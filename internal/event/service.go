package event

import (
	"context"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/eventhub/event-management-backend/internal/notification"
)

// Service wraps business logic for events
type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
	Notifier notification.Notifier
}

func NewService(r Repository, auditSvc auditlog.Service, notifier notification.Notifier) *Service {
	return &Service{
		Repo:     r,
		AuditSvc: auditSvc,
		Notifier: notifier,
	}
}

func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	return s.Repo.List(ctx)
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, req CreateEventRequest, origin auditlog.Origin) (*Event, error) {
	if err := apperror.ValidateRequest(req); err != nil {
		return nil, err
	}

	// 🔄 Parse DateTime
	dateTime, err := ParseDateTime(req.DateTime)
	if err != nil {
		s.AuditSvc.LogAction(ctx, auditlog.ActionEventCreated, nil, map[string]interface{}{
			"event_name": req.EventName,
			"date_time":  req.DateTime,
			"error":      err.Error(),
		}, origin, auditlog.StatusFailure)
		return nil, err
	}

	e := &Event{
		EventName:   req.EventName,
		DateTime:    dateTime,
		VenueID:     req.VenueID,
		VolunteerID: req.VolunteerID,
		FinanceID:   req.FinanceID,
	}

	if err := s.Repo.Create(ctx, e); err != nil {
		s.AuditSvc.LogAction(ctx, auditlog.ActionEventCreated, nil, map[string]interface{}{
			"event_name": req.EventName,
			"venue_id":   req.VenueID,
			"error":      err.Error(),
		}, origin, auditlog.StatusFailure)
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, auditlog.ActionEventCreated, &e.EventID, map[string]interface{}{
		"event_name": e.EventName,
		"date_time":  e.DateTime,
		"venue_id":   e.VenueID,
	}, origin, auditlog.StatusSuccess)
	s.Notifier.Notify(ctx, notification.TypeEventCreated, e.EventID, e)

	return e, nil
}

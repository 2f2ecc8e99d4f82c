package attendee

import (
	"context"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/eventhub/event-management-backend/internal/notification"
)

// Service wraps business logic for attendees
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

func (s *Service) ListAttendees(ctx context.Context) ([]Attendee, error) {
	return s.Repo.List(ctx)
}

// ===========================
// 🎯 Create Attendee
func (s *Service) CreateAttendee(ctx context.Context, req CreateAttendeeRequest, origin auditlog.Origin) (*Attendee, error) {
	if err := apperror.ValidateRequest(req); err != nil {
		return nil, err
	}

	a := &Attendee{
		Name:          req.Name,
		Type:          req.Type,
		PaymentStatus: req.PaymentStatus,
	}

	if err := s.Repo.Create(ctx, a); err != nil {
		s.AuditSvc.LogAction(ctx, auditlog.ActionAttendeeCreated, nil, map[string]interface{}{
			"name":  req.Name,
			"error": err.Error(),
		}, origin, auditlog.StatusFailure)
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, auditlog.ActionAttendeeCreated, &a.AttendeeID, map[string]interface{}{
		"name":           a.Name,
		"type":           a.Type,
		"payment_status": a.PaymentStatus,
	}, origin, auditlog.StatusSuccess)
	s.Notifier.Notify(ctx, notification.TypeAttendeeCreated, a.AttendeeID, a)

	return a, nil
}

// ===========================
// ❌ Delete Attendee; nil result means there was no such attendee
func (s *Service) DeleteAttendee(ctx context.Context, id int64, origin auditlog.Origin) (*Attendee, error) {
	a, err := s.Repo.Delete(ctx, id)
	if err != nil {
		s.AuditSvc.LogAction(ctx, auditlog.ActionAttendeeDeleted, &id, map[string]interface{}{
			"error": err.Error(),
		}, origin, auditlog.StatusFailure)
		return nil, err
	}
	if a == nil {
		return nil, nil
	}

	s.AuditSvc.LogAction(ctx, auditlog.ActionAttendeeDeleted, &id, map[string]interface{}{
		"name": a.Name,
	}, origin, auditlog.StatusSuccess)
	s.Notifier.Notify(ctx, notification.TypeAttendeeDeleted, id, a)

	return a, nil
}

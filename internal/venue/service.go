package venue

import (
	"context"

	"github.com/eventhub/event-management-backend/internal/apperror"
	"github.com/eventhub/event-management-backend/internal/auditlog"
	"github.com/eventhub/event-management-backend/internal/notification"
)

// Service wraps business logic for venues
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

func (s *Service) ListVenues(ctx context.Context) ([]Venue, error) {
	return s.Repo.List(ctx)
}

// ===========================
// 🏛️ Create Venue
func (s *Service) CreateVenue(ctx context.Context, req CreateVenueRequest, origin auditlog.Origin) (*Venue, error) {
	if err := apperror.ValidateRequest(req); err != nil {
		return nil, err
	}

	v := &Venue{
		VenueName:  req.Name,
		Layout:     req.Layout,
		Capacity:   req.Capacity,
		SecurityID: req.SecurityID,
		DesignID:   req.DesignID,
	}

	if err := s.Repo.Create(ctx, v); err != nil {
		s.AuditSvc.LogAction(ctx, auditlog.ActionVenueCreated, nil, map[string]interface{}{
			"venue_name": req.Name,
			"error":      err.Error(),
		}, origin, auditlog.StatusFailure)
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, auditlog.ActionVenueCreated, &v.VenueID, map[string]interface{}{
		"venue_name": v.VenueName,
		"capacity":   v.Capacity,
	}, origin, auditlog.StatusSuccess)
	s.Notifier.Notify(ctx, notification.TypeVenueCreated, v.VenueID, v)

	return v, nil
}

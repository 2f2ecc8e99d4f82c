package reports

import (
	"context"

	"github.com/eventhub/event-management-backend/database"
	"github.com/eventhub/event-management-backend/internal/attendee"
	"github.com/eventhub/event-management-backend/internal/event"
	"github.com/eventhub/event-management-backend/internal/venue"
	"gorm.io/gorm"
)

// ReportRepository reads the full lists a report is built from.
type ReportRepository interface {
	GetAttendees(ctx context.Context) ([]attendee.Attendee, error)
	GetVenues(ctx context.Context) ([]venue.Venue, error)
	GetEvents(ctx context.Context) ([]event.Event, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) GetAttendees(ctx context.Context) ([]attendee.Attendee, error) {
	rows := []attendee.Attendee{}
	if err := r.db.WithContext(ctx).Order("attendee_id ASC").Find(&rows).Error; err != nil {
		return nil, database.Classify(err, "load attendees report")
	}
	return rows, nil
}

func (r *reportRepository) GetVenues(ctx context.Context) ([]venue.Venue, error) {
	rows := []venue.Venue{}
	if err := r.db.WithContext(ctx).Order("venue_id ASC").Find(&rows).Error; err != nil {
		return nil, database.Classify(err, "load venues report")
	}
	return rows, nil
}

// GetEvents preloads each event's venue so the report can show its name.
func (r *reportRepository) GetEvents(ctx context.Context) ([]event.Event, error) {
	rows := []event.Event{}
	if err := r.db.WithContext(ctx).Preload("Venue").Order("event_id ASC").Find(&rows).Error; err != nil {
		return nil, database.Classify(err, "load events report")
	}
	return rows, nil
}

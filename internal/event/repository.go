package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/eventhub/event-management-backend/database"
	"github.com/eventhub/event-management-backend/internal/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	Create(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id int64) (*Event, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 📄 List Events ordered by id
func (r *repository) List(ctx context.Context) ([]Event, error) {
	events := []Event{}
	if err := r.db.WithContext(ctx).Order("event_id ASC").Find(&events).Error; err != nil {
		return nil, database.Classify(err, "list events")
	}
	return events, nil
}

// ===========================
// 🎯 Create Event; the venue must already exist
func (r *repository) Create(ctx context.Context, e *Event) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(e).Error
	})
	if err != nil && database.IsForeignKeyViolation(err) {
		return apperror.Constraint("venue_not_found", fmt.Sprintf("venue %d does not exist", e.VenueID), err)
	}
	return database.Classify(err, "create event")
}

// Delete removes an event and returns it, or nil, nil when there is none.
// It is not routed.
func (r *repository) Delete(ctx context.Context, id int64) (*Event, error) {
	var deleted *Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e Event
		if err := tx.Where("event_id = ?", id).First(&e).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&e).Error; err != nil {
			return err
		}
		deleted = &e
		return nil
	})
	if err != nil {
		return nil, database.Classify(err, "delete event")
	}
	return deleted, nil
}

package attendee

import (
	"context"
	"errors"

	"github.com/eventhub/event-management-backend/database"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Attendee, error)
	Create(ctx context.Context, a *Attendee) error
	Delete(ctx context.Context, id int64) (*Attendee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 📄 List Attendees ordered by id
func (r *repository) List(ctx context.Context) ([]Attendee, error) {
	attendees := []Attendee{}
	if err := r.db.WithContext(ctx).Order("attendee_id ASC").Find(&attendees).Error; err != nil {
		return nil, database.Classify(err, "list attendees")
	}
	return attendees, nil
}

// ===========================
// 🎯 Create Attendee; a.AttendeeID is set on success
func (r *repository) Create(ctx context.Context, a *Attendee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(a).Error
	})
	return database.Classify(err, "create attendee")
}

// ===========================
// ❌ Delete Attendee; returns nil, nil when there is nothing to delete
func (r *repository) Delete(ctx context.Context, id int64) (*Attendee, error) {
	var deleted *Attendee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a Attendee
		if err := tx.Where("attendee_id = ?", id).First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		if err := tx.Delete(&a).Error; err != nil {
			return err
		}
		deleted = &a
		return nil
	})
	if err != nil {
		return nil, database.Classify(err, "delete attendee")
	}
	return deleted, nil
}

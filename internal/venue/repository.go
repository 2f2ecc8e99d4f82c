package venue

import (
	"context"

	"github.com/eventhub/event-management-backend/database"
	"gorm.io/gorm"
)

type Repository interface {
	List(ctx context.Context) ([]Venue, error)
	Create(ctx context.Context, v *Venue) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Venue, error) {
	venues := []Venue{}
	if err := r.db.WithContext(ctx).Order("venue_id ASC").Find(&venues).Error; err != nil {
		return nil, database.Classify(err, "list venues")
	}
	return venues, nil
}

func (r *repository) Create(ctx context.Context, v *Venue) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(v).Error
	})
	return database.Classify(err, "create venue")
}

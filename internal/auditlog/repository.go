package auditlog

import (
	"context"
	"errors"

	"github.com/eventhub/event-management-backend/database"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, log *AuditLog) error
	List(ctx context.Context, filter AuditLogFilter) ([]AuditLog, error)
	GetByID(ctx context.Context, id uint) (*AuditLog, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new audit log entry
func (r *repository) Create(ctx context.Context, log *AuditLog) error {
	return database.Classify(r.db.WithContext(ctx).Create(log).Error, "create audit log")
}

// List returns the newest entries first
func (r *repository) List(ctx context.Context, filter AuditLogFilter) ([]AuditLog, error) {
	logs := []AuditLog{}

	query := r.db.WithContext(ctx).Model(&AuditLog{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	err := query.Order("id DESC").Limit(filter.Limit).Find(&logs).Error
	if err != nil {
		return nil, database.Classify(err, "list audit logs")
	}
	return logs, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*AuditLog, error) {
	var log AuditLog
	err := r.db.WithContext(ctx).First(&log, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, database.Classify(err, "get audit log")
	}
	return &log, nil
}

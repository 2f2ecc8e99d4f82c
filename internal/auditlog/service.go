package auditlog

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/eventhub/event-management-backend/internal/apperror"
)

type Service interface {
	LogAction(ctx context.Context, action string, recordID *int64, details map[string]interface{}, origin Origin, status string)
	GetAuditLogs(ctx context.Context, filter AuditLogFilter) ([]AuditLog, error)
	GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// LogAction records an audit entry. A failed write is logged and dropped so
// that auditing never fails the operation being audited.
func (s *service) LogAction(ctx context.Context, action string, recordID *int64, details map[string]interface{}, origin Origin, status string) {
	// Handle nil details
	if details == nil {
		details = make(map[string]interface{})
	}

	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	entry := &AuditLog{
		Action:    action,
		RecordID:  recordID,
		Details:   detailsJSON,
		IPAddress: origin.IP,
		RequestID: origin.RequestID,
		Status:    status,
	}

	// the audited request may already be cancelled by the time we get here
	if err := s.repo.Create(context.WithoutCancel(ctx), entry); err != nil {
		slog.Warn("audit log write failed", "action", action, "status", status, "error", err)
	}
}

// GetAuditLogs normalizes the filter and returns matching entries
func (s *service) GetAuditLogs(ctx context.Context, filter AuditLogFilter) ([]AuditLog, error) {
	filter.Action = strings.ToUpper(strings.TrimSpace(filter.Action))
	filter.Status = strings.ToLower(strings.TrimSpace(filter.Status))

	switch filter.Status {
	case "", StatusSuccess, StatusFailure:
	default:
		return nil, apperror.Validation("invalid_status", "status must be success or failure")
	}

	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	return s.repo.List(ctx, filter)
}

func (s *service) GetAuditLogByID(ctx context.Context, id uint) (*AuditLog, error) {
	return s.repo.GetByID(ctx, id)
}

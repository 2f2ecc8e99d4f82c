package auditlog

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ActionAttendeeCreated = "ATTENDEE_CREATED"
	ActionAttendeeDeleted = "ATTENDEE_DELETED"
	ActionVenueCreated    = "VENUE_CREATED"
	ActionEventCreated    = "EVENT_CREATED"

	StatusSuccess = "success"
	StatusFailure = "failure"
)

// AuditLog represents the audit_logs table
type AuditLog struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Action    string         `gorm:"size:100;not null;index" json:"action"`
	RecordID  *int64         `gorm:"index" json:"record_id"` // nil when the operation failed before an id existed
	Details   datatypes.JSON `json:"details"`
	IPAddress string         `gorm:"size:45" json:"ip_address"`
	RequestID string         `gorm:"size:64" json:"request_id"`
	Status    string         `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`
}

// TableName overrides table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Origin identifies where a mutating request came from.
type Origin struct {
	IP        string
	RequestID string
}

// AuditLogFilter represents filters for querying audit logs
type AuditLogFilter struct {
	Action string
	Status string
	Limit  int
}

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

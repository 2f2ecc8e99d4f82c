package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeAttendeeCreated = "attendee.created"
	TypeAttendeeDeleted = "attendee.deleted"
	TypeVenueCreated    = "venue.created"
	TypeEventCreated    = "event.created"
)

// Notice announces a committed change to one record.
type Notice struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	RecordID   int64           `json:"record_id"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewNotice builds a notice with a fresh id. payload is the changed row.
func NewNotice(noticeType string, recordID int64, payload interface{}) (Notice, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Notice{}, err
	}
	return Notice{
		ID:         uuid.NewString(),
		Type:       noticeType,
		RecordID:   recordID,
		Payload:    body,
		OccurredAt: time.Now().UTC(),
	}, nil
}

package event

import (
	"time"

	"github.com/eventhub/event-management-backend/internal/venue"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	EventID     int64        `gorm:"column:event_id;primaryKey" json:"event_id"`
	EventName   string       `gorm:"column:event_name;size:100;not null" json:"event_name"`
	DateTime    time.Time    `gorm:"column:date_time;not null" json:"date_time"`
	VenueID     int64        `gorm:"column:venue_id;not null;index" json:"venue_id"`
	Venue       *venue.Venue `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	VolunteerID *int64       `gorm:"column:volunteer_id" json:"volunteer_id"`
	FinanceID   *int64       `gorm:"column:finance_id" json:"finance_id"`
}

func (Event) TableName() string {
	return "event"
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	EventName   string `json:"event_name" binding:"required,notblank,max=100"`
	DateTime    string `json:"date_time" binding:"required"` // 🛠 ISO-8601, see ParseDateTime
	VenueID     int64  `json:"venue_id" binding:"required,gte=1"`
	VolunteerID *int64 `json:"volunteer_id"`
	FinanceID   *int64 `json:"finance_id"`
}

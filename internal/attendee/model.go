package attendee

// ============================
// 🔷 GORM Attendee Model
type Attendee struct {
	AttendeeID    int64  `gorm:"column:attendee_id;primaryKey" json:"attendee_id"`
	Name          string `gorm:"column:name;size:100;not null" json:"name"`
	Type          string `gorm:"column:type;size:50" json:"type"`
	PaymentStatus string `gorm:"column:payment_status;size:20" json:"payment_status"`
}

func (Attendee) TableName() string {
	return "attendee"
}

// Values offered by the dashboard. The store keeps free text, so rows
// loaded from elsewhere may carry other values.
const (
	TypeStudent = "Student"
	TypeGuest   = "Guest"
	TypeVIP     = "VIP"

	PaymentPaid    = "Paid"
	PaymentPending = "Pending"
)

// ============================
// 🟡 Create Attendee Request
type CreateAttendeeRequest struct {
	Name          string `json:"name" binding:"required,notblank,max=100"`
	Type          string `json:"type" binding:"max=50"`
	PaymentStatus string `json:"payment_status" binding:"max=20"`
}

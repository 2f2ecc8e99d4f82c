package venue

// MinCapacity is the smallest venue the system accepts. It matches the
// gte rule on CreateVenueRequest.Capacity.
const MinCapacity = 10

// ============================
// 🔷 GORM Venue Model
type Venue struct {
	VenueID    int64  `gorm:"column:venue_id;primaryKey" json:"venue_id"`
	VenueName  string `gorm:"column:venue_name;size:100;not null" json:"venue_name"`
	Layout     string `gorm:"column:layout;type:text" json:"layout"`
	Capacity   int    `gorm:"column:capacity;not null" json:"capacity"`
	SecurityID *int64 `gorm:"column:security_id" json:"security_id"`
	DesignID   *int64 `gorm:"column:design_id" json:"design_id"`
}

func (Venue) TableName() string {
	return "venue"
}

// ============================
// 🟡 Create Venue Request
type CreateVenueRequest struct {
	Name       string `json:"name" binding:"required,notblank,max=100"`
	Layout     string `json:"layout"`
	Capacity   int    `json:"capacity" binding:"gte=10"`
	SecurityID *int64 `json:"security_id"`
	DesignID   *int64 `json:"design_id"`
}

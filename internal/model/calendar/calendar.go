package calendar

import "time"

const (
	RSVPInvited  = "invited"
	RSVPAccepted = "accepted"
	RSVPDeclined = "declined"
)

// Event is a plain data shape; the time window is validated by the service
type Event struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"not null;index" json:"owner_id"`
	Title     string    `gorm:"type:varchar(200);not null" json:"title"`
	StartsAt  time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt    time.Time `gorm:"not null" json:"ends_at"`
	Location  string    `gorm:"type:varchar(200)" json:"location"`
	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Attendees []Attendee `gorm:"foreignKey:EventID" json:"attendees"`
}

func (Event) TableName() string {
	return "calendar_events"
}

type Attendee struct {
	EventID    uint       `gorm:"primaryKey;autoIncrement:false" json:"event_id"`
	UserID     uint       `gorm:"primaryKey;autoIncrement:false;index" json:"user_id"`
	Status     string     `gorm:"type:varchar(16);not null;default:invited" json:"status"`
	NotifiedAt *time.Time `json:"notified_at"`
}

func (Attendee) TableName() string {
	return "calendar_attendees"
}

// AttendeeIDs returns the attendee user ids in stored order
func (e *Event) AttendeeIDs() []uint {
	ids := make([]uint, 0, len(e.Attendees))
	for _, a := range e.Attendees {
		ids = append(ids, a.UserID)
	}
	return ids
}

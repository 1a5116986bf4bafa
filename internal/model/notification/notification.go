package notification

import (
	"time"

	"gorm.io/datatypes"
)

const (
	TypeMessage          = "message"
	TypeCalendar         = "calendar"
	TypeSubmission       = "submission"
	TypeQuestionResponse = "question_response"
	TypeForum            = "forum"
	TypeBroadcast        = "broadcast"
	TypeSystem           = "system"
)

// Notification is append-only apart from the read flag
type Notification struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	UserID    uint              `gorm:"not null;index:idx_notifications_user_read" json:"user_id"`
	Type      string            `gorm:"type:varchar(32);not null;index" json:"type"`
	Title     string            `gorm:"type:varchar(200);not null" json:"title"`
	Body      string            `gorm:"type:text" json:"body"`
	Metadata  datatypes.JSONMap `json:"metadata"`
	Read      bool              `gorm:"not null;default:false;index:idx_notifications_user_read" json:"read"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

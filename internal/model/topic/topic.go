package topic

import (
	"time"

	"gorm.io/datatypes"
)

type Topic struct {
	ID         uint                        `gorm:"primaryKey" json:"id"`
	Title      string                      `gorm:"type:varchar(200);not null" json:"title"`
	Body       string                      `gorm:"type:text" json:"body"`
	ModuleCode string                      `gorm:"type:varchar(32);index" json:"module_code"`
	Tags       datatypes.JSONSlice[string] `json:"tags"`
	CreatedBy  uint                        `gorm:"not null;index" json:"created_by"`
	CreatedAt  time.Time                   `json:"created_at"`
	UpdatedAt  time.Time                   `json:"updated_at"`

	Resources  []Resource  `gorm:"foreignKey:TopicID" json:"resources,omitempty"`
	Broadcasts []Broadcast `gorm:"foreignKey:TopicID" json:"broadcasts,omitempty"`
}

func (Topic) TableName() string {
	return "topics"
}

// Subscriber composite key keeps the subscriber set free of duplicates
type Subscriber struct {
	TopicID   uint      `gorm:"primaryKey;autoIncrement:false" json:"topic_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscriber) TableName() string {
	return "topic_subscribers"
}

type Resource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TopicID     uint      `gorm:"not null;index" json:"topic_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	StorageKey  string    `gorm:"type:varchar(512);not null" json:"-"`
	URL         string    `gorm:"type:varchar(1024);not null" json:"url"`
	ContentType string    `gorm:"type:varchar(128)" json:"content_type"`
	Size        int64     `json:"size"`
	UploadedBy  uint      `gorm:"not null;index" json:"uploaded_by"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (Resource) TableName() string {
	return "topic_resources"
}

type Broadcast struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TopicID   uint      `gorm:"not null;index" json:"topic_id"`
	SenderID  uint      `gorm:"not null" json:"sender_id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (Broadcast) TableName() string {
	return "topic_broadcasts"
}

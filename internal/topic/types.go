package topic

import "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/topic"

type CreateTopicRequest struct {
	Title      string   `json:"title" binding:"required,max=200"`
	Body       string   `json:"body" binding:"max=10000"`
	ModuleCode string   `json:"module_code" binding:"max=32"`
	Tags       []string `json:"tags" binding:"max=20,dive,max=32"`
}

// UpdateTopicRequest nil fields are left unchanged
type UpdateTopicRequest struct {
	Title      *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Body       *string   `json:"body" binding:"omitempty,max=10000"`
	ModuleCode *string   `json:"module_code" binding:"omitempty,max=32"`
	Tags       *[]string `json:"tags" binding:"omitempty,max=20,dive,max=32"`
}

type BroadcastRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type SubscriptionResponse struct {
	TopicID    uint `json:"topic_id"`
	Subscribed bool `json:"subscribed"`
}

// TopicDetail always carries the resource and broadcast arrays
type TopicDetail struct {
	topic.Topic
	Resources       []topic.Resource  `json:"resources"`
	Broadcasts      []topic.Broadcast `json:"broadcasts"`
	SubscriberCount int64             `json:"subscriber_count"`
	Subscribed      bool              `json:"subscribed"`
}

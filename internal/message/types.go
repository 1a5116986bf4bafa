package message

import "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/message"

type SendRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required"`
	Body        string `json:"body" binding:"required,max=5000"`
}

type ConversationSummary struct {
	message.Conversation
	Unread int64 `json:"unread"`
}

type MessageView struct {
	message.Message
	ReadBy []uint `json:"read_by"`
}

type ConversationDetail struct {
	message.Conversation
	Messages []MessageView `json:"messages"`
}

package chatbot

import "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/assistant"

type ChatRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id" binding:"omitempty,max=64"`
}

type ChatResponse struct {
	assistant.Reply
	SessionID string `json:"session_id"`
}

type HistoryResponse struct {
	SessionID string              `json:"session_id"`
	Messages  []assistant.Message `json:"messages"`
}

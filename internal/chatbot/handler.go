// Package chatbot exposes the study assistant over HTTP
package chatbot

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/assistant"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Handler struct {
	service *assistant.Service
}

// sessionKey signed-in users share one history across devices; anonymous
// callers are keyed by the session id they were handed.
func sessionKey(c *gin.Context, sessionID string) string {
	if userID, _, ok := middleware.CurrentUser(c); ok {
		return fmt.Sprintf("user:%d", userID)
	}
	return "anon:" + sessionID
}

// anonymousSession reads session_id for read/clear calls by guests
func anonymousSession(c *gin.Context) (string, bool) {
	if _, _, ok := middleware.CurrentUser(c); ok {
		return "", true
	}
	id := strings.TrimSpace(c.Query("session_id"))
	if id == "" {
		dto.ErrorResponse(c, response.ErrValidation("session_id is required", nil))
		return "", false
	}
	return id, true
}

// Chat
// @Summary Ask the study assistant
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body ChatRequest true "prompt"
// @Success 200 {object} response.Response{data=ChatResponse}
// @Failure 400 {object} response.ErrorBody
// @Router /assistant/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if _, _, ok := middleware.CurrentUser(c); ok {
		sessionID = ""
	} else if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply, err := h.service.Chat(c.Request.Context(), sessionKey(c, sessionID), req.Message)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, ChatResponse{Reply: *reply, SessionID: sessionID})
}

// History
// @Summary Conversation history of the current session
// @Tags Assistant
// @Produce json
// @Param session_id query string false "required when not signed in"
// @Success 200 {object} response.Response{data=HistoryResponse}
// @Router /assistant/history [get]
func (h *Handler) History(c *gin.Context) {
	sessionID, ok := anonymousSession(c)
	if !ok {
		return
	}
	msgs, err := h.service.History(c.Request.Context(), sessionKey(c, sessionID))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, HistoryResponse{SessionID: sessionID, Messages: msgs})
}

// ClearHistory
// @Summary Forget the current session
// @Tags Assistant
// @Param session_id query string false "required when not signed in"
// @Success 200 {object} response.Response
// @Router /assistant/history [delete]
func (h *Handler) ClearHistory(c *gin.Context) {
	sessionID, ok := anonymousSession(c)
	if !ok {
		return
	}
	if err := h.service.ClearHistory(c.Request.Context(), sessionKey(c, sessionID)); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// Suggestions
// @Summary Suggested prompts
// @Tags Assistant
// @Produce json
// @Param q query string false "last user message"
// @Success 200 {object} response.Response
// @Router /assistant/suggestions [get]
func (h *Handler) Suggestions(c *gin.Context) {
	dto.SuccessResponse(c, gin.H{"suggestions": assistant.Suggestions(c.Query("q"))})
}

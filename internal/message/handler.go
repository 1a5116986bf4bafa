package message

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
)

type Handler struct {
	service *Service
}

// Send
// @Summary Send a private message
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body SendRequest true "message"
// @Success 201 {object} response.Response
// @Router /messages [post]
func (h *Handler) Send(c *gin.Context) {
	var req SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	m, err := h.service.Send(c.Request.Context(), userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, m)
}

// Conversations
// @Summary Caller's conversations, latest first
// @Tags Messages
// @Produce json
// @Success 200 {object} response.Response
// @Router /messages/conversations [get]
func (h *Handler) Conversations(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	convs, err := h.service.Conversations(c.Request.Context(), userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, convs)
}

// Conversation
// @Summary Messages of a conversation
// @Tags Messages
// @Produce json
// @Param id path int true "conversation id"
// @Success 200 {object} response.Response{data=ConversationDetail}
// @Router /messages/conversations/{id} [get]
func (h *Handler) Conversation(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	conv, err := h.service.Conversation(c.Request.Context(), userID, id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, conv)
}

// MarkRead
// @Summary Mark a conversation as read
// @Tags Messages
// @Param id path int true "conversation id"
// @Success 200 {object} response.Response
// @Router /messages/conversations/{id}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	n, err := h.service.MarkRead(c.Request.Context(), userID, id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"conversation_id": id, "messages": n})
}

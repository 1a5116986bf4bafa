package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Handler struct {
	service *Service
}

// List
// @Summary Caller's notifications, newest first
// @Tags Notifications
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param unread query bool false "only unread"
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *Handler) List(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	page, err := h.service.List(c.Request.Context(), userID, pagination.Parse(c), c.Query("unread") == "true")
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// UnreadCount
// @Summary Number of unread notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Response
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	n, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"unread": n})
}

// MarkRead
// @Summary Mark one notification read
// @Tags Notifications
// @Produce json
// @Param id path int true "notification id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorBody
// @Router /notifications/{id}/read [patch]
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
	dto.SuccessResponse(c, n)
}

// MarkAllRead
// @Summary Mark every notification read
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Response
// @Router /notifications/read-all [patch]
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	n, err := h.service.MarkAllRead(c.Request.Context(), userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, gin.H{"updated": n})
}

// Delete
// @Summary Delete a notification
// @Tags Notifications
// @Param id path int true "notification id"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorBody
// @Router /notifications/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

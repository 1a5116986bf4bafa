package topic

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Handler struct {
	service *Service
}

// List
// @Summary List topics
// @Tags Topics
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search title, body or module code"
// @Param module query string false "module code"
// @Success 200 {object} response.Response
// @Router /topics [get]
func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), pagination.Parse(c), c.Query("module"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Create
// @Summary Create a topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param request body CreateTopicRequest true "topic"
// @Success 201 {object} response.Response
// @Router /topics [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	t, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, t)
}

// Get
// @Summary Topic with resources, broadcasts and subscriber count
// @Tags Topics
// @Produce json
// @Param id path int true "topic id"
// @Success 200 {object} response.Response{data=TopicDetail}
// @Router /topics/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	viewerID, _, _ := middleware.CurrentUser(c)
	detail, err := h.service.Get(c.Request.Context(), viewerID, id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, detail)
}

// Update
// @Summary Update a topic
// @Tags Topics
// @Accept json
// @Produce json
// @Param id path int true "topic id"
// @Param request body UpdateTopicRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /topics/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	t, err := h.service.Update(c.Request.Context(), userID, role, id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, t)
}

// Delete
// @Summary Delete a topic
// @Tags Topics
// @Param id path int true "topic id"
// @Success 200 {object} response.Response
// @Router /topics/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	if err := h.service.Delete(c.Request.Context(), userID, role, id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

func (h *Handler) setSubscription(c *gin.Context, subscribed bool) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	sub, err := h.service.SetSubscription(c.Request.Context(), userID, id, subscribed)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, sub)
}

// Subscribe
// @Summary Subscribe to a topic
// @Tags Topics
// @Param id path int true "topic id"
// @Success 200 {object} response.Response{data=SubscriptionResponse}
// @Router /topics/{id}/subscribe [post]
func (h *Handler) Subscribe(c *gin.Context) {
	h.setSubscription(c, true)
}

// Unsubscribe
// @Summary Unsubscribe from a topic
// @Tags Topics
// @Param id path int true "topic id"
// @Success 200 {object} response.Response{data=SubscriptionResponse}
// @Router /topics/{id}/subscribe [delete]
func (h *Handler) Unsubscribe(c *gin.Context) {
	h.setSubscription(c, false)
}

// UploadResources
// @Summary Upload learning resources
// @Tags Topics
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "topic id"
// @Param files formData file true "one or more files"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.ErrorBody
// @Router /topics/{id}/resources [post]
func (h *Handler) UploadResources(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	form, formErr := c.MultipartForm()
	if formErr != nil {
		dto.ErrorResponse(c, response.ErrValidation("invalid multipart form", nil))
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	resources, err := h.service.UploadResources(c.Request.Context(), userID, id, form.File["files"])
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, resources)
}

// DeleteResource
// @Summary Delete a resource
// @Tags Topics
// @Param id path int true "topic id"
// @Param resourceId path int true "resource id"
// @Success 200 {object} response.Response
// @Router /topics/{id}/resources/{resourceId} [delete]
func (h *Handler) DeleteResource(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	resourceID, ok := dto.ParseID(c, "resourceId")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	if err := h.service.DeleteResource(c.Request.Context(), userID, role, id, resourceID); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// Broadcast
// @Summary Broadcast to topic subscribers
// @Tags Topics
// @Accept json
// @Produce json
// @Param id path int true "topic id"
// @Param request body BroadcastRequest true "message"
// @Success 201 {object} response.Response
// @Router /topics/{id}/broadcasts [post]
func (h *Handler) Broadcast(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req BroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	b, err := h.service.Broadcast(c.Request.Context(), userID, role, id, req.Message)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, b)
}

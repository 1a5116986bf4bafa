package forum

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Handler struct {
	service *Service
}

// ListThreads
// @Summary List forum threads
// @Tags Forum
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search title"
// @Param category query string false "category"
// @Success 200 {object} response.Response
// @Router /forum/threads [get]
func (h *Handler) ListThreads(c *gin.Context) {
	page, err := h.service.ListThreads(c.Request.Context(), pagination.Parse(c), c.Query("category"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// CreateThread
// @Summary Start a thread
// @Tags Forum
// @Accept json
// @Produce json
// @Param request body CreateThreadRequest true "thread"
// @Success 201 {object} response.Response{data=ThreadDetail}
// @Router /forum/threads [post]
func (h *Handler) CreateThread(c *gin.Context) {
	var req CreateThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	detail, err := h.service.CreateThread(c.Request.Context(), userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, detail)
}

// GetThread
// @Summary Thread with its posts
// @Tags Forum
// @Produce json
// @Param id path int true "thread id"
// @Success 200 {object} response.Response{data=ThreadDetail}
// @Router /forum/threads/{id} [get]
func (h *Handler) GetThread(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	detail, err := h.service.GetThread(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, detail)
}

// Reply
// @Summary Reply to a thread
// @Tags Forum
// @Accept json
// @Produce json
// @Param id path int true "thread id"
// @Param request body CreatePostRequest true "post"
// @Success 201 {object} response.Response
// @Router /forum/threads/{id}/posts [post]
func (h *Handler) Reply(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	post, err := h.service.Reply(c.Request.Context(), userID, id, req.Body)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, post)
}

// MarkRead
// @Summary Mark every post in a thread as read
// @Tags Forum
// @Param id path int true "thread id"
// @Success 200 {object} response.Response
// @Router /forum/threads/{id}/read [post]
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
	dto.SuccessResponse(c, gin.H{"thread_id": id, "posts": n})
}

// DeletePost
// @Summary Delete a post
// @Tags Forum
// @Param id path int true "post id"
// @Success 200 {object} response.Response
// @Router /forum/posts/{id} [delete]
func (h *Handler) DeletePost(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	if err := h.service.DeletePost(c.Request.Context(), userID, role, id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

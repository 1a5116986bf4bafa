package question

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Handler struct {
	service *Service
}

// Create
// @Summary Ask a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequest true "question"
// @Success 201 {object} response.Response
// @Router /questions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	q, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, q)
}

// List
// @Summary List questions
// @Tags Questions
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search title or body"
// @Param status query string false "open or answered"
// @Param module query string false "module code"
// @Success 200 {object} response.Response
// @Router /questions [get]
func (h *Handler) List(c *gin.Context) {
	userID, role, _ := middleware.CurrentUser(c)
	page, err := h.service.List(c.Request.Context(), userID, role, pagination.Parse(c), c.Query("status"), c.Query("module"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Get
// @Summary Question with its responses
// @Tags Questions
// @Produce json
// @Param id path int true "question id"
// @Success 200 {object} response.Response
// @Router /questions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	q, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, q)
}

// Respond
// @Summary Respond to a question
// @Tags Questions
// @Accept json
// @Produce json
// @Param id path int true "question id"
// @Param request body RespondRequest true "response"
// @Success 201 {object} response.Response
// @Router /questions/{id}/responses [post]
func (h *Handler) Respond(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	resp, err := h.service.Respond(c.Request.Context(), userID, id, req.Message)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, resp)
}

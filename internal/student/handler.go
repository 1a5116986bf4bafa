package student

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Handler struct {
	service *Service
}

// GetMe
// @Summary Own student profile
// @Tags Students
// @Produce json
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Router /students/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	p, err := h.service.Profile(c.Request.Context(), userID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, p)
}

// PutMe
// @Summary Create or update own student profile
// @Tags Students
// @Accept json
// @Produce json
// @Param request body UpsertProfileRequest true "profile"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Router /students/me [put]
func (h *Handler) PutMe(c *gin.Context) {
	var req UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	p, err := h.service.UpsertProfile(c.Request.Context(), userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, p)
}

// List
// @Summary List students
// @Tags Students
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search name, email or student number"
// @Success 200 {object} response.Response
// @Router /students [get]
func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), pagination.Parse(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Get
// @Summary Get a student's profile
// @Tags Students
// @Produce json
// @Param id path int true "student user id"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Router /students/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	p, err := h.service.Profile(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, p)
}

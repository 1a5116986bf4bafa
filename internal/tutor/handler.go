package tutor

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
// @Summary List tutors
// @Tags Tutors
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search name or email"
// @Success 200 {object} response.Response
// @Router /tutors [get]
func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), pagination.Parse(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// GetMe
// @Summary Own tutor profile
// @Tags Tutors
// @Produce json
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Router /tutors/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	userID, _, _ := middleware.CurrentUser(c)
	p, err := h.service.Profile(c.Request.Context(), userID, false)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, p)
}

// PutMe
// @Summary Create or update own tutor profile
// @Tags Tutors
// @Accept json
// @Produce json
// @Param request body UpsertProfileRequest true "profile"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Router /tutors/me [put]
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

// Get
// @Summary Tutor profile with uploaded resources
// @Tags Tutors
// @Produce json
// @Param id path int true "tutor user id"
// @Success 200 {object} response.Response{data=ProfileResponse}
// @Router /tutors/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	p, err := h.service.Profile(c.Request.Context(), id, true)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, p)
}

package submission

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Handler struct {
	service *Service
}

// Create
// @Summary Submit work
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Param course_code formData string true "course code"
// @Param title formData string true "title"
// @Param file formData file false "attachment"
// @Success 201 {object} response.Response
// @Router /submissions [post]
func (h *Handler) Create(c *gin.Context) {
	var form CreateSubmissionForm
	if err := c.ShouldBind(&form); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	fh, fileErr := c.FormFile("file")
	if fileErr != nil && !errors.Is(fileErr, http.ErrMissingFile) {
		dto.ErrorResponse(c, response.ErrValidation("invalid file upload", map[string]string{"file": "unreadable"}))
		return
	}

	userID, _, _ := middleware.CurrentUser(c)
	sub, err := h.service.Create(c.Request.Context(), userID, form, fh)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, sub)
}

// List
// @Summary List submissions
// @Tags Submissions
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param status query string false "submitted, graded or returned"
// @Param course query string false "course code"
// @Success 200 {object} response.Response
// @Router /submissions [get]
func (h *Handler) List(c *gin.Context) {
	userID, role, _ := middleware.CurrentUser(c)
	page, err := h.service.List(c.Request.Context(), userID, role, pagination.Parse(c), c.Query("status"), c.Query("course"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Get
// @Summary Get a submission
// @Tags Submissions
// @Produce json
// @Param id path int true "submission id"
// @Success 200 {object} response.Response
// @Router /submissions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	sub, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, sub)
}

// Grade
// @Summary Grade or return a submission
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path int true "submission id"
// @Param request body GradeRequest true "grading"
// @Success 200 {object} response.Response
// @Router /submissions/{id} [patch]
func (h *Handler) Grade(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req GradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	sub, err := h.service.Grade(c.Request.Context(), userID, id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, sub)
}

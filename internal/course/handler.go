package course

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Handler struct {
	service *Service
}

// List
// @Summary List courses
// @Tags Courses
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search code, title or description"
// @Success 200 {object} response.Response
// @Router /courses [get]
func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), pagination.Parse(c))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Create
// @Summary Create a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body CreateCourseRequest true "course"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.ErrorBody
// @Router /courses [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	course, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, course)
}

// Get
// @Summary Get a course
// @Tags Courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} response.Response
// @Router /courses/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	course, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, course)
}

// Update
// @Summary Update a course
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "course id"
// @Param request body UpdateCourseRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /courses/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	course, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, course)
}

// Delete
// @Summary Delete a course
// @Tags Courses
// @Param id path int true "course id"
// @Success 200 {object} response.Response
// @Router /courses/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// Enroll
// @Summary Enroll a student
// @Tags Courses
// @Accept json
// @Produce json
// @Param id path int true "course id"
// @Param request body EnrollRequest true "student"
// @Success 201 {object} response.Response{data=EnrollmentResponse}
// @Router /courses/{id}/enrollments [post]
func (h *Handler) Enroll(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	enrollment, err := h.service.Enroll(c.Request.Context(), id, req.StudentID)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, enrollment)
}

// Unenroll
// @Summary Remove a student from a course
// @Tags Courses
// @Param id path int true "course id"
// @Param studentId path int true "student user id"
// @Success 200 {object} response.Response
// @Router /courses/{id}/enrollments/{studentId} [delete]
func (h *Handler) Unenroll(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	studentID, ok := dto.ParseID(c, "studentId")
	if !ok {
		return
	}
	if err := h.service.Unenroll(c.Request.Context(), id, studentID); err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, nil)
}

// Roster
// @Summary Students on a course
// @Tags Courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} response.Response
// @Router /courses/{id}/students [get]
func (h *Handler) Roster(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	students, err := h.service.Roster(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, students)
}

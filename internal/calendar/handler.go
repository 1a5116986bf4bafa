package calendar

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/pkg/response"
)

type Handler struct {
	service *Service
}

// parseTimeQuery reads an optional RFC 3339 query value
func parseTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		dto.ErrorResponse(c, response.ErrValidation("invalid "+name, map[string]string{name: "must be an RFC 3339 timestamp"}))
		return nil, false
	}
	t = t.UTC()
	return &t, true
}

// Create
// @Summary Create a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param request body CreateEventRequest true "event"
// @Success 201 {object} response.Response
// @Router /calendar [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	e, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.CreatedResponse(c, e)
}

// List
// @Summary Events the caller owns or attends
// @Tags Calendar
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param from query string false "RFC 3339 lower bound"
// @Param to query string false "RFC 3339 upper bound"
// @Success 200 {object} response.Response
// @Router /calendar [get]
func (h *Handler) List(c *gin.Context) {
	from, ok := parseTimeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "to")
	if !ok {
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	page, err := h.service.List(c.Request.Context(), userID, pagination.Parse(c), from, to)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Get
// @Summary Get a calendar event
// @Tags Calendar
// @Produce json
// @Param id path int true "event id"
// @Success 200 {object} response.Response
// @Router /calendar/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	e, err := h.service.Get(c.Request.Context(), userID, role, id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, e)
}

// Update
// @Summary Update a calendar event
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path int true "event id"
// @Param request body UpdateEventRequest true "fields to change"
// @Success 200 {object} response.Response
// @Router /calendar/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	e, err := h.service.Update(c.Request.Context(), userID, role, id, req)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, e)
}

// Delete
// @Summary Delete a calendar event
// @Tags Calendar
// @Param id path int true "event id"
// @Success 200 {object} response.Response
// @Router /calendar/{id} [delete]
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

// RSVP
// @Summary Accept or decline an invitation
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path int true "event id"
// @Param request body RSVPRequest true "rsvp"
// @Success 200 {object} response.Response
// @Router /calendar/{id}/rsvp [post]
func (h *Handler) RSVP(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	userID, _, _ := middleware.CurrentUser(c)
	e, err := h.service.RSVP(c.Request.Context(), userID, id, req.Status)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, e)
}

package user

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List
// @Summary List users
// @Tags Users
// @Produce json
// @Param page query int false "page" default(1)
// @Param pageSize query int false "page size" default(20)
// @Param q query string false "search name or email"
// @Param role query string false "student, tutor or admin"
// @Success 200 {object} response.Response
// @Router /users [get]
func (h *Handler) List(c *gin.Context) {
	page, err := h.service.List(c.Request.Context(), pagination.Parse(c), c.Query("role"))
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, page)
}

// Get
// @Summary Get a user
// @Tags Users
// @Produce json
// @Param id path int true "user id"
// @Success 200 {object} response.Response
// @Router /users/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	u, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// UpdateMe
// @Summary Update own name
// @Tags Users
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "new name"
// @Success 200 {object} response.Response
// @Router /users/me [patch]
func (h *Handler) UpdateMe(c *gin.Context) {
	userID, role, _ := middleware.CurrentUser(c)
	h.updateName(c, userID, role, userID)
}

// Update
// @Summary Update a user's name (owner or admin)
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param request body UpdateProfileRequest true "new name"
// @Success 200 {object} response.Response
// @Router /users/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	userID, role, _ := middleware.CurrentUser(c)
	h.updateName(c, userID, role, id)
}

func (h *Handler) updateName(c *gin.Context, requesterID uint, role string, targetID uint) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	u, err := h.service.UpdateName(c.Request.Context(), requesterID, role, targetID, req.Name)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// ChangeRole
// @Summary Change a user's role
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param request body ChangeRoleRequest true "role"
// @Success 200 {object} response.Response
// @Router /users/{id}/role [patch]
func (h *Handler) ChangeRole(c *gin.Context) {
	id, ok := dto.ParseID(c, "id")
	if !ok {
		return
	}
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.ValidationErrorResponse(c, err)
		return
	}
	u, err := h.service.ChangeRole(c.Request.Context(), id, req.Role)
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, u)
}

// Delete
// @Summary Delete a user
// @Tags Users
// @Param id path int true "user id"
// @Success 200 {object} response.Response
// @Router /users/{id} [delete]
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
	dto.SuccessResponse(c, gin.H{"deleted": id})
}

package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
)

type Handler struct {
	service *Service
}

// Stats
// @Summary Platform statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Response{data=Stats}
// @Router /admin/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		dto.ErrorResponse(c, err)
		return
	}
	dto.SuccessResponse(c, stats)
}

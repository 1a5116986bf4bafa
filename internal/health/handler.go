// Package health reports liveness. It never touches the database.
package health

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/dto"
)

const StatusOperational = "operational"

type Status struct {
	Status    string    `json:"status"`
	Uptime    float64   `json:"uptime"` // seconds
	Timestamp time.Time `json:"timestamp"`
}

type Handler struct {
	startedAt time.Time
	now       func() time.Time
}

// Health
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response{data=Status}
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	now := h.now().UTC()
	uptime := now.Sub(h.startedAt).Seconds()
	dto.SuccessResponse(c, Status{
		Status:    StatusOperational,
		Uptime:    math.Round(uptime*1000) / 1000,
		Timestamp: now,
	})
}

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{startedAt: deps.StartedAt, now: time.Now}
	r.GET("/health", h.Health)
}

package calendar

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), user.NewRepository(deps.DB), deps.Notifier)}

	events := r.Group("/calendar")
	events.Use(deps.Auth.JWTAuth())
	{
		events.POST("", middleware.RequireRoles(userModel.RoleTutor, userModel.RoleAdmin), h.Create)
		events.GET("", h.List)
		events.GET("/:id", h.Get)
		events.PATCH("/:id", h.Update)
		events.DELETE("/:id", h.Delete)
		events.POST("/:id/rsvp", h.RSVP)
	}
}

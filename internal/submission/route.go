package submission

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	service := NewService(NewRepository(deps.DB), deps.Storage, deps.Notifier, deps.Config.Upload.MaxSize)
	h := &Handler{service: service}

	submissions := r.Group("/submissions")
	submissions.Use(deps.Auth.JWTAuth())
	{
		submissions.POST("", middleware.RequireRoles(userModel.RoleStudent), h.Create)
		submissions.GET("", h.List)
		submissions.GET("/:id", h.Get)
		submissions.PATCH("/:id", middleware.RequireRoles(userModel.RoleTutor, userModel.RoleAdmin), h.Grade)
	}
}

package question

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), deps.Notifier)}

	questions := r.Group("/questions")
	questions.Use(deps.Auth.JWTAuth())
	{
		questions.POST("", middleware.RequireRoles(userModel.RoleStudent), h.Create)
		questions.GET("", h.List)
		questions.GET("/:id", h.Get)
		questions.POST("/:id/responses", middleware.RequireRoles(userModel.RoleTutor), h.Respond)
	}
}

package user

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := NewHandler(NewService(NewRepository(deps.DB)))
	adminOnly := middleware.RequireRoles(userModel.RoleAdmin)

	users := r.Group("/users")
	users.Use(deps.Auth.JWTAuth())
	{
		users.GET("", adminOnly, h.List)
		users.PATCH("/me", h.UpdateMe)
		users.GET("/:id", h.Get)
		users.PATCH("/:id", h.Update)
		users.PATCH("/:id/role", adminOnly, h.ChangeRole)
		users.DELETE("/:id", adminOnly, h.Delete)
	}
}

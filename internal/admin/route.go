package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB))}

	admin := r.Group("/admin")
	admin.Use(deps.Auth.JWTAuth(), middleware.RequireRoles(userModel.RoleAdmin))
	{
		admin.GET("/stats", h.Stats)
	}
}

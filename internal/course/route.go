package course

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), user.NewRepository(deps.DB))}

	courses := r.Group("/courses")
	courses.Use(deps.Auth.JWTAuth())
	{
		adminOnly := middleware.RequireRoles(userModel.RoleAdmin)

		courses.GET("", h.List)
		courses.POST("", adminOnly, h.Create)
		courses.GET("/:id", h.Get)
		courses.PATCH("/:id", adminOnly, h.Update)
		courses.DELETE("/:id", adminOnly, h.Delete)

		courses.POST("/:id/enrollments", adminOnly, h.Enroll)
		courses.DELETE("/:id/enrollments/:studentId", adminOnly, h.Unenroll)
		courses.GET("/:id/students", middleware.RequireRoles(userModel.RoleTutor, userModel.RoleAdmin), h.Roster)
	}
}

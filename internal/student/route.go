package student

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), user.NewRepository(deps.DB))}

	students := r.Group("/students")
	students.Use(deps.Auth.JWTAuth())
	{
		self := middleware.RequireRoles(userModel.RoleStudent)
		students.GET("/me", self, h.GetMe)
		students.PUT("/me", self, h.PutMe)

		students.GET("", middleware.RequireRoles(userModel.RoleAdmin), h.List)
		students.GET("/:id", middleware.RequireRoles(userModel.RoleTutor, userModel.RoleAdmin), h.Get)
	}
}

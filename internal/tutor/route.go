package tutor

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), user.NewRepository(deps.DB))}

	tutors := r.Group("/tutors")
	{
		tutors.GET("", deps.Auth.OptionalJWTAuth(), h.List)

		me := tutors.Group("/me", deps.Auth.JWTAuth(), middleware.RequireRoles(userModel.RoleTutor))
		me.GET("", h.GetMe)
		me.PUT("", h.PutMe)

		tutors.GET("/:id", deps.Auth.OptionalJWTAuth(), h.Get)
	}
}

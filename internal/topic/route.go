package topic

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	userModel "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/model/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	service := NewService(NewRepository(deps.DB), deps.Storage, deps.Notifier, deps.Config.Upload.MaxSize)
	h := &Handler{service: service}

	topics := r.Group("/topics")
	{
		topics.GET("", deps.Auth.OptionalJWTAuth(), h.List)
		topics.GET("/:id", deps.Auth.OptionalJWTAuth(), h.Get)

		authed := topics.Group("", deps.Auth.JWTAuth())
		staff := middleware.RequireRoles(userModel.RoleTutor, userModel.RoleAdmin)

		authed.POST("", staff, h.Create)
		authed.PATCH("/:id", h.Update)
		authed.DELETE("/:id", h.Delete)

		authed.POST("/:id/subscribe", h.Subscribe)
		authed.DELETE("/:id/subscribe", h.Unsubscribe)

		authed.POST("/:id/resources", staff, h.UploadResources)
		authed.DELETE("/:id/resources/:resourceId", h.DeleteResource)

		authed.POST("/:id/broadcasts", h.Broadcast)
	}
}

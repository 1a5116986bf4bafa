package forum

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), deps.Notifier)}

	forum := r.Group("/forum")
	{
		threads := forum.Group("/threads")
		threads.GET("", deps.Auth.OptionalJWTAuth(), h.ListThreads)
		threads.GET("/:id", deps.Auth.OptionalJWTAuth(), h.GetThread)
		threads.POST("", deps.Auth.JWTAuth(), h.CreateThread)
		threads.POST("/:id/posts", deps.Auth.JWTAuth(), h.Reply)
		threads.POST("/:id/read", deps.Auth.JWTAuth(), h.MarkRead)

		forum.DELETE("/posts/:id", deps.Auth.JWTAuth(), h.DeletePost)
	}
}

package message

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: NewService(NewRepository(deps.DB), user.NewRepository(deps.DB), deps.Notifier)}

	messages := r.Group("/messages")
	messages.Use(deps.Auth.JWTAuth())
	{
		messages.POST("", h.Send)
		messages.GET("/conversations", h.Conversations)
		messages.GET("/conversations/:id", h.Conversation)
		messages.POST("/conversations/:id/read", h.MarkRead)
	}
}

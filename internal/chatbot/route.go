package chatbot

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	h := &Handler{service: deps.Assistant}

	bot := r.Group("/assistant")
	bot.Use(deps.Auth.OptionalJWTAuth())
	{
		bot.POST("/chat", h.Chat)
		bot.GET("/history", h.History)
		bot.DELETE("/history", h.ClearHistory)
		bot.GET("/suggestions", h.Suggestions)
	}
}

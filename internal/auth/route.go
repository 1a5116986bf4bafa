package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

func RegisterRoutes(r *gin.RouterGroup, deps *app.Deps) {
	cfg := deps.Config
	service := NewService(
		user.NewRepository(deps.DB),
		deps.Tokens,
		DomainPolicy{StudentDomains: cfg.Auth.StudentDomains, StaffDomains: cfg.Auth.StaffDomains},
		cfg.Auth.BcryptCost,
	)
	h := &Handler{
		service:    service,
		cookieName: deps.Auth.CookieName(),
		secure:     cfg.Server.Production,
	}

	auth := r.Group("/auth")
	{
		strict := middleware.RateLimit(deps.AuthLimiter, "auth")
		auth.POST("/register", strict, h.Register)
		auth.POST("/login", strict, h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", deps.Auth.JWTAuth(), h.Me)
	}
}

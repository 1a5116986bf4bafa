package route

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/TiaanDorfling/CampusLearn-HSLS-sub000/docs"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/admin"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/app"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/auth"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/calendar"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/chatbot"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/course"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/forum"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/health"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/message"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/middleware"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/notification"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/question"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/student"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/submission"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/topic"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/tutor"
	"github.com/TiaanDorfling/CampusLearn-HSLS-sub000/internal/user"
)

type module struct {
	name     string
	register func(*gin.RouterGroup, *app.Deps)
}

// modules every route group mounted under /api
var modules = []module{
	{"health", health.RegisterRoutes},
	{"auth", auth.RegisterRoutes},
	{"users", user.RegisterRoutes},
	{"students", student.RegisterRoutes},
	{"tutors", tutor.RegisterRoutes},
	{"courses", course.RegisterRoutes},
	{"topics", topic.RegisterRoutes},
	{"questions", question.RegisterRoutes},
	{"submissions", submission.RegisterRoutes},
	{"calendar", calendar.RegisterRoutes},
	{"forum", forum.RegisterRoutes},
	{"messages", message.RegisterRoutes},
	{"notifications", notification.RegisterRoutes},
	{"assistant", chatbot.RegisterRoutes},
	{"admin", admin.RegisterRoutes},
}

func initRoute(r *gin.Engine, deps *app.Deps) {
	// docs and ops
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if deps.Config.Upload.Backend == "disk" {
		r.Static(deps.Config.Upload.PublicPath, deps.Config.Upload.Dir)
	}

	api := r.Group("/api")
	api.Use(middleware.RateLimit(deps.Limiter, "api"))
	for _, m := range modules {
		m.register(api, deps)
	}

	r.NoRoute(middleware.NotFound())
}

func SetupRouter(deps *app.Deps) *gin.Engine {
	gin.SetMode(deps.Config.Server.Mode)
	r := gin.New()
	r.Use(middleware.RequestLogger(deps.Logger), middleware.Recovery(), middleware.Metrics())

	// the frontend sends the session cookie cross-origin
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
	}))

	initRoute(r, deps)

	return r
}

package routes

import (
	"github.com/IMxMaYur/health-copilot/config"
	"github.com/IMxMaYur/health-copilot/controllers"
	"github.com/IMxMaYur/health-copilot/middlewares"
	"github.com/IMxMaYur/health-copilot/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())
	r.Use(cors.Default())

	logs := controllers.NewRecordController(
		services.NewRecordService(config.DB, hub, services.DailyLogKind()))
	vitals := controllers.NewRecordController(
		services.NewRecordService(config.DB, hub, services.VitalsKind()))
	dashboard := controllers.NewDashboardController(services.NewDashboardService(config.DB))
	realtime := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	session := r.Group("/auth")
	session.Use(middlewares.AuthMiddleware())
	{
		session.GET("/session", controllers.Session)
		session.POST("/logout", controllers.Logout)
	}

	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/logs", logs.List)
		api.POST("/logs", logs.Create)
		api.PUT("/logs/:id", logs.Update)
		api.DELETE("/logs/:id", logs.Delete)

		api.GET("/vitals", vitals.List)
		api.POST("/vitals", vitals.Create)
		api.PUT("/vitals/:id", vitals.Update)
		api.DELETE("/vitals/:id", vitals.Delete)

		api.GET("/dashboard", dashboard.Overview)
		api.GET("/events", realtime.EventsWS)
	}

	return r
}

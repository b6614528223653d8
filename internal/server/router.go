package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/handlers"
	"github.com/connectus-hq/connectus-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	AdminHandler    *handlers.AdminHandler
	UserHandler     *handlers.UserHandler
	NoticeHandler   *handlers.NoticeHandler
	ResponseHandler *handlers.ResponseHandler
	MessageHandler  *handlers.MessageHandler
	FeedbackHandler *handlers.FeedbackHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AllowOrigins    []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	router.Use(cors.New(corsConfig))

	requireAuth := cfg.AuthMiddleware.RequireAuth()
	requireAdmin := cfg.AuthMiddleware.RequireAdmin()

	router.GET("/", handlers.Index)
	router.GET("/healthcheck", handlers.HealthCheck)

	users := router.Group("/users")
	{
		users.POST("/signup", cfg.AuthHandler.Signup)
		users.POST("/login", cfg.AuthHandler.Login)
		users.GET("/all", requireAuth, requireAdmin, cfg.UserHandler.AllStaff)
		users.GET("/regular", requireAuth, cfg.UserHandler.RegularStaff)
		users.GET("/admin", requireAuth, requireAdmin, cfg.UserHandler.AdminStaff)
		users.GET("/leave", requireAuth, cfg.UserHandler.OnLeave)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/login", cfg.AuthHandler.AdminLogin)
		admin.GET("/verify", cfg.AdminHandler.VerifyEmail)
		admin.POST("/resend", cfg.AdminHandler.ResendVerification)
		admin.POST("/registration", requireAuth, requireAdmin, cfg.AdminHandler.CreateRegistrationInvite)
	}

	notice := router.Group("/notice", requireAuth)
	{
		notice.POST("", requireAdmin, cfg.NoticeHandler.Create)
		notice.GET("", cfg.NoticeHandler.List)
		notice.GET("/:id", cfg.NoticeHandler.View)
		notice.PUT("/leave", requireAdmin, cfg.NoticeHandler.StartLeave)
		notice.PUT("/leave/:id", requireAdmin, cfg.NoticeHandler.EndLeave)
		notice.PUT("/:id", requireAdmin, cfg.NoticeHandler.Update)
		notice.POST("/:id/response", cfg.ResponseHandler.Create)
		notice.GET("/:id/responses", cfg.ResponseHandler.ListForNotice)
	}

	response := router.Group("/response", requireAuth)
	{
		response.PUT("/:id", cfg.ResponseHandler.Edit)
		response.DELETE("/:id", cfg.ResponseHandler.Delete)
	}

	chat := router.Group("/chat", requireAuth)
	{
		chat.POST("/:id", cfg.MessageHandler.Send)
		chat.GET("/:id", cfg.MessageHandler.ListThread)
		chat.DELETE("/:id", cfg.MessageHandler.Delete)
	}

	feedback := router.Group("/feedback", requireAuth)
	{
		feedback.POST("", cfg.FeedbackHandler.Submit)
		feedback.GET("", cfg.FeedbackHandler.List)
		feedback.DELETE("/:id", requireAdmin, cfg.FeedbackHandler.Delete)
	}

	return router
}

package app

import (
	"github.com/gin-gonic/gin"

	"github.com/connectus-hq/connectus-backend/internal/server"
)

func wireRouter(cfg Config, handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:     handlerset.Auth,
		AdminHandler:    handlerset.Admin,
		UserHandler:     handlerset.User,
		NoticeHandler:   handlerset.Notice,
		ResponseHandler: handlerset.Response,
		MessageHandler:  handlerset.Message,
		FeedbackHandler: handlerset.Feedback,
		AuthMiddleware:  middlewareset.Auth,
		AllowOrigins:    cfg.AllowOrigins,
	})
}

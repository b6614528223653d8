package app

import (
	"github.com/connectus-hq/connectus-backend/internal/handlers"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
)

type Handlers struct {
	Auth     *handlers.AuthHandler
	Admin    *handlers.AdminHandler
	User     *handlers.UserHandler
	Notice   *handlers.NoticeHandler
	Response *handlers.ResponseHandler
	Message  *handlers.MessageHandler
	Feedback *handlers.FeedbackHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	return Handlers{
		Auth:     handlers.NewAuthHandler(log, serviceset.Auth, serviceset.Account),
		Admin:    handlers.NewAdminHandler(log, serviceset.Account),
		User:     handlers.NewUserHandler(log, serviceset.Account),
		Notice:   handlers.NewNoticeHandler(log, serviceset.Notice, serviceset.Account),
		Response: handlers.NewResponseHandler(log, serviceset.Response),
		Message:  handlers.NewMessageHandler(log, serviceset.Message),
		Feedback: handlers.NewFeedbackHandler(log, serviceset.Feedback),
	}
}

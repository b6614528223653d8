package app

import (
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/platform/mailer"
	"github.com/connectus-hq/connectus-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	Account  services.AccountService
	Notice   services.NoticeService
	Response services.ResponseService
	Message  services.MessageService
	Feedback services.FeedbackService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, mailClient mailer.Client) Services {
	authService := services.NewAuthService(db, log, reposet.User, cfg.JWTSecretKey, cfg.SessionTTL, cfg.BcryptCost)
	accountService := services.NewAccountService(
		db,
		log,
		reposet.User,
		reposet.ActionToken,
		reposet.Notice,
		authService,
		mailClient,
		cfg.AdminSignupKey,
		cfg.ActionTokenTTL,
		cfg.AppBaseURL,
	)
	return Services{
		Auth:     authService,
		Account:  accountService,
		Notice:   services.NewNoticeService(db, log, reposet.Notice, reposet.Response),
		Response: services.NewResponseService(db, log, reposet.Notice, reposet.Response),
		Message:  services.NewMessageService(db, log, reposet.User, reposet.Message),
		Feedback: services.NewFeedbackService(db, log, reposet.Feedback),
	}
}

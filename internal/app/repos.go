package app

import (
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/repos"
)

type Repos struct {
	User        repos.UserRepo
	ActionToken repos.ActionTokenRepo
	Notice      repos.NoticeRepo
	Response    repos.ResponseRepo
	Message     repos.MessageRepo
	Feedback    repos.FeedbackRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		User:        repos.NewUserRepo(db, log),
		ActionToken: repos.NewActionTokenRepo(db, log),
		Notice:      repos.NewNoticeRepo(db, log),
		Response:    repos.NewResponseRepo(db, log),
		Message:     repos.NewMessageRepo(db, log),
		Feedback:    repos.NewFeedbackRepo(db, log),
	}
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/connectus-hq/connectus-backend/internal/platform/apierr"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/repos"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

const (
	testJWTSecret  = "test-secret"
	testAdminKey   = "super-admin-key"
	testBaseURL    = "http://localhost:3000"
	testSessionTTL = time.Hour
	testTokenTTL   = 24 * time.Hour
)

func newTestLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&types.User{},
		&types.ActionToken{},
		&types.Notice{},
		&types.Response{},
		&types.Message{},
		&types.Feedback{},
	))
	return db
}

type testEnv struct {
	db       *gorm.DB
	log      *logger.Logger
	users    repos.UserRepo
	tokens   repos.ActionTokenRepo
	notices  repos.NoticeRepo
	resps    repos.ResponseRepo
	messages repos.MessageRepo
	feedback repos.FeedbackRepo

	auth            AuthService
	account         AccountService
	noticeService   NoticeService
	responseService ResponseService
	messageService  MessageService
	feedbackService FeedbackService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	log := newTestLogger()

	env := &testEnv{
		db:       db,
		log:      log,
		users:    repos.NewUserRepo(db, log),
		tokens:   repos.NewActionTokenRepo(db, log),
		notices:  repos.NewNoticeRepo(db, log),
		resps:    repos.NewResponseRepo(db, log),
		messages: repos.NewMessageRepo(db, log),
		feedback: repos.NewFeedbackRepo(db, log),
	}
	env.auth = NewAuthService(db, log, env.users, testJWTSecret, testSessionTTL, 4)
	env.account = NewAccountService(db, log, env.users, env.tokens, env.notices, env.auth, nil, testAdminKey, testTokenTTL, testBaseURL)
	env.noticeService = NewNoticeService(db, log, env.notices, env.resps)
	env.responseService = NewResponseService(db, log, env.notices, env.resps)
	env.messageService = NewMessageService(db, log, env.users, env.messages)
	env.feedbackService = NewFeedbackService(db, log, env.feedback)
	return env
}

func (env *testEnv) createUser(t *testing.T, fullName, email string, authority int, verified bool) *types.User {
	t.Helper()
	hash, err := env.auth.HashPassword("password123")
	require.NoError(t, err)
	user := &types.User{
		ID:        uuid.New(),
		FullName:  fullName,
		Email:     NormalizeEmail(email),
		Password:  hash,
		Gender:    "M",
		Authority: authority,
		Verified:  verified,
	}
	require.NoError(t, env.users.Create(context.Background(), nil, user))
	return user
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var apiErr *apierr.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.Status)
}


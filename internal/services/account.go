package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/apierr"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/platform/mailer"
	"github.com/connectus-hq/connectus-backend/internal/repos"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

// Staff listing buckets.
const (
	BucketAll     = "all"
	BucketRegular = "regular"
	BucketAdmin   = "admin"
	BucketOnLeave = "leave"
)

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Gender   string
}

type StaffPage struct {
	Users []*types.User
	Page  int
	Pages int
}

type AccountService interface {
	RegisterAdmin(ctx context.Context, in RegisterInput, adminKey string) (*types.User, error)
	RegisterStaff(ctx context.Context, in RegisterInput, tokenID string) (*types.User, error)
	VerifyEmail(ctx context.Context, tokenID string) (*types.User, error)
	ResendVerification(ctx context.Context, email string) (*types.User, error)
	CreateRegistrationInvite(ctx context.Context, email string) (*types.ActionToken, error)
	ListStaff(ctx context.Context, bucket, search string, page int) (*StaffPage, error)
	StartLeave(ctx context.Context, actorID uuid.UUID, email string) (*types.User, error)
	EndLeave(ctx context.Context, actorID, userID uuid.UUID) (*types.User, error)
}

type accountService struct {
	db             *gorm.DB
	log            *logger.Logger
	userRepo       repos.UserRepo
	tokenRepo      repos.ActionTokenRepo
	noticeRepo     repos.NoticeRepo
	authService    AuthService
	mailClient     mailer.Client
	adminSignupKey string
	actionTokenTTL time.Duration
	appBaseURL     string
}

func NewAccountService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	tokenRepo repos.ActionTokenRepo,
	noticeRepo repos.NoticeRepo,
	authService AuthService,
	mailClient mailer.Client,
	adminSignupKey string,
	actionTokenTTL time.Duration,
	appBaseURL string,
) AccountService {
	serviceLog := log.With("service", "AccountService")
	return &accountService{
		db:             db,
		log:            serviceLog,
		userRepo:       userRepo,
		tokenRepo:      tokenRepo,
		noticeRepo:     noticeRepo,
		authService:    authService,
		mailClient:     mailClient,
		adminSignupKey: adminSignupKey,
		actionTokenTTL: actionTokenTTL,
		appBaseURL:     strings.TrimRight(appBaseURL, "/"),
	}
}

// RegisterAdmin creates an unverified admin account gated by the shared admin
// secret, then mails a verification link. Mail delivery is best effort.
func (s *accountService) RegisterAdmin(ctx context.Context, in RegisterInput, adminKey string) (*types.User, error) {
	email := NormalizeEmail(in.Email)

	existing, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("look up user by email: %w", err)
	}
	if existing != nil {
		return nil, apierr.Conflict(fmt.Errorf("user already exists, login instead"))
	}
	if s.adminSignupKey == "" || adminKey != s.adminSignupKey {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid admin key"))
	}

	hash, err := s.authService.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		ID:        uuid.New(),
		FullName:  in.FullName,
		Email:     email,
		Password:  hash,
		Gender:    in.Gender,
		Authority: types.AuthorityAdmin,
		Verified:  false,
	}
	token := &types.ActionToken{
		ID:        uuid.New(),
		Purpose:   types.TokenPurposeVerify,
		Email:     email,
		UserID:    &user.ID,
		ExpiresAt: time.Now().Add(s.actionTokenTTL),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := s.tokenRepo.Create(ctx, tx, token); err != nil {
			return fmt.Errorf("create verification token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchMail(email, "Connect Us: Verify your account",
		fmt.Sprintf("Click this link to verify your account: %s/admin/verify?token=%s", s.appBaseURL, token.ID))
	return user, nil
}

// RegisterStaff consumes a registration token whose embedded email must match
// the submitted one, and creates an already-verified staff account.
func (s *accountService) RegisterStaff(ctx context.Context, in RegisterInput, tokenID string) (*types.User, error) {
	email := NormalizeEmail(in.Email)

	token, err := s.consumableToken(ctx, tokenID, types.TokenPurposeRegister)
	if err != nil {
		return nil, err
	}
	if token.Email != email {
		return nil, apierr.Conflict(fmt.Errorf("invalid token for email"))
	}

	existing, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("look up user by email: %w", err)
	}
	if existing != nil {
		return nil, apierr.Conflict(fmt.Errorf("user already exists, login instead"))
	}

	hash, err := s.authService.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &types.User{
		ID:        uuid.New(),
		FullName:  in.FullName,
		Email:     email,
		Password:  hash,
		Gender:    in.Gender,
		Authority: types.AuthorityStaff,
		Verified:  true,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if err := s.tokenRepo.Delete(ctx, tx, token.ID); err != nil {
			return fmt.Errorf("consume registration token: %w", err)
		}
		return s.createSystemNotice(ctx, tx, user.ID, "New staff member",
			fmt.Sprintf("%s, has joined the team", user.FullName))
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// VerifyEmail consumes a verification token and flips the referenced account
// to verified.
func (s *accountService) VerifyEmail(ctx context.Context, tokenID string) (*types.User, error) {
	token, err := s.consumableToken(ctx, tokenID, types.TokenPurposeVerify)
	if err != nil {
		return nil, err
	}
	if token.UserID == nil {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid token"))
	}

	user, err := s.userRepo.GetByID(ctx, nil, *token.UserID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, apierr.NotFound(fmt.Errorf("user not found"))
	}
	if user.Verified {
		return nil, apierr.Conflict(fmt.Errorf("user already verified"))
	}

	user.Verified = true
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(ctx, tx, user); err != nil {
			return fmt.Errorf("mark user verified: %w", err)
		}
		if err := s.tokenRepo.Delete(ctx, tx, token.ID); err != nil {
			return fmt.Errorf("consume verification token: %w", err)
		}
		return s.createSystemNotice(ctx, tx, user.ID, "New staff member",
			fmt.Sprintf("%s, has joined the team", user.FullName))
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ResendVerification replaces any outstanding verification token for an
// unverified account and mails a fresh link.
func (s *accountService) ResendVerification(ctx context.Context, email string) (*types.User, error) {
	email = NormalizeEmail(email)

	user, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("look up user by email: %w", err)
	}
	if user == nil {
		return nil, apierr.NotFound(fmt.Errorf("user not found"))
	}
	if user.Verified {
		return nil, apierr.Conflict(fmt.Errorf("user already verified"))
	}

	token := &types.ActionToken{
		ID:        uuid.New(),
		Purpose:   types.TokenPurposeVerify,
		Email:     email,
		UserID:    &user.ID,
		ExpiresAt: time.Now().Add(s.actionTokenTTL),
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tokenRepo.DeleteByUserAndPurpose(ctx, tx, user.ID, types.TokenPurposeVerify); err != nil {
			return fmt.Errorf("drop previous verification token: %w", err)
		}
		if err := s.tokenRepo.Create(ctx, tx, token); err != nil {
			return fmt.Errorf("create verification token: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatchMail(email, "Connect Us: Verify your account",
		fmt.Sprintf("Click this link to verify your account: %s/admin/verify?token=%s", s.appBaseURL, token.ID))
	return user, nil
}

// CreateRegistrationInvite issues a registration token for an email with no
// account yet and mails the signup link.
func (s *accountService) CreateRegistrationInvite(ctx context.Context, email string) (*types.ActionToken, error) {
	email = NormalizeEmail(email)

	existing, err := s.userRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return nil, fmt.Errorf("look up user by email: %w", err)
	}
	if existing != nil {
		return nil, apierr.Conflict(fmt.Errorf("user already exists"))
	}

	token := &types.ActionToken{
		ID:        uuid.New(),
		Purpose:   types.TokenPurposeRegister,
		Email:     email,
		ExpiresAt: time.Now().Add(s.actionTokenTTL),
	}
	if err := s.tokenRepo.Create(ctx, nil, token); err != nil {
		return nil, fmt.Errorf("create registration token: %w", err)
	}

	s.dispatchMail(email, "Connect Us: Sign up",
		fmt.Sprintf("Click this link to sign up: %s/signup?token=%s", s.appBaseURL, token.ID))
	return token, nil
}

func (s *accountService) ListStaff(ctx context.Context, bucket, search string, page int) (*StaffPage, error) {
	filter := repos.UserFilter{}
	switch bucket {
	case BucketAll, "":
		filter.Search = strings.TrimSpace(search)
	case BucketRegular:
		authority := types.AuthorityStaff
		filter.Authority = &authority
	case BucketAdmin:
		authority := types.AuthorityAdmin
		filter.Authority = &authority
	case BucketOnLeave:
		onLeave := true
		filter.Leave = &onLeave
	default:
		return nil, apierr.BadRequest(fmt.Errorf("unknown staff bucket %q", bucket))
	}

	page, offset := pageOffset(page, PageSize)
	filter.Limit = PageSize
	filter.Offset = offset

	users, count, err := s.userRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &StaffPage{Users: users, Page: page, Pages: pageCount(count, PageSize)}, nil
}

func (s *accountService) StartLeave(ctx context.Context, actorID uuid.UUID, email string) (*types.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, nil, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("look up user by email: %w", err)
	}
	return s.applyLeave(ctx, actorID, user, true)
}

func (s *accountService) EndLeave(ctx context.Context, actorID, userID uuid.UUID) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	return s.applyLeave(ctx, actorID, user, false)
}

// applyLeave is the single leave-state transition: self-targeting is always
// rejected and a no-op transition is a conflict.
func (s *accountService) applyLeave(ctx context.Context, actorID uuid.UUID, user *types.User, onLeave bool) (*types.User, error) {
	if user == nil {
		return nil, apierr.NotFound(fmt.Errorf("user not found"))
	}
	if user.ID == actorID {
		return nil, apierr.Forbidden(fmt.Errorf("you cannot change your own leave status"))
	}
	if user.Leave == onLeave {
		if onLeave {
			return nil, apierr.Conflict(fmt.Errorf("user already on leave"))
		}
		return nil, apierr.Conflict(fmt.Errorf("user not on leave"))
	}

	title := "Leave of absence"
	content := fmt.Sprintf("%s is on leave", user.FullName)
	if !onLeave {
		title = "Return from leave"
		content = fmt.Sprintf("%s has returned from leave", user.FullName)
	}

	user.Leave = onLeave
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(ctx, tx, user); err != nil {
			return fmt.Errorf("update leave status: %w", err)
		}
		return s.createSystemNotice(ctx, tx, user.ID, title, content)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// consumableToken loads a stateful action token and enforces purpose and
// expiry. Expired rows are deleted on sight; there is no background sweep.
func (s *accountService) consumableToken(ctx context.Context, tokenID, purpose string) (*types.ActionToken, error) {
	id, err := uuid.Parse(strings.TrimSpace(tokenID))
	if err != nil {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid token"))
	}
	token, err := s.tokenRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("look up action token: %w", err)
	}
	if token == nil || token.Purpose != purpose {
		return nil, apierr.Unauthorized(fmt.Errorf("invalid token"))
	}
	if token.Expired(time.Now()) {
		if derr := s.tokenRepo.Delete(ctx, nil, token.ID); derr != nil {
			s.log.Warn("Failed to delete expired action token", "error", derr)
		}
		return nil, apierr.Unauthorized(fmt.Errorf("token expired"))
	}
	return token, nil
}

func (s *accountService) createSystemNotice(ctx context.Context, tx *gorm.DB, userID uuid.UUID, title, content string) error {
	notice := &types.Notice{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
		UserID:  userID,
		System:  true,
	}
	if err := s.noticeRepo.Create(ctx, tx, notice); err != nil {
		return fmt.Errorf("create system notice: %w", err)
	}
	return nil
}

// dispatchMail sends in the background; the originating request never waits
// on delivery and failures are only logged.
func (s *accountService) dispatchMail(to, subject, text string) {
	if s.mailClient == nil {
		s.log.Warn("Mail client not configured, skipping send", "subject", subject)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		err := s.mailClient.Send(ctx, mailer.SendEmailRequest{
			To:      []mailer.EmailAddress{{Email: to}},
			Subject: subject,
			Text:    text,
		})
		if err != nil {
			s.log.Warn("Mail send failed", "subject", subject, "error", err)
		}
	}()
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/apierr"
	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/repos"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type NoticePage struct {
	Notices []*types.Notice
	Page    int
	Pages   int
}

type NoticeView struct {
	Notice    *types.Notice         `json:"notice"`
	Responses []*types.ResponseView `json:"responses"`
}

type NoticeService interface {
	Create(ctx context.Context, authorID uuid.UUID, title, content string) (*types.Notice, error)
	Update(ctx context.Context, noticeID uuid.UUID, title, content string) (*types.Notice, error)
	List(ctx context.Context, page int) (*NoticePage, error)
	View(ctx context.Context, noticeID uuid.UUID) (*NoticeView, error)
}

type noticeService struct {
	db           *gorm.DB
	log          *logger.Logger
	noticeRepo   repos.NoticeRepo
	responseRepo repos.ResponseRepo
}

func NewNoticeService(
	db *gorm.DB,
	log *logger.Logger,
	noticeRepo repos.NoticeRepo,
	responseRepo repos.ResponseRepo,
) NoticeService {
	serviceLog := log.With("service", "NoticeService")
	return &noticeService{
		db:           db,
		log:          serviceLog,
		noticeRepo:   noticeRepo,
		responseRepo: responseRepo,
	}
}

func (s *noticeService) Create(ctx context.Context, authorID uuid.UUID, title, content string) (*types.Notice, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, apierr.BadRequest(fmt.Errorf("title and content are required"))
	}

	notice := &types.Notice{
		ID:      uuid.New(),
		Title:   title,
		Content: content,
		UserID:  authorID,
		System:  false,
	}
	if err := s.noticeRepo.Create(ctx, nil, notice); err != nil {
		return nil, fmt.Errorf("create notice: %w", err)
	}
	return notice, nil
}

// Update edits a notice in place. System notices record lifecycle events and
// cannot be edited.
func (s *noticeService) Update(ctx context.Context, noticeID uuid.UUID, title, content string) (*types.Notice, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, apierr.BadRequest(fmt.Errorf("title and content are required"))
	}

	notice, err := s.noticeRepo.GetByID(ctx, nil, noticeID)
	if err != nil {
		return nil, fmt.Errorf("look up notice: %w", err)
	}
	if notice == nil {
		return nil, apierr.NotFound(fmt.Errorf("notice not found"))
	}
	if notice.System {
		return nil, apierr.Forbidden(fmt.Errorf("system notices cannot be edited"))
	}

	notice.Title = title
	notice.Content = content
	if err := s.noticeRepo.Update(ctx, nil, notice); err != nil {
		return nil, fmt.Errorf("update notice: %w", err)
	}
	return notice, nil
}

func (s *noticeService) List(ctx context.Context, page int) (*NoticePage, error) {
	page, offset := pageOffset(page, PageSize)
	notices, count, err := s.noticeRepo.List(ctx, nil, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	return &NoticePage{Notices: notices, Page: page, Pages: pageCount(count, PageSize)}, nil
}

func (s *noticeService) View(ctx context.Context, noticeID uuid.UUID) (*NoticeView, error) {
	notice, err := s.noticeRepo.GetByID(ctx, nil, noticeID)
	if err != nil {
		return nil, fmt.Errorf("look up notice: %w", err)
	}
	if notice == nil {
		return nil, apierr.NotFound(fmt.Errorf("notice not found"))
	}

	responses, err := s.responseRepo.ListViewsByNotice(ctx, nil, noticeID)
	if err != nil {
		return nil, fmt.Errorf("list responses: %w", err)
	}
	return &NoticeView{Notice: notice, Responses: responses}, nil
}

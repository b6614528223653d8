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

type ResponseService interface {
	Create(ctx context.Context, authorID, noticeID uuid.UUID, content string) (*types.Response, error)
	Edit(ctx context.Context, actorID, responseID uuid.UUID, content string) (*types.Response, error)
	SoftDelete(ctx context.Context, actorID, responseID uuid.UUID) (*types.Response, error)
	ListForNotice(ctx context.Context, noticeID uuid.UUID) ([]*types.ResponseView, error)
}

type responseService struct {
	db           *gorm.DB
	log          *logger.Logger
	noticeRepo   repos.NoticeRepo
	responseRepo repos.ResponseRepo
}

func NewResponseService(
	db *gorm.DB,
	log *logger.Logger,
	noticeRepo repos.NoticeRepo,
	responseRepo repos.ResponseRepo,
) ResponseService {
	serviceLog := log.With("service", "ResponseService")
	return &responseService{
		db:           db,
		log:          serviceLog,
		noticeRepo:   noticeRepo,
		responseRepo: responseRepo,
	}
}

func (s *responseService) Create(ctx context.Context, authorID, noticeID uuid.UUID, content string) (*types.Response, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apierr.BadRequest(fmt.Errorf("content is required"))
	}

	notice, err := s.noticeRepo.GetByID(ctx, nil, noticeID)
	if err != nil {
		return nil, fmt.Errorf("look up notice: %w", err)
	}
	if notice == nil {
		return nil, apierr.NotFound(fmt.Errorf("notice not found"))
	}

	response := &types.Response{
		ID:       uuid.New(),
		Content:  content,
		UserID:   authorID,
		NoticeID: noticeID,
	}
	if err := s.responseRepo.Create(ctx, nil, response); err != nil {
		return nil, fmt.Errorf("create response: %w", err)
	}
	return response, nil
}

// Edit changes a response's content. Only the author may edit; authority does
// not override ownership.
func (s *responseService) Edit(ctx context.Context, actorID, responseID uuid.UUID, content string) (*types.Response, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apierr.BadRequest(fmt.Errorf("content is required"))
	}

	response, err := s.ownedResponse(ctx, actorID, responseID)
	if err != nil {
		return nil, err
	}

	response.Content = content
	if err := s.responseRepo.Update(ctx, nil, response); err != nil {
		return nil, fmt.Errorf("update response: %w", err)
	}
	return response, nil
}

// SoftDelete marks a response deleted without removing the row. Listings skip
// deleted responses.
func (s *responseService) SoftDelete(ctx context.Context, actorID, responseID uuid.UUID) (*types.Response, error) {
	response, err := s.ownedResponse(ctx, actorID, responseID)
	if err != nil {
		return nil, err
	}
	if response.Deleted {
		return nil, apierr.Conflict(fmt.Errorf("response already deleted"))
	}

	response.Deleted = true
	if err := s.responseRepo.Update(ctx, nil, response); err != nil {
		return nil, fmt.Errorf("delete response: %w", err)
	}
	return response, nil
}

func (s *responseService) ListForNotice(ctx context.Context, noticeID uuid.UUID) ([]*types.ResponseView, error) {
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
	return responses, nil
}

func (s *responseService) ownedResponse(ctx context.Context, actorID, responseID uuid.UUID) (*types.Response, error) {
	response, err := s.responseRepo.GetByID(ctx, nil, responseID)
	if err != nil {
		return nil, fmt.Errorf("look up response: %w", err)
	}
	if response == nil {
		return nil, apierr.NotFound(fmt.Errorf("response not found"))
	}
	if response.UserID != actorID {
		return nil, apierr.Forbidden(fmt.Errorf("you can only modify your own responses"))
	}
	return response, nil
}

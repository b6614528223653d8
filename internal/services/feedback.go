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

type FeedbackPage struct {
	Feedback []*types.Feedback
	Page     int
	Pages    int
}

type FeedbackService interface {
	Submit(ctx context.Context, content string) (*types.Feedback, error)
	List(ctx context.Context, page int) (*FeedbackPage, error)
	Delete(ctx context.Context, feedbackID uuid.UUID) error
}

type feedbackService struct {
	db           *gorm.DB
	log          *logger.Logger
	feedbackRepo repos.FeedbackRepo
}

func NewFeedbackService(db *gorm.DB, log *logger.Logger, feedbackRepo repos.FeedbackRepo) FeedbackService {
	serviceLog := log.With("service", "FeedbackService")
	return &feedbackService{db: db, log: serviceLog, feedbackRepo: feedbackRepo}
}

// Submit records anonymous feedback. No author is stored.
func (s *feedbackService) Submit(ctx context.Context, content string) (*types.Feedback, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apierr.BadRequest(fmt.Errorf("content is required"))
	}

	feedback := &types.Feedback{
		ID:      uuid.New(),
		Content: content,
	}
	if err := s.feedbackRepo.Create(ctx, nil, feedback); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return feedback, nil
}

func (s *feedbackService) List(ctx context.Context, page int) (*FeedbackPage, error) {
	page, offset := pageOffset(page, PageSize)
	items, count, err := s.feedbackRepo.List(ctx, nil, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return &FeedbackPage{Feedback: items, Page: page, Pages: pageCount(count, PageSize)}, nil
}

func (s *feedbackService) Delete(ctx context.Context, feedbackID uuid.UUID) error {
	feedback, err := s.feedbackRepo.GetByID(ctx, nil, feedbackID)
	if err != nil {
		return fmt.Errorf("look up feedback: %w", err)
	}
	if feedback == nil {
		return apierr.NotFound(fmt.Errorf("feedback not found"))
	}
	if err := s.feedbackRepo.Delete(ctx, nil, feedbackID); err != nil {
		return fmt.Errorf("delete feedback: %w", err)
	}
	return nil
}

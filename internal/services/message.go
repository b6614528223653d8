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

type MessagePage struct {
	Messages []*types.Message
	Page     int
	Pages    int
}

type MessageService interface {
	Send(ctx context.Context, authorID, recipientID uuid.UUID, content string) (*types.Message, error)
	ListThread(ctx context.Context, userID, otherID uuid.UUID, page int) (*MessagePage, error)
	SoftDelete(ctx context.Context, actorID, messageID uuid.UUID) (*types.Message, error)
}

type messageService struct {
	db          *gorm.DB
	log         *logger.Logger
	userRepo    repos.UserRepo
	messageRepo repos.MessageRepo
}

func NewMessageService(
	db *gorm.DB,
	log *logger.Logger,
	userRepo repos.UserRepo,
	messageRepo repos.MessageRepo,
) MessageService {
	serviceLog := log.With("service", "MessageService")
	return &messageService{
		db:          db,
		log:         serviceLog,
		userRepo:    userRepo,
		messageRepo: messageRepo,
	}
}

func (s *messageService) Send(ctx context.Context, authorID, recipientID uuid.UUID, content string) (*types.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apierr.BadRequest(fmt.Errorf("content is required"))
	}

	recipient, err := s.userRepo.GetByID(ctx, nil, recipientID)
	if err != nil {
		return nil, fmt.Errorf("look up recipient: %w", err)
	}
	if recipient == nil {
		return nil, apierr.NotFound(fmt.Errorf("recipient not found"))
	}

	message := &types.Message{
		ID:          uuid.New(),
		Content:     content,
		AuthorID:    authorID,
		RecipientID: recipientID,
	}
	if err := s.messageRepo.Create(ctx, nil, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}
	return message, nil
}

// ListThread returns the conversation between two users regardless of
// direction, oldest-first.
func (s *messageService) ListThread(ctx context.Context, userID, otherID uuid.UUID, page int) (*MessagePage, error) {
	page, offset := pageOffset(page, PageSize)
	messages, count, err := s.messageRepo.ListBetween(ctx, nil, userID, otherID, PageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return &MessagePage{Messages: messages, Page: page, Pages: pageCount(count, PageSize)}, nil
}

// SoftDelete blanks the body with a fixed placeholder. The row, both party
// references, and timestamps survive. Deleting twice is a conflict.
func (s *messageService) SoftDelete(ctx context.Context, actorID, messageID uuid.UUID) (*types.Message, error) {
	message, err := s.messageRepo.GetByID(ctx, nil, messageID)
	if err != nil {
		return nil, fmt.Errorf("look up message: %w", err)
	}
	if message == nil {
		return nil, apierr.NotFound(fmt.Errorf("message not found"))
	}
	if message.AuthorID != actorID {
		return nil, apierr.Forbidden(fmt.Errorf("you can only delete your own messages"))
	}
	if message.Deleted {
		return nil, apierr.Conflict(fmt.Errorf("message already deleted"))
	}

	message.Content = types.DeletedMessageContent
	message.Deleted = true
	if err := s.messageRepo.Update(ctx, nil, message); err != nil {
		return nil, fmt.Errorf("delete message: %w", err)
	}
	return message, nil
}

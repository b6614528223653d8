package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type MessageRepo interface {
	Create(ctx context.Context, tx *gorm.DB, message *types.Message) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Message, error)
	Update(ctx context.Context, tx *gorm.DB, message *types.Message) error
	ListBetween(ctx context.Context, tx *gorm.DB, userA, userB uuid.UUID, limit, offset int) ([]*types.Message, int64, error)
}

type messageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
	repoLog := baseLog.With("repo", "MessageRepo")
	return &messageRepo{db: db, log: repoLog}
}

func (mr *messageRepo) Create(ctx context.Context, tx *gorm.DB, message *types.Message) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).Create(message).Error
}

func (mr *messageRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Message, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	var message types.Message
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (mr *messageRepo) Update(ctx context.Context, tx *gorm.DB, message *types.Message) error {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}
	return transaction.WithContext(ctx).Save(message).Error
}

// ListBetween returns the symmetric conversation between two users,
// oldest-first.
func (mr *messageRepo) ListBetween(ctx context.Context, tx *gorm.DB, userA, userB uuid.UUID, limit, offset int) ([]*types.Message, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = mr.db
	}

	where := "(author_id = ? AND recipient_id = ?) OR (author_id = ? AND recipient_id = ?)"

	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Message{}).
		Where(where, userA, userB, userB, userA).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Message
	query := transaction.WithContext(ctx).
		Where(where, userA, userB, userB, userA).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}
	if err := query.Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, count, nil
}

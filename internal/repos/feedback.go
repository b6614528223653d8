package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type FeedbackRepo interface {
	Create(ctx context.Context, tx *gorm.DB, feedback *types.Feedback) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Feedback, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Feedback, int64, error)
}

type feedbackRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFeedbackRepo(db *gorm.DB, baseLog *logger.Logger) FeedbackRepo {
	repoLog := baseLog.With("repo", "FeedbackRepo")
	return &feedbackRepo{db: db, log: repoLog}
}

func (fr *feedbackRepo) Create(ctx context.Context, tx *gorm.DB, feedback *types.Feedback) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return transaction.WithContext(ctx).Create(feedback).Error
}

func (fr *feedbackRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Feedback, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	var feedback types.Feedback
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (fr *feedbackRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Feedback{}).Error
}

// List returns feedback newest-first.
func (fr *feedbackRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Feedback, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = fr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Feedback{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Feedback
	query := transaction.WithContext(ctx).Order("created_at DESC")
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

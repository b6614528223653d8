package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type NoticeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notice *types.Notice) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notice, error)
	Update(ctx context.Context, tx *gorm.DB, notice *types.Notice) error
	List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Notice, int64, error)
}

type noticeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNoticeRepo(db *gorm.DB, baseLog *logger.Logger) NoticeRepo {
	repoLog := baseLog.With("repo", "NoticeRepo")
	return &noticeRepo{db: db, log: repoLog}
}

func (nr *noticeRepo) Create(ctx context.Context, tx *gorm.DB, notice *types.Notice) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	return transaction.WithContext(ctx).Create(notice).Error
}

func (nr *noticeRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Notice, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	var notice types.Notice
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&notice).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notice, nil
}

func (nr *noticeRepo) Update(ctx context.Context, tx *gorm.DB, notice *types.Notice) error {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	return transaction.WithContext(ctx).Save(notice).Error
}

// List returns notices newest-first by last update.
func (nr *noticeRepo) List(ctx context.Context, tx *gorm.DB, limit, offset int) ([]*types.Notice, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).Model(&types.Notice{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Notice
	query := transaction.WithContext(ctx).Order("updated_at DESC")
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

package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type ResponseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, response *types.Response) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Response, error)
	Update(ctx context.Context, tx *gorm.DB, response *types.Response) error
	ListViewsByNotice(ctx context.Context, tx *gorm.DB, noticeID uuid.UUID) ([]*types.ResponseView, error)
}

type responseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewResponseRepo(db *gorm.DB, baseLog *logger.Logger) ResponseRepo {
	repoLog := baseLog.With("repo", "ResponseRepo")
	return &responseRepo{db: db, log: repoLog}
}

func (rr *responseRepo) Create(ctx context.Context, tx *gorm.DB, response *types.Response) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Create(response).Error
}

func (rr *responseRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Response, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var response types.Response
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&response).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

func (rr *responseRepo) Update(ctx context.Context, tx *gorm.DB, response *types.Response) error {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	return transaction.WithContext(ctx).Save(response).Error
}

// ListViewsByNotice returns the live responses of a notice oldest-first, each
// joined with only the author's full name.
func (rr *responseRepo) ListViewsByNotice(ctx context.Context, tx *gorm.DB, noticeID uuid.UUID) ([]*types.ResponseView, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	var results []*types.ResponseView
	err := transaction.WithContext(ctx).
		Model(&types.Response{}).
		Select(`response.id, response.content, response.notice_id, response.user_id,
			response.created_at, response.updated_at, "user".full_name AS author_full_name`).
		Joins(`JOIN "user" ON "user".id = response.user_id`).
		Where("response.notice_id = ? AND response.deleted = ?", noticeID, false).
		Order("response.created_at ASC").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

type ActionTokenRepo interface {
	Create(ctx context.Context, tx *gorm.DB, token *types.ActionToken) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ActionToken, error)
	Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	DeleteByUserAndPurpose(ctx context.Context, tx *gorm.DB, userID uuid.UUID, purpose string) error
}

type actionTokenRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewActionTokenRepo(db *gorm.DB, baseLog *logger.Logger) ActionTokenRepo {
	repoLog := baseLog.With("repo", "ActionTokenRepo")
	return &actionTokenRepo{db: db, log: repoLog}
}

func (tr *actionTokenRepo) Create(ctx context.Context, tx *gorm.DB, token *types.ActionToken) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Create(token).Error
}

func (tr *actionTokenRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.ActionToken, error) {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	var token types.ActionToken
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (tr *actionTokenRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.ActionToken{}).Error
}

func (tr *actionTokenRepo) DeleteByUserAndPurpose(ctx context.Context, tx *gorm.DB, userID uuid.UUID, purpose string) error {
	transaction := tx
	if transaction == nil {
		transaction = tr.db
	}
	return transaction.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, purpose).
		Delete(&types.ActionToken{}).Error
}

package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/connectus-hq/connectus-backend/internal/platform/logger"
	"github.com/connectus-hq/connectus-backend/internal/types"
)

// UserFilter narrows directory listings. Authority and Leave are optional;
// Search is a case-insensitive substring match over full name and email.
type UserFilter struct {
	Authority *int
	Leave     *bool
	Search    string
	Limit     int
	Offset    int
}

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, user *types.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
	Update(ctx context.Context, tx *gorm.DB, user *types.User) error
	List(ctx context.Context, tx *gorm.DB, filter UserFilter) ([]*types.User, int64, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).Create(user).Error
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var user types.User
	err := transaction.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	var user types.User
	err := transaction.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepo) Update(ctx context.Context, tx *gorm.DB, user *types.User) error {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	return transaction.WithContext(ctx).Save(user).Error
}

func (ur *userRepo) List(ctx context.Context, tx *gorm.DB, filter UserFilter) ([]*types.User, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}

	query := transaction.WithContext(ctx).Model(&types.User{})
	if filter.Authority != nil {
		query = query.Where("authority = ?", *filter.Authority)
	}
	if filter.Leave != nil {
		query = query.Where("leave = ?", *filter.Leave)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		// LOWER on both sides keeps the match case-insensitive across
		// postgres and the sqlite test database.
		query = query.Where("LOWER(full_name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", pattern, pattern)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.User
	listQuery := query.Order("created_at ASC")
	if filter.Limit > 0 {
		listQuery = listQuery.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		listQuery = listQuery.Offset(filter.Offset)
	}
	if err := listQuery.Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, count, nil
}

package repos

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// UserFilter narrows a user list query. Keyword matches name or lastname.
type UserFilter struct {
	Keyword string
	Skip    int
	Limit   int
}

type UserRepo interface {
	List(dbc dbctx.Context, filter UserFilter) ([]*domain.User, int64, error)
	GetByID(dbc dbctx.Context, id string) (*domain.User, error)
	Create(dbc dbctx.Context, user *domain.User) error
	Update(dbc dbctx.Context, user *domain.User) error
	Delete(dbc dbctx.Context, user *domain.User) error
	Reload(dbc dbctx.Context, user *domain.User) error
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	return &userRepo{db: db, log: baseLog.With("repo", "UserRepo")}
}

func (r *userRepo) session(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *userRepo) List(dbc dbctx.Context, filter UserFilter) ([]*domain.User, int64, error) {
	q := r.session(dbc).Model(&domain.User{})

	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where(r.db.Where("name LIKE ?", kw).Or("lastname LIKE ?", kw))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Skip > 0 {
		q = q.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var results []*domain.User
	if err := q.
		Order("name, lastname").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *userRepo) GetByID(dbc dbctx.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.session(dbc).
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Create(dbc dbctx.Context, user *domain.User) error {
	return r.session(dbc).Create(user).Error
}

func (r *userRepo) Update(dbc dbctx.Context, user *domain.User) error {
	return r.session(dbc).Save(user).Error
}

func (r *userRepo) Delete(dbc dbctx.Context, user *domain.User) error {
	return r.session(dbc).Delete(user).Error
}

func (r *userRepo) Reload(dbc dbctx.Context, user *domain.User) error {
	return r.session(dbc).
		Where("id = ?", user.ID).
		First(user).Error
}

package repos

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// CustomerFilter narrows a customer list query. Codes match exactly,
// TokuName is a substring match.
type CustomerFilter struct {
	CorporateCd string
	TokuCd      string
	TokuName    string
	Skip        int
	Limit       int
}

type CustomerRepo interface {
	List(dbc dbctx.Context, filter CustomerFilter) ([]*domain.Customer, int64, error)
	GetByKey(dbc dbctx.Context, key domain.CustomerKey) (*domain.Customer, error)
	Create(dbc dbctx.Context, customer *domain.Customer) error
	Update(dbc dbctx.Context, customer *domain.Customer) error
	Delete(dbc dbctx.Context, customer *domain.Customer) error
	Reload(dbc dbctx.Context, customer *domain.Customer) error
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) session(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *customerRepo) List(dbc dbctx.Context, filter CustomerFilter) ([]*domain.Customer, int64, error) {
	q := r.session(dbc).Model(&domain.Customer{})

	if filter.CorporateCd != "" {
		q = q.Where("corporate_cd = ?", filter.CorporateCd)
	}
	if filter.TokuCd != "" {
		q = q.Where("toku_cd = ?", filter.TokuCd)
	}
	if filter.TokuName != "" {
		q = q.Where("toku_name LIKE ?", "%"+filter.TokuName+"%")
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

	var results []*domain.Customer
	if err := q.
		Order("corporate_cd, toku_cd, ty_date_from").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *customerRepo) GetByKey(dbc dbctx.Context, key domain.CustomerKey) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.session(dbc).
		Where("corporate_cd = ? AND toku_cd = ? AND ty_date_from = ?",
			key.CorporateCd, key.TokuCd, key.TyDateFrom).
		First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepo) Create(dbc dbctx.Context, customer *domain.Customer) error {
	return r.session(dbc).Create(customer).Error
}

func (r *customerRepo) Update(dbc dbctx.Context, customer *domain.Customer) error {
	return r.session(dbc).Save(customer).Error
}

func (r *customerRepo) Delete(dbc dbctx.Context, customer *domain.Customer) error {
	return r.session(dbc).Delete(customer).Error
}

func (r *customerRepo) Reload(dbc dbctx.Context, customer *domain.Customer) error {
	return r.session(dbc).
		Where("corporate_cd = ? AND toku_cd = ? AND ty_date_from = ?",
			customer.CorporateCd, customer.TokuCd, customer.TyDateFrom).
		First(customer).Error
}

package repos

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// FactoryFilter narrows a factory list query. Zero values mean "no filter";
// Keyword matches any textual column.
type FactoryFilter struct {
	CompanyCode         string
	PreviousFactoryCode string
	ProductFactoryCode  string
	Keyword             string
	Skip                int
	Limit               int
}

type FactoryRepo interface {
	List(dbc dbctx.Context, filter FactoryFilter) ([]*domain.Factory, int64, error)
	GetByKey(dbc dbctx.Context, key domain.FactoryKey) (*domain.Factory, error)
	GetTimeRelated(dbc dbctx.Context, previousFactoryCode, productFactoryCode, companyCode string) ([]domain.Factory, error)
	Create(dbc dbctx.Context, factory *domain.Factory) error
	CreateBatch(dbc dbctx.Context, factories []*domain.Factory) error
	Update(dbc dbctx.Context, factory *domain.Factory) error
	Delete(dbc dbctx.Context, factory *domain.Factory) error
	Reload(dbc dbctx.Context, factory *domain.Factory) error
}

type factoryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFactoryRepo(db *gorm.DB, baseLog *logger.Logger) FactoryRepo {
	return &factoryRepo{db: db, log: baseLog.With("repo", "FactoryRepo")}
}

func (r *factoryRepo) session(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(dbc.Ctx)
}

func (r *factoryRepo) List(dbc dbctx.Context, filter FactoryFilter) ([]*domain.Factory, int64, error) {
	q := r.session(dbc).Model(&domain.Factory{})

	if filter.CompanyCode != "" {
		q = q.Where("company_code = ?", filter.CompanyCode)
	}
	if filter.PreviousFactoryCode != "" {
		q = q.Where("previous_factory_code = ?", filter.PreviousFactoryCode)
	}
	if filter.ProductFactoryCode != "" {
		q = q.Where("product_factory_code = ?", filter.ProductFactoryCode)
	}
	if filter.Keyword != "" {
		kw := "%" + filter.Keyword + "%"
		q = q.Where(r.db.
			Where("previous_factory_code LIKE ?", kw).
			Or("company_code LIKE ?", kw).
			Or("product_factory_code LIKE ?", kw).
			Or("previous_factory_name LIKE ?", kw).
			Or("product_factory_name LIKE ?", kw).
			Or("material_department_code LIKE ?", kw).
			Or("environmental_information LIKE ?", kw).
			Or("authentication_flag LIKE ?", kw).
			Or("group_corporate_code LIKE ?", kw).
			Or("integration_pattern LIKE ?", kw).
			Or("hulftid LIKE ?", kw))
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

	var results []*domain.Factory
	if err := q.
		Order("previous_factory_code, company_code, product_factory_code, start_operation_date").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *factoryRepo) GetByKey(dbc dbctx.Context, key domain.FactoryKey) (*domain.Factory, error) {
	var factory domain.Factory
	err := r.session(dbc).
		Where("previous_factory_code = ? AND company_code = ? AND product_factory_code = ? AND start_operation_date = ? AND end_operation_date = ?",
			key.PreviousFactoryCode, key.CompanyCode, key.ProductFactoryCode, key.StartOperationDate, key.EndOperationDate).
		First(&factory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &factory, nil
}

func (r *factoryRepo) GetTimeRelated(dbc dbctx.Context, previousFactoryCode, productFactoryCode, companyCode string) ([]domain.Factory, error) {
	var results []domain.Factory
	if err := r.session(dbc).
		Where("previous_factory_code = ? AND product_factory_code = ? AND company_code = ?",
			previousFactoryCode, productFactoryCode, companyCode).
		Order("start_operation_date").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *factoryRepo) Create(dbc dbctx.Context, factory *domain.Factory) error {
	return r.session(dbc).Create(factory).Error
}

func (r *factoryRepo) CreateBatch(dbc dbctx.Context, factories []*domain.Factory) error {
	if len(factories) == 0 {
		return nil
	}
	return r.session(dbc).Create(&factories).Error
}

func (r *factoryRepo) Update(dbc dbctx.Context, factory *domain.Factory) error {
	return r.session(dbc).Save(factory).Error
}

func (r *factoryRepo) Delete(dbc dbctx.Context, factory *domain.Factory) error {
	return r.session(dbc).Delete(factory).Error
}

func (r *factoryRepo) Reload(dbc dbctx.Context, factory *domain.Factory) error {
	return r.session(dbc).
		Where("previous_factory_code = ? AND company_code = ? AND product_factory_code = ? AND start_operation_date = ? AND end_operation_date = ?",
			factory.PreviousFactoryCode, factory.CompanyCode, factory.ProductFactoryCode, factory.StartOperationDate, factory.EndOperationDate).
		First(factory).Error
}

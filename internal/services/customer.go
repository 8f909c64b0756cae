package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/batch"
	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/apierr"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
	"github.com/tanaoroshi/masterdata-backend/internal/repos"
)

type CustomerService interface {
	List(ctx context.Context, filter repos.CustomerFilter) ([]*domain.Customer, int64, error)
	Get(ctx context.Context, key domain.CustomerKey) (*domain.Customer, error)
	Create(ctx context.Context, rec domain.CustomerRecord) (*domain.Customer, error)
	Update(ctx context.Context, key domain.CustomerKey, upd domain.CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, key domain.CustomerKey) (*domain.Customer, error)
	ExecuteBatch(ctx context.Context, op batch.Operation, records []domain.CustomerRecord) (*batch.Result[domain.Customer], error)
}

type customerService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     repos.CustomerRepo
	executor *batch.Executor[domain.CustomerRecord, domain.Customer]
}

func NewCustomerService(db *gorm.DB, baseLog *logger.Logger, repo repos.CustomerRepo) CustomerService {
	executor := batch.NewExecutor[domain.CustomerRecord, domain.Customer](db, baseLog, repos.NewCustomerBatchStore(repo),
		"A customer with the specified primary key does not exist")
	return &customerService{
		db:       db,
		log:      baseLog.With("service", "CustomerService"),
		repo:     repo,
		executor: executor,
	}
}

func (s *customerService) List(ctx context.Context, filter repos.CustomerFilter) ([]*domain.Customer, int64, error) {
	dbc := dbctx.Context{Ctx: ctx}
	items, total, err := s.repo.List(dbc, filter)
	if err != nil {
		s.log.Error("Failed to list customers", "error", err)
		return nil, 0, apierr.Internal("Failed to list customers", err)
	}
	return items, total, nil
}

func (s *customerService) Get(ctx context.Context, key domain.CustomerKey) (*domain.Customer, error) {
	dbc := dbctx.Context{Ctx: ctx}
	customer, err := s.repo.GetByKey(dbc, key)
	if err != nil {
		s.log.Error("Failed to fetch customer", "error", err)
		return nil, apierr.Internal("Failed to fetch customer", err)
	}
	if customer == nil {
		return nil, apierr.NotFound("Customer not found", nil)
	}
	return customer, nil
}

func (s *customerService) Create(ctx context.Context, rec domain.CustomerRecord) (*domain.Customer, error) {
	dbc := dbctx.Context{Ctx: ctx}

	existing, err := s.repo.GetByKey(dbc, rec.Key())
	if err != nil {
		s.log.Error("Failed to check existing customer", "error", err)
		return nil, apierr.Internal("Failed to create customer", err)
	}
	if existing != nil {
		s.log.Warn("Customer already exists", "key", rec.Key())
		return nil, apierr.Conflict("Customer already exists", nil)
	}

	customer := rec.NewCustomer()
	if err := s.repo.Create(dbc, customer); err != nil {
		s.log.Error("Failed to create customer", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid customer data", err)
		}
		return nil, apierr.Internal("Failed to create customer", err)
	}
	s.log.Info("Customer created", "key", customer.Key())
	return customer, nil
}

func (s *customerService) Update(ctx context.Context, key domain.CustomerKey, upd domain.CustomerUpdate) (*domain.Customer, error) {
	dbc := dbctx.Context{Ctx: ctx}

	customer, err := s.repo.GetByKey(dbc, key)
	if err != nil {
		s.log.Error("Failed to fetch customer for update", "error", err)
		return nil, apierr.Internal("Failed to update customer", err)
	}
	if customer == nil {
		s.log.Warn("Customer not found for update", "key", key)
		return nil, apierr.NotFound("Customer not found", nil)
	}

	upd.ApplyTo(customer)
	if err := s.repo.Update(dbc, customer); err != nil {
		s.log.Error("Failed to update customer", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid customer data", err)
		}
		return nil, apierr.Internal("Failed to update customer", err)
	}
	s.log.Info("Customer updated", "key", customer.Key())
	return customer, nil
}

func (s *customerService) Delete(ctx context.Context, key domain.CustomerKey) (*domain.Customer, error) {
	dbc := dbctx.Context{Ctx: ctx}

	customer, err := s.repo.GetByKey(dbc, key)
	if err != nil {
		s.log.Error("Failed to fetch customer for delete", "error", err)
		return nil, apierr.Internal("Failed to delete customer", err)
	}
	if customer == nil {
		s.log.Warn("Customer not found for delete", "key", key)
		return nil, apierr.NotFound("Customer not found", nil)
	}

	if err := s.repo.Delete(dbc, customer); err != nil {
		s.log.Error("Failed to delete customer", "error", err)
		return nil, apierr.Internal("Failed to delete customer", err)
	}
	s.log.Info("Customer deleted", "key", key)
	return customer, nil
}

func (s *customerService) ExecuteBatch(ctx context.Context, op batch.Operation, records []domain.CustomerRecord) (*batch.Result[domain.Customer], error) {
	result, err := s.executor.Execute(ctx, op, records)
	if err != nil {
		s.log.Error("Customer batch failed", "operation", op.String(), "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid customer data", err)
		}
		return nil, apierr.Internal("Customer batch operation failed", err)
	}
	return result, nil
}

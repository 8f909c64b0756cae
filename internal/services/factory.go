package services

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/batch"
	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/integrity"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/apierr"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
	"github.com/tanaoroshi/masterdata-backend/internal/repos"
)

type FactoryService interface {
	List(ctx context.Context, filter repos.FactoryFilter) ([]*domain.Factory, int64, error)
	Get(ctx context.Context, key domain.FactoryKey) (*domain.Factory, error)
	Create(ctx context.Context, rec domain.FactoryRecord) (*domain.Factory, error)
	Update(ctx context.Context, rec domain.FactoryRecord) (*domain.Factory, error)
	Delete(ctx context.Context, key domain.FactoryKey) (*domain.Factory, error)
	CreateBatch(ctx context.Context, records []domain.FactoryRecord) ([]*domain.Factory, error)
	ExecuteBatch(ctx context.Context, op batch.Operation, records []domain.FactoryRecord) (*batch.Result[domain.Factory], error)
	CheckIntegrity(ctx context.Context, rec domain.FactoryRecord, payload map[string]json.RawMessage, opts integrity.CheckOptions) (*integrity.Result, error)
}

type factoryService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     repos.FactoryRepo
	executor *batch.Executor[domain.FactoryRecord, domain.Factory]
	checker  *integrity.Checker
}

func NewFactoryService(db *gorm.DB, baseLog *logger.Logger, repo repos.FactoryRepo) FactoryService {
	executor := batch.NewExecutor[domain.FactoryRecord, domain.Factory](db, baseLog, repos.NewFactoryBatchStore(repo),
		"A factory with the specified primary key does not exist")
	return &factoryService{
		db:       db,
		log:      baseLog.With("service", "FactoryService"),
		repo:     repo,
		executor: executor,
		checker:  integrity.NewChecker(repo, baseLog),
	}
}

func (s *factoryService) List(ctx context.Context, filter repos.FactoryFilter) ([]*domain.Factory, int64, error) {
	dbc := dbctx.Context{Ctx: ctx}
	items, total, err := s.repo.List(dbc, filter)
	if err != nil {
		s.log.Error("Failed to list factories", "error", err)
		return nil, 0, apierr.Internal("Failed to list factories", err)
	}
	return items, total, nil
}

func (s *factoryService) Get(ctx context.Context, key domain.FactoryKey) (*domain.Factory, error) {
	dbc := dbctx.Context{Ctx: ctx}
	factory, err := s.repo.GetByKey(dbc, key)
	if err != nil {
		s.log.Error("Failed to fetch factory", "error", err)
		return nil, apierr.Internal("Failed to fetch factory", err)
	}
	if factory == nil {
		return nil, apierr.NotFound("Factory not found", nil)
	}
	return factory, nil
}

func (s *factoryService) Create(ctx context.Context, rec domain.FactoryRecord) (*domain.Factory, error) {
	dbc := dbctx.Context{Ctx: ctx}

	existing, err := s.repo.GetByKey(dbc, rec.Key())
	if err != nil {
		s.log.Error("Failed to check existing factory", "error", err)
		return nil, apierr.Internal("Failed to create factory", err)
	}
	if existing != nil {
		s.log.Warn("Factory already exists", "key", rec.Key())
		return nil, apierr.Conflict("Factory already exists", nil)
	}

	factory := rec.NewFactory()
	if err := s.repo.Create(dbc, factory); err != nil {
		s.log.Error("Failed to create factory", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid factory data", err)
		}
		return nil, apierr.Internal("Failed to create factory", err)
	}
	s.log.Info("Factory created", "key", factory.Key())
	return factory, nil
}

func (s *factoryService) Update(ctx context.Context, rec domain.FactoryRecord) (*domain.Factory, error) {
	dbc := dbctx.Context{Ctx: ctx}

	factory, err := s.repo.GetByKey(dbc, rec.Key())
	if err != nil {
		s.log.Error("Failed to fetch factory for update", "error", err)
		return nil, apierr.Internal("Failed to update factory", err)
	}
	if factory == nil {
		s.log.Warn("Factory not found for update", "key", rec.Key())
		return nil, apierr.NotFound("Factory not found", nil)
	}

	rec.ApplyTo(factory)
	if err := s.repo.Update(dbc, factory); err != nil {
		s.log.Error("Failed to update factory", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid factory data", err)
		}
		return nil, apierr.Internal("Failed to update factory", err)
	}
	s.log.Info("Factory updated", "key", factory.Key())
	return factory, nil
}

func (s *factoryService) Delete(ctx context.Context, key domain.FactoryKey) (*domain.Factory, error) {
	dbc := dbctx.Context{Ctx: ctx}

	factory, err := s.repo.GetByKey(dbc, key)
	if err != nil {
		s.log.Error("Failed to fetch factory for delete", "error", err)
		return nil, apierr.Internal("Failed to delete factory", err)
	}
	if factory == nil {
		s.log.Warn("Factory not found for delete", "key", key)
		return nil, apierr.NotFound("Factory not found", nil)
	}

	if err := s.repo.Delete(dbc, factory); err != nil {
		s.log.Error("Failed to delete factory", "error", err)
		return nil, apierr.Internal("Failed to delete factory", err)
	}
	s.log.Info("Factory deleted", "key", key)
	return factory, nil
}

// CreateBatch inserts all records in one store call, without per-record
// isolation. The first failing row fails the whole call.
func (s *factoryService) CreateBatch(ctx context.Context, records []domain.FactoryRecord) ([]*domain.Factory, error) {
	factories := make([]*domain.Factory, 0, len(records))
	for _, rec := range records {
		factories = append(factories, rec.NewFactory())
	}

	dbc := dbctx.Context{Ctx: ctx}
	if err := s.repo.CreateBatch(dbc, factories); err != nil {
		s.log.Error("Factory batch insert failed", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid factory data", err)
		}
		return nil, apierr.Internal("Factory batch insert failed", err)
	}
	s.log.Info("Factory batch insert committed", "records", len(factories))
	return factories, nil
}

func (s *factoryService) ExecuteBatch(ctx context.Context, op batch.Operation, records []domain.FactoryRecord) (*batch.Result[domain.Factory], error) {
	result, err := s.executor.Execute(ctx, op, records)
	if err != nil {
		s.log.Error("Factory batch failed", "operation", op.String(), "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid factory data", err)
		}
		return nil, apierr.Internal("Factory batch operation failed", err)
	}
	return result, nil
}

func (s *factoryService) CheckIntegrity(ctx context.Context, rec domain.FactoryRecord, payload map[string]json.RawMessage, opts integrity.CheckOptions) (*integrity.Result, error) {
	dbc := dbctx.Context{Ctx: ctx}
	result, err := s.checker.Check(dbc, rec, payload, opts)
	if err != nil {
		s.log.Error("Integrity check failed", "error", err)
		return nil, apierr.Internal("Integrity check failed", err)
	}
	return result, nil
}

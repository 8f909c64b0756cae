package repos

import (
	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
)

// Batch store adapters bind each repo to the batch executor's Store surface:
// they resolve targets by natural key, build new rows from mutation records
// and merge partial updates.

type CustomerBatchStore struct {
	repo CustomerRepo
}

func NewCustomerBatchStore(repo CustomerRepo) *CustomerBatchStore {
	return &CustomerBatchStore{repo: repo}
}

func (s *CustomerBatchStore) FindByKey(dbc dbctx.Context, rec domain.CustomerRecord) (*domain.Customer, error) {
	return s.repo.GetByKey(dbc, rec.Key())
}

func (s *CustomerBatchStore) Insert(dbc dbctx.Context, rec domain.CustomerRecord) (*domain.Customer, error) {
	customer := rec.NewCustomer()
	if err := s.repo.Create(dbc, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerBatchStore) Update(dbc dbctx.Context, target *domain.Customer, rec domain.CustomerRecord) (*domain.Customer, error) {
	rec.ApplyTo(target)
	if err := s.repo.Update(dbc, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *CustomerBatchStore) Delete(dbc dbctx.Context, target *domain.Customer) error {
	return s.repo.Delete(dbc, target)
}

func (s *CustomerBatchStore) Reload(dbc dbctx.Context, target *domain.Customer) error {
	return s.repo.Reload(dbc, target)
}

type FactoryBatchStore struct {
	repo FactoryRepo
}

func NewFactoryBatchStore(repo FactoryRepo) *FactoryBatchStore {
	return &FactoryBatchStore{repo: repo}
}

func (s *FactoryBatchStore) FindByKey(dbc dbctx.Context, rec domain.FactoryRecord) (*domain.Factory, error) {
	return s.repo.GetByKey(dbc, rec.Key())
}

func (s *FactoryBatchStore) Insert(dbc dbctx.Context, rec domain.FactoryRecord) (*domain.Factory, error) {
	factory := rec.NewFactory()
	if err := s.repo.Create(dbc, factory); err != nil {
		return nil, err
	}
	return factory, nil
}

func (s *FactoryBatchStore) Update(dbc dbctx.Context, target *domain.Factory, rec domain.FactoryRecord) (*domain.Factory, error) {
	rec.ApplyTo(target)
	if err := s.repo.Update(dbc, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *FactoryBatchStore) Delete(dbc dbctx.Context, target *domain.Factory) error {
	return s.repo.Delete(dbc, target)
}

func (s *FactoryBatchStore) Reload(dbc dbctx.Context, target *domain.Factory) error {
	return s.repo.Reload(dbc, target)
}

type UserBatchStore struct {
	repo UserRepo
}

func NewUserBatchStore(repo UserRepo) *UserBatchStore {
	return &UserBatchStore{repo: repo}
}

// FindByKey treats a record without an id as unresolvable, which the
// executor reports as not found.
func (s *UserBatchStore) FindByKey(dbc dbctx.Context, rec domain.UserRecord) (*domain.User, error) {
	if rec.ID == nil || *rec.ID == "" {
		return nil, nil
	}
	return s.repo.GetByID(dbc, *rec.ID)
}

func (s *UserBatchStore) Insert(dbc dbctx.Context, rec domain.UserRecord) (*domain.User, error) {
	user := rec.NewUser()
	if err := s.repo.Create(dbc, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserBatchStore) Update(dbc dbctx.Context, target *domain.User, rec domain.UserRecord) (*domain.User, error) {
	rec.ApplyTo(target)
	if err := s.repo.Update(dbc, target); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *UserBatchStore) Delete(dbc dbctx.Context, target *domain.User) error {
	return s.repo.Delete(dbc, target)
}

func (s *UserBatchStore) Reload(dbc dbctx.Context, target *domain.User) error {
	return s.repo.Reload(dbc, target)
}

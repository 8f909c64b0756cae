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

type UserService interface {
	List(ctx context.Context, filter repos.UserFilter) ([]*domain.User, int64, error)
	Create(ctx context.Context, rec domain.UserRecord) (*domain.User, error)
	Update(ctx context.Context, rec domain.UserRecord) (*domain.User, error)
	ExecuteBatch(ctx context.Context, op batch.Operation, records []domain.UserRecord) (*batch.Result[domain.User], error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	repo     repos.UserRepo
	executor *batch.Executor[domain.UserRecord, domain.User]
}

func NewUserService(db *gorm.DB, baseLog *logger.Logger, repo repos.UserRepo) UserService {
	executor := batch.NewExecutor[domain.UserRecord, domain.User](db, baseLog, repos.NewUserBatchStore(repo),
		"A user with the specified id does not exist")
	return &userService{
		db:       db,
		log:      baseLog.With("service", "UserService"),
		repo:     repo,
		executor: executor,
	}
}

func (s *userService) List(ctx context.Context, filter repos.UserFilter) ([]*domain.User, int64, error) {
	dbc := dbctx.Context{Ctx: ctx}
	items, total, err := s.repo.List(dbc, filter)
	if err != nil {
		s.log.Error("Failed to list users", "error", err)
		return nil, 0, apierr.Internal("Failed to list users", err)
	}
	return items, total, nil
}

func (s *userService) Create(ctx context.Context, rec domain.UserRecord) (*domain.User, error) {
	dbc := dbctx.Context{Ctx: ctx}

	if rec.ID != nil && *rec.ID != "" {
		existing, err := s.repo.GetByID(dbc, *rec.ID)
		if err != nil {
			s.log.Error("Failed to check existing user", "error", err)
			return nil, apierr.Internal("Failed to create user", err)
		}
		if existing != nil {
			s.log.Warn("User already exists", "id", *rec.ID)
			return nil, apierr.Conflict("User already exists", nil)
		}
	}

	user := rec.NewUser()
	if err := s.repo.Create(dbc, user); err != nil {
		s.log.Error("Failed to create user", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid user data", err)
		}
		return nil, apierr.Internal("Failed to create user", err)
	}
	s.log.Info("User created", "id", user.ID)
	return user, nil
}

func (s *userService) Update(ctx context.Context, rec domain.UserRecord) (*domain.User, error) {
	dbc := dbctx.Context{Ctx: ctx}

	if rec.ID == nil || *rec.ID == "" {
		return nil, apierr.NotFound("User not found", nil)
	}
	user, err := s.repo.GetByID(dbc, *rec.ID)
	if err != nil {
		s.log.Error("Failed to fetch user for update", "error", err)
		return nil, apierr.Internal("Failed to update user", err)
	}
	if user == nil {
		s.log.Warn("User not found for update", "id", *rec.ID)
		return nil, apierr.NotFound("User not found", nil)
	}

	rec.ApplyTo(user)
	if err := s.repo.Update(dbc, user); err != nil {
		s.log.Error("Failed to update user", "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid user data", err)
		}
		return nil, apierr.Internal("Failed to update user", err)
	}
	s.log.Info("User updated", "id", user.ID)
	return user, nil
}

func (s *userService) ExecuteBatch(ctx context.Context, op batch.Operation, records []domain.UserRecord) (*batch.Result[domain.User], error) {
	result, err := s.executor.Execute(ctx, op, records)
	if err != nil {
		s.log.Error("User batch failed", "operation", op.String(), "error", err)
		if batch.IsClientError(err) {
			return nil, apierr.BadRequest("Invalid user data", err)
		}
		return nil, apierr.Internal("User batch operation failed", err)
	}
	return result, nil
}

package batch

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// Operation selects the mutation applied to every record of a batch.
type Operation int

const (
	OpCreate Operation = iota
	OpUpdate
	OpDelete
)

func (op Operation) String() string {
	switch op {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Store is the per-entity persistence surface the executor drives. R is the
// caller-supplied mutation record, E the persisted entity.
//
// FindByKey returns (nil, nil) when the record's key does not resolve to a
// row. Reload re-reads a committed entity so returned data reflects
// store-computed defaults.
type Store[R any, E any] interface {
	FindByKey(dbc dbctx.Context, rec R) (*E, error)
	Insert(dbc dbctx.Context, rec R) (*E, error)
	Update(dbc dbctx.Context, target *E, rec R) (*E, error)
	Delete(dbc dbctx.Context, target *E) error
	Reload(dbc dbctx.Context, target *E) error
}

// RecordError describes one failed mutation record. It is returned as data,
// never raised, and carries the original input for caller correlation.
type RecordError struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Detail  string `json:"detail"`
	Code    string `json:"code"`
	Record  any    `json:"record"`
}

// Result aggregates the outcome of one batch call. Every input record lands
// in exactly one of the two lists.
type Result[E any] struct {
	OKRecords    []*E          `json:"ok_records"`
	ErrorRecords []RecordError `json:"error_records"`
}

func (r *Result[E]) HasErrors() bool { return len(r.ErrorRecords) > 0 }

// Executor runs one mutation per input record inside its own savepoint and
// commits the enclosing transaction only when every record succeeded.
type Executor[R any, E any] struct {
	db             *gorm.DB
	log            *logger.Logger
	store          Store[R, E]
	notFoundDetail string
}

const defaultNotFoundDetail = "A record with the specified primary key does not exist"

// NewExecutor wires an executor for one entity. notFoundDetail customizes the
// detail text of not-found outcomes; empty selects the generic phrasing.
func NewExecutor[R any, E any](db *gorm.DB, baseLog *logger.Logger, store Store[R, E], notFoundDetail string) *Executor[R, E] {
	if notFoundDetail == "" {
		notFoundDetail = defaultNotFoundDetail
	}
	return &Executor[R, E]{
		db:             db,
		log:            baseLog.With("component", "BatchExecutor"),
		store:          store,
		notFoundDetail: notFoundDetail,
	}
}

// Execute processes records in input order. Update and Delete resolve the
// target by key first and record a NotFoundError outcome when it is absent;
// Create inserts without an existence pre-check and leaves duplicate
// detection to the store's uniqueness constraint. Any error outcome causes a
// whole-batch rollback, so no effect of this call survives; otherwise the
// batch is committed once and created/updated rows are re-read from the
// store.
//
// Errors returned from Execute itself (as opposed to RecordError outcomes)
// happened outside the per-record boundary and abort the whole call.
func (e *Executor[R, E]) Execute(ctx context.Context, op Operation, records []R) (*Result[E], error) {
	result := &Result[E]{OKRecords: []*E{}, ErrorRecords: []RecordError{}}
	if len(records) == 0 {
		return result, nil
	}

	tx := e.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	dbc := dbctx.Context{Ctx: ctx, Tx: tx}

	for i, rec := range records {
		var target *E
		if op != OpCreate {
			found, err := e.store.FindByKey(dbc, rec)
			if err != nil {
				tx.Rollback()
				return nil, err
			}
			if found == nil {
				result.ErrorRecords = append(result.ErrorRecords, RecordError{
					Level:   errorLevel,
					Message: "Record not found",
					Detail:  e.notFoundDetail,
					Code:    "NotFoundError",
					Record:  rec,
				})
				continue
			}
			target = found
		}

		sp := fmt.Sprintf("batch_record_%d", i)
		if err := tx.SavePoint(sp).Error; err != nil {
			tx.Rollback()
			return nil, err
		}

		var entity *E
		var err error
		switch op {
		case OpCreate:
			entity, err = e.store.Insert(dbc, rec)
		case OpUpdate:
			entity, err = e.store.Update(dbc, target, rec)
		case OpDelete:
			entity = target
			err = e.store.Delete(dbc, target)
		}
		if err != nil {
			if rbErr := tx.RollbackTo(sp).Error; rbErr != nil {
				tx.Rollback()
				return nil, rbErr
			}
			e.log.Warn("batch record failed", "operation", op.String(), "index", i, "error", err)
			result.ErrorRecords = append(result.ErrorRecords, Describe(err, rec))
			continue
		}
		result.OKRecords = append(result.OKRecords, entity)
	}

	if result.HasErrors() {
		if err := tx.Rollback().Error; err != nil {
			return nil, err
		}
		e.log.Warn("batch rolled back",
			"operation", op.String(),
			"ok", len(result.OKRecords),
			"errors", len(result.ErrorRecords))
		return result, nil
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if op != OpDelete {
		base := dbctx.Context{Ctx: ctx}
		for _, entity := range result.OKRecords {
			if err := e.store.Reload(base, entity); err != nil {
				return nil, err
			}
		}
	}

	e.log.Info("batch committed", "operation", op.String(), "records", len(result.OKRecords))
	return result, nil
}

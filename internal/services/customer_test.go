package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/tanaoroshi/masterdata-backend/internal/batch"
	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/apierr"
	"github.com/tanaoroshi/masterdata-backend/internal/repos"
	"github.com/tanaoroshi/masterdata-backend/internal/testutil"
)

func newCustomerService(t *testing.T) CustomerService {
	t.Helper()
	db := testutil.NewDB(t)
	log := testutil.NewLogger(t)
	return NewCustomerService(db, log, repos.NewCustomerRepo(db, log))
}

func customerRecord(corp, toku string, name string) domain.CustomerRecord {
	return domain.CustomerRecord{
		CorporateCd: corp,
		TokuCd:      toku,
		TyDateFrom:  domain.NewDate(2024, time.April, 1),
		CustomerUpdate: domain.CustomerUpdate{
			TokuName:       testutil.Str(name),
			CrtCorporateCd: testutil.Str(corp),
			CrtUserID:      testutil.Str("tester"),
			CrtPg:          testutil.Str("test"),
			UpdCorporateCd: testutil.Str(corp),
			UpdUserID:      testutil.Str("tester"),
			UpdPg:          testutil.Str("test"),
		},
	}
}

func TestCustomerCreateAppliesDefaults(t *testing.T) {
	svc := newCustomerService(t)

	created, err := svc.Create(context.Background(), customerRecord("CORP001", "T001", "Yamada Trading"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.CountryCd != "JP" || created.CurrencyCd != "JPY" {
		t.Fatalf("defaults not applied: country=%q currency=%q", created.CountryCd, created.CurrencyCd)
	}
}

func TestCustomerCreateConflict(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	rec := customerRecord("CORP001", "T001", "Yamada Trading")
	if _, err := svc.Create(ctx, rec); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := svc.Create(ctx, rec)
	if err == nil {
		t.Fatal("expected conflict on duplicate create")
	}
	if got := apierr.Status(err); got != http.StatusConflict {
		t.Fatalf("status = %d, want %d", got, http.StatusConflict)
	}
}

func TestCustomerUpdateNotFound(t *testing.T) {
	svc := newCustomerService(t)

	key := domain.CustomerKey{CorporateCd: "NOPE", TokuCd: "T999", TyDateFrom: domain.NewDate(2024, time.April, 1)}
	_, err := svc.Update(context.Background(), key, domain.CustomerUpdate{TokuName: testutil.Str("X")})
	if err == nil {
		t.Fatal("expected not found")
	}
	if got := apierr.Status(err); got != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", got, http.StatusNotFound)
	}
}

func TestCustomerPartialUpdateKeepsOtherFields(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	rec := customerRecord("CORP001", "T001", "Yamada Trading")
	created, err := svc.Create(ctx, rec)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, created.Key(), domain.CustomerUpdate{TokuAbbr: testutil.Str("YMD")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.TokuAbbr == nil || *updated.TokuAbbr != "YMD" {
		t.Fatalf("abbr = %v", updated.TokuAbbr)
	}
	if updated.TokuName != "Yamada Trading" {
		t.Fatalf("untouched field changed: name = %q", updated.TokuName)
	}
}

func TestCustomerDeleteReturnsDeletedRow(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, customerRecord("CORP001", "T001", "Yamada Trading"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := svc.Delete(ctx, created.Key())
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.TokuName != "Yamada Trading" {
		t.Fatalf("deleted row = %+v", deleted)
	}

	_, err = svc.Get(ctx, created.Key())
	if got := apierr.Status(err); got != http.StatusNotFound {
		t.Fatalf("status after delete = %d, want %d", got, http.StatusNotFound)
	}
}

func TestCustomerBatchUpdateReportsMissingRecord(t *testing.T) {
	svc := newCustomerService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, customerRecord("CORP001", "T001", "Yamada Trading")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	present := customerRecord("CORP001", "T001", "Renamed")
	absent := customerRecord("CORP001", "T999", "Ghost")

	result, err := svc.ExecuteBatch(ctx, batch.OpUpdate, []domain.CustomerRecord{present, absent})
	if err != nil {
		t.Fatalf("ExecuteBatch: %v", err)
	}
	if !result.HasErrors() {
		t.Fatal("expected error records")
	}
	if result.ErrorRecords[0].Detail != "A customer with the specified primary key does not exist" {
		t.Fatalf("detail = %q", result.ErrorRecords[0].Detail)
	}

	// Rollback: the present record keeps its old name.
	got, err := svc.Get(ctx, present.Key())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.TokuName != "Yamada Trading" {
		t.Fatalf("batch leaked through rollback: name = %q", got.TokuName)
	}
}

package repos

import (
	"context"
	"testing"
	"time"

	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/dbctx"
	"github.com/tanaoroshi/masterdata-backend/internal/testutil"
)

func seedFactory(t *testing.T, repo FactoryRepo, prev, comp, prod string, start, end domain.Date, name string) *domain.Factory {
	t.Helper()
	f := &domain.Factory{
		PreviousFactoryCode: prev,
		CompanyCode:         comp,
		ProductFactoryCode:  prod,
		StartOperationDate:  start,
		EndOperationDate:    end,
	}
	if name != "" {
		f.PreviousFactoryName = &name
	}
	if err := repo.Create(dbctx.Context{Ctx: context.Background()}, f); err != nil {
		t.Fatalf("create factory: %v", err)
	}
	return f
}

func TestFactoryGetByKey(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFactoryRepo(db, testutil.NewLogger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	start := domain.NewDate(2024, time.January, 1)
	end := domain.NewDate(2024, time.December, 31)
	seeded := seedFactory(t, repo, "F001", "C001", "P001", start, end, "Nagoya Plant")

	got, err := repo.GetByKey(dbc, seeded.Key())
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if got == nil {
		t.Fatal("expected row, got nil")
	}
	if got.PreviousFactoryName == nil || *got.PreviousFactoryName != "Nagoya Plant" {
		t.Fatalf("name = %v", got.PreviousFactoryName)
	}

	missing := seeded.Key()
	missing.CompanyCode = "ZZZZ"
	got, err = repo.GetByKey(dbc, missing)
	if err != nil {
		t.Fatalf("GetByKey missing: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent key, got %+v", got)
	}
}

func TestFactoryListFilters(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFactoryRepo(db, testutil.NewLogger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	start := domain.NewDate(2024, time.January, 1)
	end := domain.NewDate(2024, time.December, 31)
	seedFactory(t, repo, "F001", "C001", "P001", start, end, "Nagoya Plant")
	seedFactory(t, repo, "F002", "C001", "P002", start, end, "Osaka Plant")
	seedFactory(t, repo, "F003", "C002", "P003", start, end, "Sendai Plant")

	items, total, err := repo.List(dbc, FactoryFilter{CompanyCode: "C001"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("company filter: total=%d len=%d, want 2", total, len(items))
	}

	items, total, err = repo.List(dbc, FactoryFilter{Keyword: "Osaka"})
	if err != nil {
		t.Fatalf("List keyword: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("keyword filter: total=%d len=%d, want 1", total, len(items))
	}
	if items[0].PreviousFactoryCode != "F002" {
		t.Fatalf("keyword matched wrong row: %+v", items[0])
	}

	items, total, err = repo.List(dbc, FactoryFilter{Limit: 2})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if total != 3 {
		t.Fatalf("total should count all rows, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("limit ignored: len=%d", len(items))
	}
}

func TestFactoryGetTimeRelated(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewFactoryRepo(db, testutil.NewLogger(t))
	dbc := dbctx.Context{Ctx: context.Background()}

	seedFactory(t, repo, "F001", "C001", "P001",
		domain.NewDate(2023, time.January, 1), domain.NewDate(2023, time.December, 31), "")
	seedFactory(t, repo, "F001", "C001", "P001",
		domain.NewDate(2024, time.January, 1), domain.NewDate(2024, time.December, 31), "")
	// Different triple, must not show up.
	seedFactory(t, repo, "F009", "C001", "P001",
		domain.NewDate(2024, time.January, 1), domain.NewDate(2024, time.December, 31), "")

	rows, err := repo.GetTimeRelated(dbc, "F001", "P001", "C001")
	if err != nil {
		t.Fatalf("GetTimeRelated: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if !rows[0].StartOperationDate.Before(rows[1].StartOperationDate.Time) {
		t.Fatal("rows not ordered by start date")
	}
}

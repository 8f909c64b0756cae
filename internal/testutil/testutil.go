package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tanaoroshi/masterdata-backend/internal/domain"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

// NewDB opens an isolated in-memory database migrated with every table. The
// pool is pinned to one connection so the whole test sees one database.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&domain.Customer{}, &domain.Factory{}, &domain.User{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })
	return gdb
}

func NewLogger(t *testing.T) *logger.Logger {
	t.Helper()
	l, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return l
}

func Str(s string) *string { return &s }

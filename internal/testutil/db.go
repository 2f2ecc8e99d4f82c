package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/eventhub/event-management-backend/config"
	"github.com/eventhub/event-management-backend/database"
	"gorm.io/gorm"
)

// NewSQLiteDB opens a fresh sqlite file store and creates the tables of the
// given models.
func NewSQLiteDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := database.Open(config.DriverSQLite, database.SQLiteDSN(filepath.Join(t.TempDir(), "test.db")))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.CreateTables(db, models...); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

// NewPostgresDB connects to TEST_DATABASE_URL, or skips the test when it is
// not set or not reachable. The given tables are dropped and recreated.
func NewPostgresDB(t *testing.T, models ...interface{}) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("skipping Postgres integration test: TEST_DATABASE_URL not set")
	}

	db, err := database.Open(config.DriverPostgres, dsn)
	if err != nil {
		t.Skipf("skipping Postgres integration test: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Ping(ctx, db); err != nil {
		t.Skipf("skipping Postgres integration test: %v", err)
	}

	m := db.Migrator()
	for i := len(models) - 1; i >= 0; i-- {
		if err := m.DropTable(models[i]); err != nil {
			t.Fatalf("drop table: %v", err)
		}
	}
	if err := database.CreateTables(db, models...); err != nil {
		t.Fatalf("create tables: %v", err)
	}
	return db
}

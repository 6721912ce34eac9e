// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/yeremiapane/ecommerce-api/config"
	"github.com/yeremiapane/ecommerce-api/database"
	"gorm.io/gorm"
)

// NewTestDB opens a private in-memory SQLite database with foreign keys on
// and the schema migrated. A single connection keeps the memory database
// alive and serialises transactions.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := config.Config{
		DBDriver:       "sqlite",
		DBDSN:          fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", name, uuid.NewString()),
		DBMaxOpenConns: 1,
		DBMaxIdleConns: 1,
	}

	return openAndMigrate(t, cfg)
}

// NewFileTestDB opens a file-backed SQLite database in a temp dir with the
// default connection pool, the way the server runs out of the box.
func NewFileTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	cfg := config.Config{
		DBDriver:       "sqlite",
		DBDSN:          filepath.Join(t.TempDir(), "shop.db") + "?_foreign_keys=on",
		DBMaxOpenConns: 10,
		DBMaxIdleConns: 5,
	}
	return openAndMigrate(t, cfg)
}

func openAndMigrate(t testing.TB, cfg config.Config) *gorm.DB {
	t.Helper()

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

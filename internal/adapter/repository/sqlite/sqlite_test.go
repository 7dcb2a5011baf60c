package sqlite

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"feffi-backend/internal/infrastructure/db"
)

// openTestDB creates an in-memory sqlite DB with the full schema. One DB per
// test keeps them independent.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

package db

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB points the package connection at a fresh in-memory SQLite
// database with the schema applied and categories seeded. The previous
// connection is restored when the test finishes.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := Migrate(conn); err != nil {
		t.Fatalf("creating test database schema: %v", err)
	}
	SeedCategories(conn)

	prev := DB
	DB = conn
	t.Cleanup(func() { DB = prev })

	return conn
}

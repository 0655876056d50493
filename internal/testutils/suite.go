package testutils

import (
	"fmt"
	"testing"

	"shift-planner-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB opens a fresh in-memory sqlite cache store with the full
// schema migrated. Each call gets its own database; the shared-cache
// DSN keeps the gorm pool's connections pointed at the same memory.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{AutoMigrate: true})
	require.NoError(t, err, "failed to open test cache store")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

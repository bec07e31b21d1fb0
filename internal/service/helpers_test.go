// internal/service/helpers_test.go
package service_test

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"vocario/internal/config"
	"vocario/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB はテストごとに独立したインメモリ sqlite にスキーマを作る
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	db, err := repository.Open(sqlite.Open(dsn), config.DatabaseConfig{MaxOpenConns: 1}, logger)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(repository.Models()...), "failed to migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// Package testutil provides shared helpers for package tests. Tests run
// against an in-memory sqlite database migrated from the gorm models, so no
// external services are needed.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freightflow/booking-api/internal/database"
)

// NewTestDB opens a fresh in-memory database and migrates the full schema.
// Each call returns an isolated database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	// A single connection keeps the :memory: database alive and shared
	// across the pool
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db), "failed to migrate test schema")

	return db
}

// NewTestLogger returns a logger that discards all output
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/hireloop/hireloop/internal/infrastructure/persistence/models"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

func TestNewManager_StrategySelection(t *testing.T) {
	log := logger.NewNopLogger()

	assert.Equal(t, "gorm_auto_migrate", NewManager("development", "mysql", log).GetStrategy().GetName())
	assert.Equal(t, "gorm_auto_migrate", NewManager("test", "sqlite", log).GetStrategy().GetName())
	assert.Equal(t, "gorm_auto_migrate", NewManager("production", "postgres", log).GetStrategy().GetName())
	assert.Equal(t, "golang_migrate", NewManager("PRODUCTION", "mysql", log).GetStrategy().GetName())
}

func TestManager_AutoMigrateSQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()

	require.NoError(t, NewManager("development", "sqlite", logger.NewNopLogger()).Migrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
}

func TestGolangMigrateStrategy_RejectsOtherDrivers(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	err = NewGolangMigrateStrategy(logger.NewNopLogger()).Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target mysql")
}

func TestEmbeddedScripts(t *testing.T) {
	ups, err := fs.Glob(Scripts, golangMigrateDir+"/*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(Scripts, golangMigrateDir+"/*.down.sql")
	require.NoError(t, err)
	assert.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))

	gooseFiles, err := fs.Glob(Scripts, gooseDir+"/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, gooseFiles)

	body, err := fs.ReadFile(Scripts, gooseFiles[0])
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "-- +goose Up"))
	assert.Contains(t, string(body), "-- +goose Down")

	// Every model table is created by the versioned scripts.
	initUp, err := fs.ReadFile(Scripts, ups[0])
	require.NoError(t, err)
	for _, m := range models.All() {
		tabler, ok := m.(interface{ TableName() string })
		require.True(t, ok)
		assert.Contains(t, string(initUp), "CREATE TABLE IF NOT EXISTS "+tabler.TableName()+" (")
	}
}

func TestGenerator_CreateMigration(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "scripts")
	g := NewGenerator(dir, logger.NewNopLogger())
	g.now = func() time.Time { return time.Date(2025, 7, 4, 9, 30, 0, 0, time.UTC) }

	up, down, err := g.CreateMigration("add_notes")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "20250704093000_add_notes.up.sql"), up)
	assert.Equal(t, filepath.Join(dir, "20250704093000_add_notes.down.sql"), down)

	content, err := os.ReadFile(up)
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- Migration: add_notes")
}

func TestGooseDialect(t *testing.T) {
	d, err := gooseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, "sqlite3", d)

	_, err = gooseDialect("oracle")
	assert.Error(t, err)
}

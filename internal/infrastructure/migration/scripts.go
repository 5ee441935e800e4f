package migration

import "embed"

// Scripts holds the versioned SQL migrations. Both sets target MySQL; other drivers
// use GormAutoMigrateStrategy.
//
//go:embed scripts/migrate/*.sql scripts/goose/*.sql
var Scripts embed.FS

const (
	golangMigrateDir = "scripts/migrate"
	gooseDir         = "scripts/goose"
)

// ScriptsDir is where new migration files are written, relative to the repository root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

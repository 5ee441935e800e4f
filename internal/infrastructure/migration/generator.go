package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hireloop/hireloop/internal/shared/logger"
)

// Generator writes golang-migrate up/down file pairs.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

func NewGenerator(scriptsPath string, log logger.Interface) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      log.With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration creates <timestamp>_<name>.up.sql and .down.sql and returns their paths.
func (g *Generator) CreateMigration(name string) (string, string, error) {
	timestamp := g.now().UTC().Format("20060102150405")

	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	if err := os.WriteFile(upFilePath, []byte(g.upTemplate(name)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downFilePath, []byte(g.downTemplate(name)), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)
	return upFilePath, downFilePath, nil
}

func (g *Generator) upTemplate(name string) string {
	return fmt.Sprintf(`-- Migration: %s
-- Created: %s

-- CREATE TABLE example (
--     id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
--     tenant_id BIGINT UNSIGNED NOT NULL,
--     created_at DATETIME(3) NULL
-- ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`, name, g.now().UTC().Format("2006-01-02 15:04:05"))
}

func (g *Generator) downTemplate(name string) string {
	return fmt.Sprintf(`-- Rollback Migration: %s
-- Created: %s

-- DROP TABLE IF EXISTS example;
`, name, g.now().UTC().Format("2006-01-02 15:04:05"))
}

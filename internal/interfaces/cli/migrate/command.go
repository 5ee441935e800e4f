package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/hireloop/hireloop/internal/infrastructure/config"
	"github.com/hireloop/hireloop/internal/infrastructure/database"
	"github.com/hireloop/hireloop/internal/infrastructure/migration"
	"github.com/hireloop/hireloop/internal/shared/logger"
)

var (
	env      string
	name     string
	steps    int
	strategy string
	tool     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long: `Apply all pending database migrations to bring the database schema up to date.
Without --strategy, production MySQL uses golang-migrate and everything else uses gorm auto-migrate.`,
		RunE: runUp,
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Force a strategy: gorm, goose or golang-migrate")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of goose migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current goose migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.Flags().StringVar(&tool, "tool", "goose", "Migration file format: goose or golang-migrate")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, logger.NewLogger(), nil
}

func selectStrategy(cfg *config.Config, log logger.Interface) (*migration.Manager, error) {
	switch strategy {
	case "":
		return migration.NewManager(env, cfg.Database.Driver, log), nil
	case "gorm":
		return migration.NewManagerWithStrategy(migration.NewGormAutoMigrateStrategy(log), log), nil
	case "goose":
		return migration.NewManagerWithStrategy(migration.NewGooseStrategy(log), log), nil
	case "golang-migrate":
		return migration.NewManagerWithStrategy(migration.NewGolangMigrateStrategy(log), log), nil
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", strategy)
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	manager, err := selectStrategy(cfg, log)
	if err != nil {
		return err
	}

	log.Infow("running up migrations", "environment", env, "strategy", manager.GetStrategy().GetName())

	if err := manager.Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	if err := migration.NewGooseStrategy(log).MigrateDown(database.Get(), steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("checking migration status", "environment", env)

	return printStatus(database.Get(), migration.NewGooseStrategy(log), log)
}

func printStatus(db *gorm.DB, goose *migration.GooseStrategy, log logger.Interface) error {
	version, err := goose.GetVersion(db)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Driver:          %s\n", db.Dialector.Name())
	fmt.Printf("  Current Version: %d\n", version)

	if err := goose.Status(db); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}

	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv(false)
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name, "tool", tool)

	switch tool {
	case "goose":
		dir, err := filepath.Abs(filepath.Join(migration.ScriptsDir, "goose"))
		if err != nil {
			return fmt.Errorf("failed to get scripts path: %w", err)
		}
		if err := migration.NewGooseStrategy(log).Create(dir, name); err != nil {
			log.Errorw("failed to create migration", "error", err)
			return err
		}
	case "golang-migrate":
		dir, err := filepath.Abs(filepath.Join(migration.ScriptsDir, "migrate"))
		if err != nil {
			return fmt.Errorf("failed to get scripts path: %w", err)
		}
		up, down, err := migration.NewGenerator(dir, log).CreateMigration(name)
		if err != nil {
			log.Errorw("failed to create migration", "error", err)
			return err
		}
		fmt.Printf("  %s\n  %s\n", up, down)
	default:
		return fmt.Errorf("unknown migration tool %q", tool)
	}

	fmt.Printf("✅ Migration '%s' created successfully\n", name)
	return nil
}

package cmd

import (
	"fmt"

	"github.com/kokotatan/swipecut/internal/database"
	"github.com/kokotatan/swipecut/internal/models"
	"github.com/kokotatan/swipecut/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the SwipeCut database schema.

Available subcommands:
  up      - Apply the current schema to the database
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	Long: `Create or update the database tables for videos and segments.

Safe to run repeatedly; existing data is preserved.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// openDatabase initializes config and connects to the configured database
func openDatabase() (*database.DB, error) {
	if err := loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.Video{}, &models.Segment{}); err != nil {
		return err
	}

	fmt.Println("Database schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Database Migration Status")
	for _, model := range []any{&models.Video{}, &models.Segment{}} {
		state := "pending"
		if db.Migrator().HasTable(model) {
			state = "applied"
		}
		fmt.Printf("  %-20T %s\n", model, state)
	}

	return nil
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/ledgerflow/ledgerbot/internal/config"
	"github.com/ledgerflow/ledgerbot/internal/storage"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

This command ensures the local database has all the required tables
and indexes before the bot is started.`,
		RunE: runMigrate,
	}

	cmd.Flags().String("database", "", "database path (default: LEDGERBOT_DATABASE_PATH)")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	dbPath, _ := cmd.Flags().GetString("database")
	if dbPath == "" {
		dbPath = config.DatabasePath()
	}

	slog.Info("Running database migrations", "database", dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("Database migrations completed", "version", storage.ExpectedSchemaVersion)
	return nil
}

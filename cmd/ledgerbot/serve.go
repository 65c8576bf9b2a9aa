package main

import (
	"fmt"
	"log/slog"

	"github.com/ledgerflow/ledgerbot/internal/bot"
	"github.com/ledgerflow/ledgerbot/internal/common"
	"github.com/ledgerflow/ledgerbot/internal/config"
	"github.com/ledgerflow/ledgerbot/internal/report"
	"github.com/ledgerflow/ledgerbot/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the bot until interrupted",
		Long: `Connect to Telegram and process updates from the monitored chats.

Recognized payment records are stored, cancellations delete their
records, and admins get the report menu in a private chat.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags win over the environment for logging.
	level := viper.GetString("logging.level")
	if level == "" {
		level = cfg.LogLevel
	}
	format := viper.GetString("logging.format")
	if format == "" {
		format = cfg.LogFormat
	}
	if err := common.SetupLogger(level, format); err != nil {
		return err
	}

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	b, err := bot.New(cfg, store, report.NewService(store))
	if err != nil {
		return err
	}

	slog.Info("starting ledgerbot",
		"database", cfg.DatabasePath,
		"admins", len(cfg.AdminIDs))
	b.Run(ctx)
	return nil
}

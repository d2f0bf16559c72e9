// Command statsctl is the Stats Tracker operations CLI.
//
// Usage:
//
//	statsctl migrate up
//	statsctl migrate down
//	statsctl migrate version
//	statsctl migrate drop --yes
//	statsctl seed
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/FoyBuors17/stats-tracker/internal/config"
	"github.com/FoyBuors17/stats-tracker/internal/db"
	"github.com/FoyBuors17/stats-tracker/internal/seed"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "statsctl",
		Short: "Stats Tracker operations CLI",
	}

	root.AddCommand(migrateCmd())
	root.AddCommand(seedCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// migrate command
// --------------------------------------------------------------------------

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	cmd.AddCommand(migrateUpCmd())
	cmd.AddCommand(migrateDownCmd())
	cmd.AddCommand(migrateVersionCmd())
	cmd.AddCommand(migrateDropCmd())
	return cmd
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			start := time.Now()
			if err := db.MigrateUp(cfg.DatabaseURL); err != nil {
				return err
			}
			logger.Info("Migrations applied", "duration", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}

func migrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := db.MigrateDown(cfg.DatabaseURL); err != nil {
				return err
			}
			logger.Info("Migrations rolled back")
			return nil
		},
	}
}

func migrateVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			version, dirty, err := db.MigrateVersion(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			logger.Info("Schema version", "version", version, "dirty", dirty)
			return nil
		},
	}
}

func migrateDropCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "drop",
		Short: "Drop everything in the target database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to drop without --yes")
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := db.MigrateDrop(cfg.DatabaseURL); err != nil {
				return err
			}
			logger.Info("Database dropped")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the drop")
	return cmd
}

// --------------------------------------------------------------------------
// seed command
// --------------------------------------------------------------------------

func seedCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo league into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if migrate {
				if err := db.MigrateUp(cfg.DatabaseURL); err != nil {
					return err
				}
			}

			pool, err := db.New(ctx, cfg)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			start := time.Now()
			result := seed.Demo(ctx, pool, logger)
			logger.Info("Seed finished",
				"duration", time.Since(start).Round(time.Millisecond),
				"summary", result.Summary())
			for _, e := range result.Errors {
				logger.Error("seed error", "error", e)
			}
			if len(result.Errors) > 0 {
				return fmt.Errorf("seed completed with %d errors", len(result.Errors))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply migrations before seeding")
	return cmd
}

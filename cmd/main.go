package main

import (
	"fmt"
	"os"
	"time"

	"tulook/internal/config"
	"tulook/internal/logger"
	"tulook/internal/queue"
	"tulook/internal/settings"
	"tulook/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tulookctl",
		Short:        "Maintenance tasks for the TuLook queue service",
		SilenceUsage: true,
	}
	root.AddCommand(migrateCmd(), seedCmd(), purgeCmd(), hashSecretCmd())
	return root
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(db *gorm.DB, log *zap.Logger) error {
				if err := storage.Migrate(db); err != nil {
					return err
				}
				log.Info("schema migrated")
				return nil
			})
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write default pricing and empty payout aliases when missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(db *gorm.DB, log *zap.Logger) error {
				if err := storage.Migrate(db); err != nil {
					return err
				}
				if err := settings.NewStore(db, log).Seed(cmd.Context()); err != nil {
					return err
				}
				log.Info("settings seeded")
				return nil
			})
		},
	}
}

func purgeCmd() *cobra.Command {
	var olderThan time.Duration
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete finished tickets older than the given age",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(func(db *gorm.DB, log *zap.Logger) error {
				store := queue.NewStore(db, queue.NewHub(), log)
				n, err := store.PurgeFinished(cmd.Context(), time.Now().Add(-olderThan))
				if err != nil {
					return err
				}
				log.Info("finished tickets purged", zap.Int64("deleted", n))
				return nil
			})
		},
	}
	cmd.Flags().DurationVar(&olderThan, "older-than", 24*time.Hour, "minimum age of finished tickets to delete")
	return cmd
}

func hashSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-secret <secret>",
		Short: "Print the bcrypt hash to use as ADMIN_SECRET_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}

func withDB(fn func(*gorm.DB, *zap.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := storage.ConnectDatabase(cfg, log)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	return fn(db, log)
}


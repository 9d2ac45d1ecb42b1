package main

import (
	"os"

	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/adapter/persistence/postgres"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/config"
	"github.com/PedroCamargo-dev/wallet-transfer-saga/internal/logger"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ledger and recipient tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Setup(os.Stdout, cfg.LogLevel)

			if cfg.StoreBackend != config.BackendPostgres {
				logger.Warn("nothing to migrate", logger.Fields{"store_backend": cfg.StoreBackend})
				return nil
			}

			sqlDB, gdb, err := postgres.Open(cmd.Context(), cfg.DatabaseDSN, postgres.Options{})
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err := postgres.Migrate(cmd.Context(), gdb); err != nil {
				return err
			}
			logger.Info("migration complete", nil)
			return nil
		},
	}
}

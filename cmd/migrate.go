package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-GarageService/internal/config"
	"github.com/m04kA/SMC-GarageService/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer log.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			db, err := openDB(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := migrations.Apply(ctx, db)
			for _, name := range applied {
				log.Info("Migration applied: %s", name)
			}
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				log.Info("Database schema is up to date")
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "migration timeout")
	return cmd
}

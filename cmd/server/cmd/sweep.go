package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/gestion-eventos/internal/scheduler"
	"github.com/gestion-eventos/internal/storage"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Mark past events as done once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := openDatabase(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		return scheduler.NewEventSweeper(storage.NewEventRepository(db), logger).Run(ctx)
	},
}

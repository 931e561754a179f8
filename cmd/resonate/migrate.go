package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"resonate/db/migrations"
	"resonate/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		applied, err := db.Migrate(cfg.Psql.Addr.String())
		if err != nil {
			return err
		}
		if applied {
			logger.Info("migrations applied successfully")
		} else {
			logger.Info("schema already up to date", slog.Int("version", migrations.Version))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

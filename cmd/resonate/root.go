package main

import (
	"log/slog"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"resonate/internal/adapter/cityfile"
	"resonate/internal/config"
)

var (
	cfg    config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "resonate",
	Short: "City publisher matching engine",
	Long:  "Matches municipal outreach campaigns with community publishers and assembles budget-bounded publisher mixes.",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		logger = cfg.Log.New(os.Stdout, cfg.Env)
		slog.SetDefault(logger)
		return nil
	},
	SilenceUsage: true,
}

func loadCities() (*cityfile.Registry, error) {
	reg, err := cityfile.Load(cfg.Engine.CityDir, logger)
	if err != nil {
		return nil, eris.Wrap(err, "load cities")
	}
	return reg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

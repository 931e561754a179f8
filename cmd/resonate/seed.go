package main

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"resonate/internal/adapter/postgres"
	redisadapter "resonate/internal/adapter/redis"
	"resonate/internal/db"
)

var seedCities []string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo publisher inventory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()

		n, err := db.Seed(ctx, postgres.NewPublisherRepository(pool, logger), logger, seedCities...)
		if err != nil {
			return err
		}
		logger.Info("demo inventory seeded", slog.Int("publishers", n))

		if cfg.Redis.Enabled {
			rc, err := redisadapter.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return eris.Wrap(err, "seed: connect redis")
			}
			defer rc.Close()

			ids := seedCities
			if len(ids) == 0 {
				reg, err := loadCities()
				if err != nil {
					return err
				}
				for _, c := range reg.List() {
					ids = append(ids, c.ID)
				}
			}
			cache := redisadapter.NewPublisherCache(nil, rc, cfg.Redis.TTL, logger)
			if err := cache.Invalidate(ctx, ids...); err != nil {
				return eris.Wrap(err, "seed: invalidate cache")
			}
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringSliceVar(&seedCities, "city", nil, "seed only these cities (repeatable)")
	rootCmd.AddCommand(seedCmd)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	httpadapter "resonate/internal/adapter/http"
	"resonate/internal/adapter/postgres"
	redisadapter "resonate/internal/adapter/redis"
	"resonate/internal/adapter/usecase"
	"resonate/internal/core/engine"
	"resonate/internal/core/port"
	"resonate/internal/db"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the matching API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cities, err := loadCities()
		if err != nil {
			return err
		}
		logger.Info("cities loaded", slog.Int("count", len(cities.List())))

		if cfg.Psql.RunMigrations {
			applied, err := db.Migrate(cfg.Psql.Addr.String())
			if err != nil {
				return err
			}
			logger.Info("migrations checked", slog.Bool("applied", applied))
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return err
		}
		defer pool.Close()

		var publishers port.PublisherRepository = postgres.NewPublisherRepository(pool, logger)
		if cfg.Redis.Enabled {
			rc, err := redisadapter.Open(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return eris.Wrap(err, "serve: connect redis")
			}
			defer rc.Close()
			publishers = redisadapter.NewPublisherCache(publishers, rc, cfg.Redis.TTL, logger)
			logger.Info("publisher cache enabled", slog.String("addr", cfg.Redis.Addr), slog.Duration("ttl", cfg.Redis.TTL))
		}

		eng := engine.New(
			engine.WithLogger(logger),
			engine.WithWorkers(cfg.Engine.WorkerCount()),
			engine.WithParallelThreshold(cfg.Engine.ParallelThreshold),
		)
		svc := usecase.NewMatchUseCase(cities, publishers, eng, cfg.Engine.MinScore, logger)
		handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.CORSOrigins)

		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler:      handler.Router(),
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return eris.Wrap(err, "serve: listen")
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "serve: shutdown")
		}
		logger.Info("server gracefully stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

package cratedb

import (
	"context"
	"fmt"
	"time"

	"logrange-backend/config"

	"github.com/cenkalti/backoff"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// ProvidePool opens the PostgreSQL-wire connection pool used by the relational
// adapter and closes it when the application stops.
func ProvidePool(lc fx.Lifecycle, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.CrateDB.DSN)
	if err != nil {
		log.Error().Err(err).Msg("Failed to parse CrateDB DSN")
		return nil, fmt.Errorf("invalid CrateDB DSN: %w", err)
	}
	if cfg.CrateDB.MaxConns > 0 {
		poolConfig.MaxConns = cfg.CrateDB.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create connection pool to CrateDB")
		return nil, fmt.Errorf("failed to connect to CrateDB: %w", err)
	}

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pool.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Msg("Attempt failed: CrateDB ping")
			return err
		}
		return nil
	}

	connectBackoff := backoff.NewExponentialBackOff()
	connectBackoff.InitialInterval = 2 * time.Second
	connectBackoff.MaxInterval = 15 * time.Second
	connectBackoff.MaxElapsedTime = cfg.Connect.MaxElapsed

	if err := backoff.Retry(ping, connectBackoff); err != nil {
		pool.Close()
		log.Error().Err(err).Msg("Failed to ping CrateDB")
		return nil, fmt.Errorf("failed to ping CrateDB: %w", err)
	}
	log.Info().Msg("CrateDB connection pool created and verified.")

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Closing CrateDB connection pool...")
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:16-alpine"

// PGContainer — Postgres эталонного API: DSN для миграций и готовый пул.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC — поднимает пустую базу "routing"; миграции применяет вызывающий.
func StartPostgresTC(ctx context.Context) (*PGContainer, StopFunc, error) {
	pg, err := postgres.Run(ctx, postgresImage,
		lifecycle("postgres"),
		postgres.WithDatabase("routing"),
		postgres.WithUsername("routing"),
		postgres.WithPassword("routing"),
		tc.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(time.Minute)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres container: %w", err)
	}

	env := &PGContainer{Container: pg}
	fail := func(step string, err error) (*PGContainer, StopFunc, error) {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("postgres %s: %w", step, err)
	}

	if env.DSN, err = pg.ConnectionString(ctx, "sslmode=disable"); err != nil {
		return fail("dsn", err)
	}
	poolCfg, err := pgxpool.ParseConfig(env.DSN)
	if err != nil {
		return fail("pool config", err)
	}
	poolCfg.MaxConns = 4
	if env.Pool, err = pgxpool.NewWithConfig(ctx, poolCfg); err != nil {
		return fail("pool", err)
	}

	stop := func(context.Context) error {
		env.Pool.Close()
		return tc.TerminateContainer(pg)
	}
	return env, stop, nil
}

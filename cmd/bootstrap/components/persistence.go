package components

import (
	"log/slog"

	"stay-command-core/internal/domain/rate"
	"stay-command-core/internal/infra/cache"
	"stay-command-core/internal/infra/lock"
	"stay-command-core/internal/infra/pgq"
	"stay-command-core/internal/infra/readstore"
	"stay-command-core/internal/infra/uow"
	"stay-command-core/internal/pkg/config"
	"stay-command-core/internal/usecase/shared"

	"github.com/bsm/redislock"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		NewRatePlanCatalog,
		NewSweepLocker,
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgq.Queries {
	return pgq.New()
}

func NewUnitOfWork(pool *pgxpool.Pool, q *pgq.Queries, cfg config.Config, logger *slog.Logger) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, logger, cfg.Commands.TxMaxRetries)
}

// NewRatePlanCatalog reads rate plans from Postgres, fronted by Redis when configured.
func NewRatePlanCatalog(pool *pgxpool.Pool, q *pgq.Queries, client *redis.Client, cfg config.Config, logger *slog.Logger) rate.Catalog {
	plans := readstore.NewRatePlanReadStore(q, pool, logger)
	if client == nil {
		return plans
	}
	return cache.NewRatePlanCache(client, plans, cfg.Redis.RatePlanTTL, logger)
}

func NewSweepLocker(locker *redislock.Client, cfg config.Config) shared.SweepLocker {
	if locker == nil {
		return lock.NoopSweepLocker{}
	}
	return lock.NewRedisSweepLocker(locker, cfg.Redis.SweepLockTTL)
}

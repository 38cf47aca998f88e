package components

import (
	"rental-pricing/internal/infra/cache"
	"rental-pricing/internal/infra/db"
	"rental-pricing/internal/infra/readstore"
	"rental-pricing/internal/infra/sqlstore"
	"rental-pricing/internal/pkg/config"
	"rental-pricing/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CatalogItemQueries)),
		),
		readstore.NewCatalogReadStore,
		NewCatalogReadStore,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

// NewCatalogReadStore puts the Redis cache in front of Postgres when a client is available.
func NewCatalogReadStore(store *readstore.CatalogReadStore, client *redis.Client, cfg config.Config) queries.CatalogReadStore {
	if client == nil {
		return store
	}
	return cache.NewCatalogCache(store, client, cfg.Redis.TTL, cfg.Redis.Prefix)
}

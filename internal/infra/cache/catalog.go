package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"rental-pricing/internal/domain/pricing"
	"rental-pricing/internal/infra"
	"rental-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client the catalog cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// CatalogCache is a read-through cache in front of a CatalogReadStore.
// Only group listings are cached. Lookups by id always reach the store so
// that a quote never prices from a stale rate.
type CatalogCache struct {
	next   queries.CatalogReadStore
	client RedisClient
	ttl    time.Duration
	prefix string
}

func NewCatalogCache(next queries.CatalogReadStore, client RedisClient, ttl time.Duration, prefix string) *CatalogCache {
	return &CatalogCache{
		next:   next,
		client: client,
		ttl:    ttl,
		prefix: prefix,
	}
}

func (c *CatalogCache) key(group pricing.GroupName) string {
	return c.prefix + ":items:" + group.String()
}

func (c *CatalogCache) ListByGroup(ctx context.Context, group pricing.GroupName) ([]*queries.CatalogItemView, error) {
	items, err := c.get(ctx, group)
	if err == nil {
		return items, nil
	}
	if !infra.IsKind(err, infra.KindCacheMiss) {
		slog.WarnContext(ctx, "catalog cache read failed, falling back to store",
			slog.String("group", group.String()),
			slog.String("error", err.Error()),
		)
	}

	items, err = c.next.ListByGroup(ctx, group)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, group, items); err != nil {
		slog.WarnContext(ctx, "catalog cache write failed",
			slog.String("group", group.String()),
			slog.String("error", err.Error()),
		)
	}
	return items, nil
}

func (c *CatalogCache) FindByIDs(ctx context.Context, group pricing.GroupName, ids []uuid.UUID) ([]*queries.CatalogItemView, error) {
	return c.next.FindByIDs(ctx, group, ids)
}

func (c *CatalogCache) Invalidate(ctx context.Context, groups ...pricing.GroupName) error {
	if len(groups) == 0 {
		groups = []pricing.GroupName{pricing.GroupEquipment, pricing.GroupStudios, pricing.GroupStaff}
	}
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = c.key(g)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return infra.WrapRepoErr("failed to invalidate catalog cache", err, infra.KindCacheFailure)
	}
	return nil
}

func (c *CatalogCache) get(ctx context.Context, group pricing.GroupName) ([]*queries.CatalogItemView, error) {
	raw, err := c.client.Get(ctx, c.key(group)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.WrapRepoErr("catalog cache miss", nil, infra.KindCacheMiss)
		}
		return nil, infra.WrapRepoErr("failed to read catalog cache", err, infra.KindCacheFailure)
	}

	var items []*queries.CatalogItemView
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, infra.WrapRepoErr("failed to decode cached catalog", err, infra.KindDecode)
	}
	return items, nil
}

func (c *CatalogCache) set(ctx context.Context, group pricing.GroupName, items []*queries.CatalogItemView) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return infra.WrapRepoErr("failed to encode catalog for cache", err, infra.KindDecode)
	}
	if err := c.client.Set(ctx, c.key(group), raw, c.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to write catalog cache", err, infra.KindCacheFailure)
	}
	return nil
}

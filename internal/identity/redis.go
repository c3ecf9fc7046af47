package identity

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps one redis set per entity kind. It lets the ID projection
// survive process restarts without a full warm-up against the store.
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (c *RedisCache) key(kind Kind) string {
	return fmt.Sprintf("%s:ids:%s", c.prefix, kind)
}

func (c *RedisCache) Contains(ctx context.Context, kind Kind, id uint) (bool, error) {
	return c.client.SIsMember(ctx, c.key(kind), uint64(id)).Result()
}

func (c *RedisCache) Record(ctx context.Context, kind Kind, id uint) error {
	return c.client.SAdd(ctx, c.key(kind), uint64(id)).Err()
}

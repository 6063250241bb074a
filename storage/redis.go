package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisOpTimeout = 2 * time.Second

// Redis adapts a go-redis client to the synchronous [Storage] contract.
// Keys are namespaced with a prefix so multiple profiles can share one
// database. Values are written without TTL; the session core owns their
// lifecycle through explicit removal.
//
// The interface carries no error returns, so failed round-trips degrade to
// "absent" on reads and are dropped on writes, matching the best-effort
// semantics of the storage contract.
type Redis struct {
	client *redis.Client
	prefix string
}

// NewRedis describes the newredis operation and its observable behavior.
func NewRedis(client *redis.Client, prefix string) *Redis {
	if prefix == "" {
		prefix = "estatekit"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

// Get describes the get operation and its observable behavior.
func (r *Redis) Get(key string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set describes the set operation and its observable behavior.
func (r *Redis) Set(key, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	_ = r.client.Set(ctx, r.key(key), value, 0).Err()
}

// Remove describes the remove operation and its observable behavior.
func (r *Redis) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()
	_ = r.client.Del(ctx, r.key(key)).Err()
}

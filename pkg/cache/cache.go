// Package cache is a thin JSON cache over Redis. When Redis is not
// reachable every operation degrades to a no-op, so a single-binary
// deployment with no Redis still works; reports are just recomputed.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikitaraj/foodbridge/config"
	"github.com/redis/go-redis/v9"
)

var RDB *redis.Client
var Ctx = context.Background()

// ReportPrefix namespaces cached analytics report results. Mutating
// repository operations flush this prefix so reports never serve rows
// older than the data they summarise.
const ReportPrefix = "report:"

// Connect initialises the Redis client and verifies the connection with a
// ping. On failure the client is cleared so Get/Set/Del no-op safely.
func Connect() error {
	RDB = redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := RDB.Ping(Ctx).Err(); err != nil {
		RDB = nil
		return fmt.Errorf("cache: redis ping: %w", err)
	}
	return nil
}

// Get retrieves a cached value by key and unmarshals into dest.
// Returns true on a cache hit, false on miss or error.
func Get(key string, dest interface{}) bool {
	if RDB == nil {
		return false
	}

	val, err := RDB.Get(Ctx, key).Result()
	if err != nil {
		return false
	}

	return json.Unmarshal([]byte(val), dest) == nil
}

// Set stores value under key for ttl. Errors are returned but callers
// normally ignore them; a failed cache write is not an operation failure.
func Set(key string, value interface{}, ttl time.Duration) error {
	if RDB == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %q: %w", key, err)
	}

	return RDB.Set(Ctx, key, data, ttl).Err()
}

// Del removes keys. Used after mutations so stale report rows never
// outlive the data they summarise.
func Del(keys ...string) {
	if RDB == nil || len(keys) == 0 {
		return
	}
	RDB.Del(Ctx, keys...)
}

// FlushPrefix deletes every key matching prefix*.
func FlushPrefix(prefix string) {
	if RDB == nil {
		return
	}

	iter := RDB.Scan(Ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(Ctx) {
		RDB.Del(Ctx, iter.Val())
	}
}

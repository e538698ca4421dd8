package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const defaultTTL = 10 * time.Minute

// ReplyCache is an optional transient cache for concierge replies backed by
// Redis. Key format: concierge:reply:<sha256(message)>. Business data never
// lives here — only generated chat text with a short TTL.
type ReplyCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewReplyCache wraps the given Redis client. ttl <= 0 uses the default.
func NewReplyCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *ReplyCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ReplyCache{client: client, ttl: ttl, log: log}
}

// Get returns a cached reply for the message, if present. Cache errors are
// logged and treated as misses — the relay must keep working without Redis.
func (c *ReplyCache) Get(ctx context.Context, message string) (string, bool) {
	reply, err := c.client.Get(ctx, c.key(message)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("reply cache read failed, treating as miss")
		return "", false
	}
	return reply, true
}

// Set stores a reply with the configured TTL. Failures are non-fatal.
func (c *ReplyCache) Set(ctx context.Context, message, reply string) {
	if err := c.client.Set(ctx, c.key(message), reply, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("reply cache write failed")
	}
}

func (c *ReplyCache) key(message string) string {
	sum := sha256.Sum256([]byte(message))
	return "concierge:reply:" + hex.EncodeToString(sum[:])
}

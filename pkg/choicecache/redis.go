package choicecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lingo/pkg/choice"
)

// Redis shares parsed sets between processes. Messages are hashed into keys
// of the form "{prefix}:{sha256(message)}" and sets are stored as JSON.
type Redis struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures the Redis cache.
type RedisOption func(*Redis)

// WithPrefix sets the key prefix. Default: "lingo:choice".
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// WithRedisTTL sets the key expiration. Default: 24 hours; zero or negative disables expiration.
func WithRedisTTL(d time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = d
	}
}

// NewRedis creates a Redis-backed cache. The client lifecycle stays with the caller.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		prefix: "lingo:choice",
		ttl:    24 * time.Hour,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) Get(ctx context.Context, message string) (*choice.Set, error) {
	data, err := r.client.Get(ctx, r.key(message)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var set *choice.Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.Join(ErrUnmarshal, err)
	}
	if set == nil {
		return nil, ErrNotFound
	}
	return set, nil
}

func (r *Redis) Set(ctx context.Context, message string, set *choice.Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return errors.Join(ErrMarshal, err)
	}
	return r.client.Set(ctx, r.key(message), data, max(r.ttl, 0)).Err()
}

// Clear removes every key under the prefix using SCAN.
func (r *Redis) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+":*", 100).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// Close is a no-op; the client is owned by the caller.
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) key(message string) string {
	sum := sha256.Sum256([]byte(message))
	return r.prefix + ":" + hex.EncodeToString(sum[:])
}

var _ Cache = (*Redis)(nil)

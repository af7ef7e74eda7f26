package broker

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisBroker implements Broker over a single Redis connection
// (github.com/redis/go-redis/v9). List pops are issued as a single
// counted RPOP (RPopCount(key, n)) round trip rather than n individual requests,
// matching §5's "pipelined pop of N items" requirement.
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker dials addr (host:port, REDIS_ADDRESS env convention,
// §6 Environment variables).
func NewRedisBroker(addr string) (*RedisBroker, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return &RedisBroker{client: client}, nil
}

func (b *RedisBroker) LPush(ctx context.Context, key string, values ...[]byte) error {
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return b.client.LPush(ctx, key, args...).Err()
}

func (b *RedisBroker) RPopN(ctx context.Context, key string, n int) ([][]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	vals, err := b.client.RPopCount(ctx, key, n).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([][]byte, len(vals))
	for i, v := range vals {
		out[i] = []byte(v)
	}
	return out, nil
}

func (b *RedisBroker) LLen(ctx context.Context, key string) (int64, error) {
	return b.client.LLen(ctx, key).Result()
}

func (b *RedisBroker) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := b.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func (b *RedisBroker) Set(ctx context.Context, key string, value []byte) error {
	return b.client.Set(ctx, key, value, 0).Err()
}

func (b *RedisBroker) Incr(ctx context.Context, key string) (int64, error) {
	return b.client.Incr(ctx, key).Result()
}

// ScanDeletePrefix deletes every key beginning with prefix using a
// cursor-based SCAN rather than KEYS, matching go-redis's recommended
// non-blocking idiom even though the keyspace here is small (§4.5).
func (b *RedisBroker) ScanDeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := b.client.Scan(ctx, cursor, prefix+"*", 1000).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := b.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (b *RedisBroker) Close() error {
	return b.client.Close()
}

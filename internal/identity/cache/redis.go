package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis implements Cache on a redis client. Tags are kept as redis
// sets of member keys; tag sets expire a little after the longest
// entry TTL so they cannot leak forever.
type Redis struct {
	client *redis.Client
	prefix string
}

func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(k string) string { return r.prefix + ":" + k }
func (r *Redis) tag(t string) string { return r.prefix + ":tag:" + t }

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration, tags ...string) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(key), value, ttl)
	for _, t := range tags {
		pipe.SAdd(ctx, r.tag(t), r.key(key))
		pipe.Expire(ctx, r.tag(t), ttl+time.Minute)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *Redis) Invalidate(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}

func (r *Redis) InvalidateTag(ctx context.Context, tag string) error {
	members, err := r.client.SMembers(ctx, r.tag(tag)).Result()
	if err != nil {
		return err
	}
	pipe := r.client.TxPipeline()
	if len(members) > 0 {
		pipe.Del(ctx, members...)
	}
	pipe.Del(ctx, r.tag(tag))
	_, err = pipe.Exec(ctx)
	return err
}

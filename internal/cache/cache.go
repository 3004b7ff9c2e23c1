// Package cache holds the optional read-through cache used by the profile
// and community readers.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Store is a best-effort key/value cache. Misses and backend failures are
// indistinguishable to callers.
type Store[T any] interface {
	Get(ctx context.Context, key string) (*T, bool)
	Set(ctx context.Context, key string, value *T)
	Delete(ctx context.Context, key string)
}

func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

// ViewCache stores JSON-encoded values of T in Redis under a key prefix.
type ViewCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewViewCache[T any](client *redis.Client, prefix string, ttl time.Duration) *ViewCache[T] {
	return &ViewCache[T]{client: client, prefix: prefix, ttl: ttl}
}

func (c *ViewCache[T]) key(k string) string {
	return c.prefix + ":" + k
}

func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", c.key(key)).Debug("cache read failed")
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", c.key(key)).Warn("cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", c.key(key)).Warn("cache write failed")
	}
}

func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		logrus.WithError(err).WithField("key", c.key(key)).Warn("cache delete failed")
	}
}

// Noop never stores anything.
type Noop[T any] struct{}

func (Noop[T]) Get(context.Context, string) (*T, bool) { return nil, false }
func (Noop[T]) Set(context.Context, string, *T)        {}
func (Noop[T]) Delete(context.Context, string)         {}

// Or returns s, or a Noop when s is nil.
func Or[T any](s Store[T]) Store[T] {
	if s == nil {
		return Noop[T]{}
	}
	return s
}

// Counter is a generation number for a family of cached keys. Writers bump it
// after changing the data; readers fold the current value into their key, so
// an entry filled from data older than the bump is never read again.
type Counter interface {
	Get(ctx context.Context) (int64, error)
	Incr(ctx context.Context) error
}

// RedisCounter keeps the generation in Redis so every instance sees bumps.
type RedisCounter struct {
	client *redis.Client
	key    string
}

func NewRedisCounter(client *redis.Client, key string) *RedisCounter {
	return &RedisCounter{client: client, key: key}
}

func (c *RedisCounter) Get(ctx context.Context) (int64, error) {
	n, err := c.client.Get(ctx, c.key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (c *RedisCounter) Incr(ctx context.Context) error {
	return c.client.Incr(ctx, c.key).Err()
}

// LocalCounter is an in-process Counter. The zero value is ready to use.
type LocalCounter struct {
	n atomic.Int64
}

func (c *LocalCounter) Get(context.Context) (int64, error) { return c.n.Load(), nil }

func (c *LocalCounter) Incr(context.Context) error {
	c.n.Add(1)
	return nil
}

package redisx

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMissing is returned when a key does not exist.
var ErrMissing = errors.New("redis key missing")

type Client struct{ Rdb *redis.Client }

func New(addr string, password string, db int) *Client {
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db})
	return &Client{Rdb: rdb}
}

func (c *Client) Close() error { return c.Rdb.Close() }

func (c *Client) Ping(ctx context.Context) error {
	return c.Rdb.Ping(ctx).Err()
}

// GetEx reads key and resets its expiry to ttl.
func (c *Client) GetEx(ctx context.Context, key string, ttl time.Duration) (string, error) {
	v, err := c.Rdb.GetEx(ctx, key, ttl).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMissing
	}
	return v, err
}

func (c *Client) Set(ctx context.Context, key string, val string, ttl time.Duration) error {
	return c.Rdb.Set(ctx, key, val, ttl).Err()
}

// Del removes key, reporting ErrMissing when nothing was deleted.
func (c *Client) Del(ctx context.Context, key string) error {
	n, err := c.Rdb.Del(ctx, key).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrMissing
	}
	return nil
}

// Update runs a WATCH/MULTI read-modify-write on key. fn receives the current
// value and returns the replacement; the write is retried once if key changed
// underneath it.
func (c *Client) Update(ctx context.Context, key string, ttl time.Duration, fn func(cur string) (string, error)) error {
	txf := func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, key).Result()
		if errors.Is(err, redis.Nil) {
			return ErrMissing
		}
		if err != nil {
			return err
		}
		next, err := fn(cur)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, next, ttl)
			return nil
		})
		return err
	}
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = c.Rdb.Watch(ctx, txf, key)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

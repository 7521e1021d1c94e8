package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/yourorg/qoz-dashboard/internal/redisx"
)

const redisKeyPrefix = "qoz:session:"

// RedisStore keeps sessions as JSON documents with a sliding TTL so several
// server instances can share them.
type RedisStore struct {
	Redis *redisx.Client
	TTL   time.Duration
	now   func() time.Time
}

func NewRedisStore(c *redisx.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{Redis: c, TTL: ttl, now: time.Now}
}

func redisKey(id string) string { return redisKeyPrefix + id }

func (r *RedisStore) Create(ctx context.Context) (State, error) {
	st := NewState(uuid.NewString(), r.now())
	b, err := json.Marshal(st)
	if err != nil {
		return State{}, err
	}
	if err := r.Redis.Set(ctx, redisKey(st.ID), string(b), r.TTL); err != nil {
		return State{}, fmt.Errorf("session create: %w", err)
	}
	return st, nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (State, error) {
	val, err := r.Redis.GetEx(ctx, redisKey(id), r.TTL)
	if errors.Is(err, redisx.ErrMissing) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, fmt.Errorf("session get: %w", err)
	}
	var st State
	if err := json.Unmarshal([]byte(val), &st); err != nil {
		return State{}, fmt.Errorf("session decode: %w", err)
	}
	return st, nil
}

func (r *RedisStore) Update(ctx context.Context, id string, p Patch) (State, error) {
	var out State
	err := r.Redis.Update(ctx, redisKey(id), r.TTL, func(cur string) (string, error) {
		var st State
		if err := json.Unmarshal([]byte(cur), &st); err != nil {
			return "", fmt.Errorf("session decode: %w", err)
		}
		if err := st.Apply(p, r.now()); err != nil {
			return "", err
		}
		b, err := json.Marshal(st)
		if err != nil {
			return "", err
		}
		out = st
		return string(b), nil
	})
	if errors.Is(err, redisx.ErrMissing) {
		return State{}, ErrNotFound
	}
	if err != nil {
		return State{}, err
	}
	return out, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	err := r.Redis.Del(ctx, redisKey(id))
	if errors.Is(err, redisx.ErrMissing) {
		return ErrNotFound
	}
	return err
}

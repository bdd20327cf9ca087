package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Miraines/StudyPlanner/backend/internal/domain/auth/model"
	"github.com/redis/go-redis/v9"
)

const profileKeyPrefix = "account:"

type RedisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProfileCache(client *redis.Client, ttl time.Duration) *RedisProfileCache {
	return &RedisProfileCache{
		client: client,
		ttl:    safeTTL(ttl),
	}
}

func (r *RedisProfileCache) Get(ctx context.Context, id string) (model.Profile, bool, error) {
	raw, err := r.client.Get(ctx, profileKeyPrefix+id).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return model.Profile{}, false, nil
	case err != nil:
		return model.Profile{}, false, err
	}

	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		// corrupt entry, let the caller refill it
		_ = r.client.Del(ctx, profileKeyPrefix+id).Err()
		return model.Profile{}, false, nil
	}
	return p, true, nil
}

func (r *RedisProfileCache) Set(ctx context.Context, p model.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, profileKeyPrefix+p.ID, raw, r.ttl).Err()
}

func safeTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return 5 * time.Minute
	}
	return ttl
}

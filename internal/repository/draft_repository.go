package repository

import (
	"context"
	"hr_console/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

// DraftRepository keeps short-lived console drafts in redis.
type DraftRepository struct {
	Redis *redis.Client
}

func NewDraftRepository(rdb *redis.Client) *DraftRepository {
	return &DraftRepository{Redis: rdb}
}

func (r *DraftRepository) Save(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.Redis.Set(ctx, key, value, ttl).Err()
}

func (r *DraftRepository) Load(ctx context.Context, key string) ([]byte, error) {
	raw, err := r.Redis.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, util.ErrSelectionNotFound
	}
	return raw, err
}

func (r *DraftRepository) Delete(ctx context.Context, key string) error {
	return r.Redis.Del(ctx, key).Err()
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"hr_console/internal/model"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// NoticeRepository keeps notices in one sorted set per operator, scored by
// expiry in milliseconds.
type NoticeRepository struct {
	Redis *redis.Client
}

func NewNoticeRepository(rdb *redis.Client) *NoticeRepository {
	return &NoticeRepository{Redis: rdb}
}

func noticeKey(operatorID uint) string {
	return fmt.Sprintf("console:notices:%d", operatorID)
}

func (r *NoticeRepository) Add(ctx context.Context, operatorID uint, n model.Notice, ttl time.Duration) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return err
	}
	key := noticeKey(operatorID)
	pipe := r.Redis.TxPipeline()
	pipe.ZAdd(ctx, key, &redis.Z{Score: float64(n.ExpiresAt.UnixMilli()), Member: raw})
	pipe.Expire(ctx, key, ttl+time.Second)
	_, err = pipe.Exec(ctx)
	return err
}

// List drops expired notices and returns the live ones oldest first.
func (r *NoticeRepository) List(ctx context.Context, operatorID uint, now time.Time) ([]model.Notice, error) {
	key := noticeKey(operatorID)
	cutoff := strconv.FormatInt(now.UnixMilli(), 10)
	if err := r.Redis.ZRemRangeByScore(ctx, key, "-inf", cutoff).Err(); err != nil {
		return nil, err
	}
	members, err := r.Redis.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: "(" + cutoff, Max: "+inf"}).Result()
	if err != nil {
		return nil, err
	}

	notices := make([]model.Notice, 0, len(members))
	for _, m := range members {
		var n model.Notice
		if err := json.Unmarshal([]byte(m), &n); err != nil {
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/clairecicle/Mental-load-app/internal/domain"
)

const (
	keyListPrefix     = "tasks:list:"
	keyTodayPrefix    = "tasks:today:"
	keyUpcomingPrefix = "tasks:upcoming:"
)

// TaskCache caches per-household task lists in Redis. Writes
// invalidate every key of the household so derived views are never
// served stale.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

func (c *TaskCache) get(ctx context.Context, key string) ([]domain.Task, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []domain.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *TaskCache) set(ctx context.Context, key string, list []domain.Task) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// GetList returns the cached full list for a household, or nil on miss.
func (c *TaskCache) GetList(ctx context.Context, householdID string) ([]domain.Task, error) {
	return c.get(ctx, keyListPrefix+householdID)
}

// SetList stores the full list for a household.
func (c *TaskCache) SetList(ctx context.Context, householdID string, list []domain.Task) error {
	return c.set(ctx, keyListPrefix+householdID, list)
}

// GetToday returns the cached today view for a household, or nil on miss.
// The key carries the date so a view cached before midnight is never
// served the next day.
func (c *TaskCache) GetToday(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	return c.get(ctx, keyTodayPrefix+householdID+":"+date)
}

// SetToday stores the today view for a household.
func (c *TaskCache) SetToday(ctx context.Context, householdID, date string, list []domain.Task) error {
	return c.set(ctx, keyTodayPrefix+householdID+":"+date, list)
}

// GetUpcoming returns the cached upcoming view for a household, or nil on miss.
func (c *TaskCache) GetUpcoming(ctx context.Context, householdID, date string) ([]domain.Task, error) {
	return c.get(ctx, keyUpcomingPrefix+householdID+":"+date)
}

// SetUpcoming stores the upcoming view for a household.
func (c *TaskCache) SetUpcoming(ctx context.Context, householdID, date string, list []domain.Task) error {
	return c.set(ctx, keyUpcomingPrefix+householdID+":"+date, list)
}

// InvalidateHousehold removes every cached view of the household
// (cache invalidation on write).
func (c *TaskCache) InvalidateHousehold(ctx context.Context, householdID string) error {
	for _, prefix := range []string{keyListPrefix, keyTodayPrefix, keyUpcomingPrefix} {
		iter := c.rdb.Scan(ctx, 0, prefix+householdID+"*", 100).Iterator()
		for iter.Next(ctx) {
			if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}

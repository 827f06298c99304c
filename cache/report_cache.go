// Package cache holds the Redis read-through cache for report summaries.
// Summaries are aggregate counts; a short TTL keeps them fresh enough
// while sparing the database on dashboard polling.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/RoyPushkar-kun/Library-Management-System/library"
)

const summaryKey = "reports:summary"

type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

// GetSummary returns the cached summary, or (nil, nil) on a miss.
func (c *ReportCache) GetSummary(ctx context.Context) (*library.Summary, error) {
	b, err := c.rdb.Get(ctx, summaryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var s library.Summary
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *ReportCache) SetSummary(ctx context.Context, s *library.Summary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, summaryKey, b, c.ttl).Err()
}

func (c *ReportCache) Invalidate(ctx context.Context) {
	_ = c.rdb.Del(ctx, summaryKey).Err()
}

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"spendtrack/internal/app"
)

// SummaryCache stores computed statistics summaries in Redis with a short
// TTL. Writes go through Invalidate, so a cached entry never outlives a
// mutation by the same user.
type SummaryCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewSummaryCache(client *redisv9.Client, ttl time.Duration) *SummaryCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &SummaryCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *SummaryCache) Get(ctx context.Context, userID uint) (*app.Summary, bool, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get summary failed: %w", err)
	}

	var summary app.Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached summary failed: %w", err)
	}
	return &summary, true, nil
}

func (c *SummaryCache) Set(ctx context.Context, userID uint, summary *app.Summary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary cache failed: %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set summary failed: %w", err)
	}
	return nil
}

func (c *SummaryCache) Invalidate(ctx context.Context, userID uint) error {
	if err := c.client.Del(ctx, c.key(userID)).Err(); err != nil {
		return fmt.Errorf("redis delete summary failed: %w", err)
	}
	return nil
}

func (c *SummaryCache) key(userID uint) string {
	return fmt.Sprintf("stats:summary:%d", userID)
}

package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Consort-Group-Corp/support-service/internal/domain"
)

// PresetCache caches the end-user view of active presets per role. A cache
// miss or a cache failure both fall back to the repository read.
type PresetCache interface {
	GetActive(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, bool)
	SetActive(ctx context.Context, role domain.UserRole, presets []domain.IssuePreset)
	Invalidate(ctx context.Context, role domain.UserRole)
}

type redisPresetCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisPresetCache builds a redis-backed cache with the given TTL.
func NewRedisPresetCache(client *redis.Client, ttl time.Duration) PresetCache {
	return &redisPresetCache{client: client, ttl: ttl}
}

func presetCacheKey(role domain.UserRole) string {
	return fmt.Sprintf("support:presets:active:%s", role)
}

func (c *redisPresetCache) GetActive(ctx context.Context, role domain.UserRole) ([]domain.IssuePreset, bool) {
	if c.client == nil {
		return nil, false
	}
	payload, err := c.client.Get(ctx, presetCacheKey(role)).Bytes()
	if err != nil {
		return nil, false
	}
	var presets []domain.IssuePreset
	if err := json.Unmarshal(payload, &presets); err != nil {
		return nil, false
	}
	return presets, true
}

func (c *redisPresetCache) SetActive(ctx context.Context, role domain.UserRole, presets []domain.IssuePreset) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(presets)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, presetCacheKey(role), payload, c.ttl).Err()
}

func (c *redisPresetCache) Invalidate(ctx context.Context, role domain.UserRole) {
	if c.client == nil {
		return
	}
	_ = c.client.Del(ctx, presetCacheKey(role)).Err()
}

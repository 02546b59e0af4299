// Package cache implements caching adapters backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// DefaultAnalysisTTL bounds staleness for cached analyses that were never
// invalidated, e.g. after a missed invalidation or a restart of the writer.
const DefaultAnalysisTTL = 15 * time.Minute

// redisAnalysisCache implements adapter.AnalysisCache using Redis.
// Keys follow the pattern "analysis:<user-id>:<yyyy-mm>" so a per-user
// invalidation can target them with a single scan.
type redisAnalysisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisAnalysisCache creates a new Redis-backed analysis cache.
// A zero ttl falls back to DefaultAnalysisTTL.
func NewRedisAnalysisCache(client *redis.Client, ttl time.Duration) adapter.AnalysisCache {
	if ttl <= 0 {
		ttl = DefaultAnalysisTTL
	}
	return &redisAnalysisCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves a cached analysis for the user and target month.
// Returns (nil, nil) on a miss.
func (c *redisAnalysisCache) Get(ctx context.Context, userID uuid.UUID, month time.Time) (*entity.BudgetAnalysis, error) {
	payload, err := c.client.Get(ctx, analysisKey(userID, month)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached analysis: %w", err)
	}

	var analysis entity.BudgetAnalysis
	if err := json.Unmarshal(payload, &analysis); err != nil {
		// A corrupt entry is treated as a miss so it gets overwritten.
		return nil, nil
	}
	return &analysis, nil
}

// Set stores an analysis for the user and target month.
func (c *redisAnalysisCache) Set(ctx context.Context, userID uuid.UUID, month time.Time, analysis *entity.BudgetAnalysis) error {
	payload, err := json.Marshal(analysis)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if err := c.client.Set(ctx, analysisKey(userID, month), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache analysis: %w", err)
	}
	return nil
}

// InvalidateUser drops every cached analysis for the user.
func (c *redisAnalysisCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("analysis:%s:*", userID)

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cached analyses: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached analyses: %w", err)
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

// analysisKey builds the cache key for a user and month.
func analysisKey(userID uuid.UUID, month time.Time) string {
	return fmt.Sprintf("analysis:%s:%s", userID, month.Format("2006-01"))
}

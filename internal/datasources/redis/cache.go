// Package redis stores computed recommendation groups in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jbeshir/webtoon-feed/internal/datasources"
	"github.com/jbeshir/webtoon-feed/internal/domain"
)

const keyPrefix = "recommendations:"

func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return client, nil
}

var _ datasources.RecommendationCache = (*RecommendationCache)(nil)

type RecommendationCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRecommendationCache(client redis.Cmdable, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{client: client, ttl: ttl}
}

func key(userID string) string {
	return keyPrefix + userID
}

func (c *RecommendationCache) GetRecommendations(
	ctx context.Context,
	userID string,
) ([]domain.RecommendationGroup, bool, error) {
	data, err := c.client.Get(ctx, key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("getting cached recommendations: %w", err)
	}

	var groups []domain.RecommendationGroup
	if err := json.Unmarshal(data, &groups); err != nil {
		return nil, false, fmt.Errorf("decoding cached recommendations: %w", err)
	}
	return groups, true, nil
}

func (c *RecommendationCache) SetRecommendations(
	ctx context.Context,
	userID string,
	groups []domain.RecommendationGroup,
) error {
	data, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("encoding recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching recommendations: %w", err)
	}
	return nil
}

func (c *RecommendationCache) InvalidateRecommendations(ctx context.Context, userID string) error {
	if err := c.client.Del(ctx, key(userID)).Err(); err != nil {
		return fmt.Errorf("invalidating cached recommendations: %w", err)
	}
	return nil
}

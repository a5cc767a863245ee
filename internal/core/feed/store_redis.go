// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/taibuivan/pictura/internal/platform/constants"
)

// # Redis Recent-Feed Cache

// redisFeedCache implements [RecentFeedCache] using Redis.
//
// Each page size gets its own key under the shared prefix so Invalidate can
// drop all of them with a single pattern delete after a write.
type redisFeedCache struct {
	client *redis.Client
}

// NewRecentFeedCache creates a new Redis-backed recent-feed cache.
func NewRecentFeedCache(client *redis.Client) RecentFeedCache {
	return &redisFeedCache{client: client}
}

// cacheKey returns the Redis key for a page of the given size.
func cacheKey(limit int) string {
	return fmt.Sprintf("%s:%d", constants.RedisKeyRecentFeed, limit)
}

/*
Get returns the cached page for the given limit.

Description: A missing key and an unreadable payload both report found=false,
so callers fall back to the database rather than failing the request.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []*Activity: Cached entries (nil on miss)
  - bool: Cache hit indicator
  - error: Connectivity failures (miss is not an error)
*/
func (cache *redisFeedCache) Get(context context.Context, limit int) ([]*Activity, bool, error) {

	// Fetch the serialised page
	raw, err := cache.client.Get(context, cacheKey(limit)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis_feed_cache_get_failed: %w", err)
	}

	// Deserialise; a corrupt entry is treated as a miss
	var activities []*Activity
	if err := json.Unmarshal(raw, &activities); err != nil {
		return nil, false, nil
	}

	return activities, true, nil
}

/*
Set stores a page for the given limit with the configured TTL.

Parameters:
  - context: context.Context
  - limit: int
  - activities: []*Activity

Returns:
  - error: Marshal or storage failures
*/
func (cache *redisFeedCache) Set(context context.Context, limit int, activities []*Activity) error {

	// Serialise the page
	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("redis_feed_cache_marshal_failed: %w", err)
	}

	// Store with the feed TTL
	if err := cache.client.Set(context, cacheKey(limit), raw, constants.FeedCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_feed_cache_set_failed: %w", err)
	}

	return nil
}

/*
Invalidate drops every cached page.

Description: Uses SCAN rather than KEYS to avoid blocking the Redis event
loop. The key space is tiny (one key per requested page size), so the scan
completes in a single iteration in practice.

Parameters:
  - context: context.Context

Returns:
  - error: Scan or deletion failures
*/
func (cache *redisFeedCache) Invalidate(context context.Context) error {

	// Collect matching keys
	pattern := constants.RedisKeyRecentFeed + ":*"
	iter := cache.client.Scan(context, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(context) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis_feed_cache_scan_failed: %w", err)
	}

	// Delete in one round trip
	if len(keys) == 0 {
		return nil
	}
	if err := cache.client.Del(context, keys...).Err(); err != nil {
		return fmt.Errorf("redis_feed_cache_invalidate_failed: %w", err)
	}

	return nil
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/pictura/internal/platform/constants"
	"github.com/taibuivan/pictura/pkg/uuidv7"
)

// # Service Layer

// Service orchestrates the business logic for the activity feed.
type Service struct {
	activityRepo ActivityRepository
	directory    UserDirectory
	cache        RecentFeedCache
	logger       *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
// The cache may be nil, in which case every read goes to the database.
func NewService(activityRepo ActivityRepository, directory UserDirectory, cache RecentFeedCache, logger *slog.Logger) *Service {
	return &Service{
		activityRepo: activityRepo,
		directory:    directory,
		cache:        cache,
		logger:       logger,
	}
}

// # Recording

/*
Record appends a new entry to the site-wide feed on behalf of an actor.

Description: Recording is strictly best-effort. The feed is a side channel of
the action that triggered it (a login, an upload), and that action has already
succeeded by the time Record runs. Any failure here, including an unknown
actor or a mismatched payload, is logged and swallowed so the caller's
operation is never rolled back over a feed entry.

Parameters:
  - context: context.Context
  - username: string (Actor login name, snapshotted into the entry)
  - activityType: ActivityType
  - info: *ActivityInfo (nil for session events)

Returns:
  - Nothing. Failures are logged under "activity_record_skipped".
*/
func (service *Service) Record(context context.Context, username string, activityType ActivityType, info *ActivityInfo) {

	// Shape checks before touching storage
	if !activityType.IsValid() {
		service.skip(username, activityType, "unknown activity type", nil)
		return
	}
	if !info.ValidFor(activityType) {
		service.skip(username, activityType, "payload does not match activity type", nil)
		return
	}

	// Actor resolution by login name
	userID, err := service.directory.FindIDByUsername(context, username)
	if err != nil {
		service.skip(username, activityType, "actor resolution failed", err)
		return
	}

	// Entry construction with a time-ordered identity
	activity := &Activity{
		ID:        uuidv7.New(),
		UserID:    userID,
		Username:  username,
		Type:      activityType,
		Info:      info,
		CreatedAt: time.Now().UTC(),
	}

	// Persistence
	if err := service.activityRepo.Create(context, activity); err != nil {
		service.skip(username, activityType, "persistence failed", err)
		return
	}

	// Cache invalidation so the next feed read sees this entry
	if service.cache != nil {
		if err := service.cache.Invalidate(context); err != nil {
			service.logger.Warn("feed_cache_invalidate_failed", slog.String("error", err.Error()))
		}
	}

	service.logger.Info("activity_recorded",
		slog.String("activity_id", activity.ID),
		slog.String("user_id", userID),
		slog.String(FieldActivityType, string(activityType)),
	)
}

// skip logs a swallowed recording failure with a uniform event name.
func (service *Service) skip(username string, activityType ActivityType, reason string, err error) {
	attrs := []any{
		slog.String("username", username),
		slog.String(FieldActivityType, string(activityType)),
		slog.String("reason", reason),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	service.logger.Warn("activity_record_skipped", attrs...)
}

// # Retrieval

/*
ListRecent returns the newest feed entries, most recent first.

Description: Serves from the short-TTL cache when possible. A cache failure
degrades silently to the database so the feed stays available while Redis is
down.

Parameters:
  - context: context.Context
  - limit: int (Clamped to [constants.DefaultFeedLimit] when non-positive and
    to [constants.MaxFeedLimit] when excessive)

Returns:
  - []*Activity: Newest entries first
  - error: Storage failures
*/
func (service *Service) ListRecent(context context.Context, limit int) ([]*Activity, error) {

	// Limit clamping
	if limit <= 0 {
		limit = constants.DefaultFeedLimit
	}
	if limit > constants.MaxFeedLimit {
		limit = constants.MaxFeedLimit
	}

	// Cache lookup
	if service.cache != nil {
		activities, found, err := service.cache.Get(context, limit)
		if err != nil {
			service.logger.Warn("feed_cache_get_failed", slog.String("error", err.Error()))
		}
		if found {
			return activities, nil
		}
	}

	// Database fallback
	activities, err := service.activityRepo.ListRecent(context, limit)
	if err != nil {
		return nil, err
	}

	// Cache refresh, best-effort
	if service.cache != nil {
		if err := service.cache.Set(context, limit, activities); err != nil {
			service.logger.Warn("feed_cache_set_failed", slog.String("error", err.Error()))
		}
	}

	return activities, nil
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/database/schema"
)

// # PostgreSQL Repositories

// activityRepository implements the [ActivityRepository] interface using pgx.
type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository constructs a PostgreSQL backed feed store.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

/*
Create persists a new feed entry.

Description: The type-specific payload is stored as a nullable JSONB column.
Session events (login, logout, register) write NULL rather than an empty
object so the column stays queryable for content events only.

Parameters:
  - context: context.Context
  - activity: *Activity

Returns:
  - error: Marshal or storage failures
*/
func (repository *activityRepository) Create(context context.Context, activity *Activity) error {

	// Payload serialisation (nullable)
	var infoJSON []byte
	if activity.Info != nil {
		raw, err := json.Marshal(activity.Info)
		if err != nil {
			return fmt.Errorf("postgres: failed to marshal activity info: %w", err)
		}
		infoJSON = raw
	}

	// Insert command definition
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		schema.FeedActivity.Table,
		schema.FeedActivity.ID,
		schema.FeedActivity.UserID,
		schema.FeedActivity.Username,
		schema.FeedActivity.ActivityType,
		schema.FeedActivity.ActivityInfo,
		schema.FeedActivity.CreatedAt,
	)

	// Execute against the pool
	_, err := repository.pool.Exec(context, query,
		activity.ID,
		activity.UserID,
		activity.Username,
		string(activity.Type),
		infoJSON,
		activity.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create activity: %w", err)
	}

	return nil
}

/*
ListRecent returns the newest feed entries.

Description: Orders by creation timestamp descending with the time-ordered
UUID as a tiebreaker, giving a stable total order even for entries written
within the same millisecond.

Parameters:
  - context: context.Context
  - limit: int

Returns:
  - []*Activity: Newest entries first
  - error: Query or scan failures
*/
func (repository *activityRepository) ListRecent(context context.Context, limit int) ([]*Activity, error) {

	// Ordered retrieval query
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1
	`,
		schema.FeedActivity.ID,
		schema.FeedActivity.UserID,
		schema.FeedActivity.Username,
		schema.FeedActivity.ActivityType,
		schema.FeedActivity.ActivityInfo,
		schema.FeedActivity.CreatedAt,
		schema.FeedActivity.Table,
		schema.FeedActivity.CreatedAt,
		schema.FeedActivity.ID,
	)

	// Retrieve rows from pool
	rows, err := repository.pool.Query(context, query, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list activities: %w", err)
	}
	defer rows.Close()

	// Row iteration and entity hydration
	var activities []*Activity
	for rows.Next() {
		var activity Activity
		var activityType string
		var infoJSON []byte

		err := rows.Scan(
			&activity.ID,
			&activity.UserID,
			&activity.Username,
			&activityType,
			&infoJSON,
			&activity.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres: failed to scan activity: %w", err)
		}

		activity.Type = ActivityType(activityType)

		// Payload deserialisation (nullable)
		if len(infoJSON) > 0 {
			var info ActivityInfo
			if err := json.Unmarshal(infoJSON, &info); err != nil {
				return nil, fmt.Errorf("postgres: failed to unmarshal activity info: %w", err)
			}
			activity.Info = &info
		}

		activities = append(activities, &activity)
	}

	return activities, nil
}

// # User Directory Implementation

// userDirectory implements [UserDirectory] against the accounts table.
type userDirectory struct {
	pool *pgxpool.Pool
}

// NewUserDirectory constructs a PostgreSQL backed actor resolver.
func NewUserDirectory(pool *pgxpool.Pool) UserDirectory {
	return &userDirectory{pool: pool}
}

/*
FindIDByUsername resolves a login name to its account ID.

Parameters:
  - context: context.Context
  - username: string (Login name)

Returns:
  - string: Account UUID
  - error: apperr.NotFound on absent rows
*/
func (directory *userDirectory) FindIDByUsername(context context.Context, username string) (string, error) {

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.UserAccount.ID, schema.UserAccount.Table, schema.UserAccount.Username)

	var id string
	err := directory.pool.QueryRow(context, query, username).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperr.NotFound("user")
		}
		return "", fmt.Errorf("postgres: failed to resolve username: %w", err)
	}

	return id, nil
}

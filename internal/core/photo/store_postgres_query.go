// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/database/schema"
)

// # Aggregate Queries

/*
MostRecent returns the user's newest photo by upload time, deleted or not.
*/
func (repository *photoRepository) MostRecent(context context.Context, userID string) (*Photo, error) {

	// Newest-first with the time-ordered ID as tiebreaker
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT 1
	`,
		schema.Photo.ID, schema.Photo.UserID, schema.Photo.FileName, schema.Photo.IsDelete, schema.Photo.CreatedAt,
		schema.Photo.Table,
		schema.Photo.UserID,
		schema.Photo.CreatedAt, schema.Photo.ID,
	)

	var photo Photo
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&photo.ID,
		&photo.UserID,
		&photo.FileName,
		&photo.IsDelete,
		&photo.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("photo")
		}
		return nil, fmt.Errorf("postgres: failed to find most recent photo: %w", err)
	}

	return &photo, nil
}

/*
MostCommented returns the user's visible photo with the most visible
comments.

Description: The LEFT JOIN keeps zero-comment photos in the running, and the
join condition (rather than a WHERE clause) is what excludes hidden comments
without dropping their photo. Ties break toward the newer photo.
*/
func (repository *photoRepository) MostCommented(context context.Context, userID string) (*Photo, int, error) {

	query := fmt.Sprintf(`
		SELECT p.%s, p.%s, p.%s, p.%s, COUNT(c.%s) AS comment_count
		FROM %s p
		LEFT JOIN %s c ON c.%s = p.%s AND c.%s = FALSE
		WHERE p.%s = $1 AND p.%s = FALSE
		GROUP BY p.%s, p.%s, p.%s, p.%s
		ORDER BY comment_count DESC, p.%s DESC, p.%s DESC
		LIMIT 1
	`,
		schema.Photo.ID, schema.Photo.UserID, schema.Photo.FileName, schema.Photo.CreatedAt, schema.PhotoComment.ID,
		schema.Photo.Table,
		schema.PhotoComment.Table, schema.PhotoComment.PhotoID, schema.Photo.ID, schema.PhotoComment.IsDelete,
		schema.Photo.UserID, schema.Photo.IsDelete,
		schema.Photo.ID, schema.Photo.UserID, schema.Photo.FileName, schema.Photo.CreatedAt,
		schema.Photo.CreatedAt, schema.Photo.ID,
	)

	var photo Photo
	var count int
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&photo.ID,
		&photo.UserID,
		&photo.FileName,
		&photo.CreatedAt,
		&count,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperr.NotFound("photo")
		}
		return nil, 0, fmt.Errorf("postgres: failed to find most commented photo: %w", err)
	}

	return &photo, count, nil
}

/*
ListMentioned returns the visible photos carrying a visible comment that
mentions the given user.

Description: DISTINCT collapses multiple mentioning comments on the same
photo into one feed row. The owner's display name falls back to "Unknown"
when the owning account has been purged.
*/
func (repository *photoRepository) ListMentioned(context context.Context, userID string) ([]*MentionedPhoto, error) {

	query := fmt.Sprintf(`
		SELECT DISTINCT p.%s, p.%s, p.%s, COALESCE(a.%s, 'Unknown') AS owner_name
		FROM %s m
		JOIN %s c ON m.%s = c.%s AND c.%s = FALSE
		JOIN %s p ON c.%s = p.%s AND p.%s = FALSE
		LEFT JOIN %s a ON p.%s = a.%s
		WHERE m.%s = $1
		ORDER BY p.%s DESC
	`,
		schema.Photo.ID, schema.Photo.FileName, schema.Photo.UserID, schema.UserAccount.DisplayName,
		schema.PhotoMention.Table,
		schema.PhotoComment.Table, schema.PhotoMention.CommentID, schema.PhotoComment.ID, schema.PhotoComment.IsDelete,
		schema.Photo.Table, schema.PhotoComment.PhotoID, schema.Photo.ID, schema.Photo.IsDelete,
		schema.UserAccount.Table, schema.Photo.UserID, schema.UserAccount.ID,
		schema.PhotoMention.UserID,
		schema.Photo.ID,
	)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list mentioned photos: %w", err)
	}
	defer rows.Close()

	var items []*MentionedPhoto
	for rows.Next() {
		var item MentionedPhoto
		if err := rows.Scan(&item.PhotoID, &item.FileName, &item.OwnerID, &item.OwnerName); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan mentioned photo: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

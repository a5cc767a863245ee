// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
PostgreSQL implementation of the photo data access layer.

It leans on a few Postgres specifics to keep round-trips low:
  - ANY($1) array parameters hydrate comments and mentions for a whole
    profile page in two queries instead of one per photo.
  - Filtered LEFT JOINs compute visible-comment counts inside the aggregate.
  - Transactions keep a comment and its mention rows atomic.
*/
package photo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/database/schema"
)

// # PostgreSQL Repository

// photoRepository implements the [PhotoRepository] interface using pgx.
type photoRepository struct {
	pool *pgxpool.Pool
}

// NewPhotoRepository constructs a PostgreSQL backed photo store.
func NewPhotoRepository(pool *pgxpool.Pool) PhotoRepository {
	return &photoRepository{pool: pool}
}

// # Photo Rows

/*
Create persists a new photo record.
*/
func (repository *photoRepository) Create(context context.Context, photo *Photo) error {

	// Insert command definition
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.Photo.Table,
		schema.Photo.ID,
		schema.Photo.UserID,
		schema.Photo.FileName,
		schema.Photo.IsDelete,
		schema.Photo.CreatedAt,
	)

	// Execute against the pool
	_, err := repository.pool.Exec(context, query,
		photo.ID,
		photo.UserID,
		photo.FileName,
		photo.IsDelete,
		photo.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create photo: %w", err)
	}

	return nil
}

/*
FindByID returns the photo row regardless of its visibility flag.

Returns:
  - *Photo: Bare photo row, without comments
  - error: apperr.NotFound on absent rows
*/
func (repository *photoRepository) FindByID(context context.Context, id string) (*Photo, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Photo.ID, schema.Photo.UserID, schema.Photo.FileName, schema.Photo.IsDelete, schema.Photo.CreatedAt,
		schema.Photo.Table,
		schema.Photo.ID,
	)

	var photo Photo
	err := repository.pool.QueryRow(context, query, id).Scan(
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
		return nil, fmt.Errorf("postgres: failed to find photo by id: %w", err)
	}

	return &photo, nil
}

/*
SoftDelete flips the photo's visibility flag.
*/
func (repository *photoRepository) SoftDelete(context context.Context, id string) error {

	// Visibility flag update
	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.Photo.Table, schema.Photo.IsDelete, schema.Photo.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete photo: %w", err)
	}

	// Affected row verification
	if result.RowsAffected() == 0 {
		return apperr.NotFound("photo")
	}

	return nil
}

/*
ListByUser returns a user's visible photos hydrated with comments and
mentions.

Description: Runs three queries regardless of profile size: the photo page,
the visible comments for every photo on it, and the mentions for every
comment found. Commenter identity is resolved through a LEFT JOIN so a
comment survives its author's purge.
*/
func (repository *photoRepository) ListByUser(context context.Context, userID string) ([]*Photo, error) {

	// Photo page, newest first
	photoQuery := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s = FALSE
		ORDER BY %s DESC, %s DESC
	`,
		schema.Photo.ID, schema.Photo.UserID, schema.Photo.FileName, schema.Photo.CreatedAt,
		schema.Photo.Table,
		schema.Photo.UserID, schema.Photo.IsDelete,
		schema.Photo.CreatedAt, schema.Photo.ID,
	)

	rows, err := repository.pool.Query(context, photoQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list photos: %w", err)
	}
	defer rows.Close()

	var photos []*Photo
	photosByID := map[string]*Photo{}
	var photoIDs []string

	for rows.Next() {
		var photo Photo
		if err := rows.Scan(&photo.ID, &photo.UserID, &photo.FileName, &photo.CreatedAt); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan photo: %w", err)
		}
		photo.Comments = []*Comment{}
		photos = append(photos, &photo)
		photosByID[photo.ID] = &photo
		photoIDs = append(photoIDs, photo.ID)
	}
	rows.Close()

	if len(photos) == 0 {
		return photos, nil
	}

	// Visible comments for the whole page, oldest first within a photo
	if err := repository.hydrateComments(context, photosByID, photoIDs); err != nil {
		return nil, err
	}

	return photos, nil
}

// hydrateComments attaches visible comments and their mentions to the given
// photos in two array-parameter queries.
func (repository *photoRepository) hydrateComments(context context.Context, photosByID map[string]*Photo, photoIDs []string) error {

	// Comment retrieval with commenter identity resolution
	commentQuery := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, a.%s, a.%s
		FROM %s c
		LEFT JOIN %s a ON c.%s = a.%s
		WHERE c.%s = ANY($1) AND c.%s = FALSE
		ORDER BY c.%s ASC, c.%s ASC
	`,
		schema.PhotoComment.ID, schema.PhotoComment.PhotoID, schema.PhotoComment.UserID,
		schema.PhotoComment.Body, schema.PhotoComment.CreatedAt,
		schema.UserAccount.ID, schema.UserAccount.DisplayName,
		schema.PhotoComment.Table,
		schema.UserAccount.Table, schema.PhotoComment.UserID, schema.UserAccount.ID,
		schema.PhotoComment.PhotoID, schema.PhotoComment.IsDelete,
		schema.PhotoComment.CreatedAt, schema.PhotoComment.ID,
	)

	rows, err := repository.pool.Query(context, commentQuery, photoIDs)
	if err != nil {
		return fmt.Errorf("postgres: failed to list comments: %w", err)
	}
	defer rows.Close()

	commentsByID := map[string]*Comment{}
	var commentIDs []string

	for rows.Next() {
		var comment Comment
		var commenterID, commenterName *string

		err := rows.Scan(
			&comment.ID,
			&comment.PhotoID,
			&comment.UserID,
			&comment.Body,
			&comment.CreatedAt,
			&commenterID,
			&commenterName,
		)
		if err != nil {
			return fmt.Errorf("postgres: failed to scan comment: %w", err)
		}

		// A purged author leaves the comment without an identity
		if commenterID != nil {
			comment.Commenter = &CommenterRef{UserID: *commenterID, DisplayName: *commenterName}
		}

		if parent, ok := photosByID[comment.PhotoID]; ok {
			parent.Comments = append(parent.Comments, &comment)
		}
		commentsByID[comment.ID] = &comment
		commentIDs = append(commentIDs, comment.ID)
	}
	rows.Close()

	if len(commentIDs) == 0 {
		return nil
	}

	// Mention retrieval for every comment on the page
	mentionQuery := fmt.Sprintf(`
		SELECT %s, %s, %s
		FROM %s
		WHERE %s = ANY($1)
	`,
		schema.PhotoMention.CommentID, schema.PhotoMention.UserID, schema.PhotoMention.DisplayName,
		schema.PhotoMention.Table,
		schema.PhotoMention.CommentID,
	)

	mentionRows, err := repository.pool.Query(context, mentionQuery, commentIDs)
	if err != nil {
		return fmt.Errorf("postgres: failed to list mentions: %w", err)
	}
	defer mentionRows.Close()

	for mentionRows.Next() {
		var commentID string
		var mention Mention
		if err := mentionRows.Scan(&commentID, &mention.UserID, &mention.DisplayName); err != nil {
			return fmt.Errorf("postgres: failed to scan mention: %w", err)
		}
		if parent, ok := commentsByID[commentID]; ok {
			parent.Mentions = append(parent.Mentions, mention)
		}
	}

	return nil
}

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

// # Comment Rows

/*
CreateComment persists a comment and its mentions atomically.

Description: The comment row and the mention rows share one transaction. The
mention table's composite primary key (comment, user) backstops the service
layer's deduplication; a duplicate pair aborts the transaction rather than
silently double-tagging.
*/
func (repository *photoRepository) CreateComment(context context.Context, comment *Comment) error {

	// Transaction boundary for the comment aggregate
	tx, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin comment transaction: %w", err)
	}
	defer tx.Rollback(context)

	// Comment row insertion
	commentQuery := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		schema.PhotoComment.Table,
		schema.PhotoComment.ID,
		schema.PhotoComment.PhotoID,
		schema.PhotoComment.UserID,
		schema.PhotoComment.Body,
		schema.PhotoComment.IsDelete,
		schema.PhotoComment.CreatedAt,
	)

	_, err = tx.Exec(context, commentQuery,
		comment.ID,
		comment.PhotoID,
		comment.UserID,
		comment.Body,
		comment.IsDelete,
		comment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create comment: %w", err)
	}

	// Mention rows ride in the same transaction
	if len(comment.Mentions) > 0 {
		batch := &pgx.Batch{}
		mentionQuery := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s)
			VALUES ($1, $2, $3)
		`, schema.PhotoMention.Table, schema.PhotoMention.CommentID, schema.PhotoMention.UserID, schema.PhotoMention.DisplayName)

		for _, mention := range comment.Mentions {
			batch.Queue(mentionQuery, comment.ID, mention.UserID, mention.DisplayName)
		}

		result := tx.SendBatch(context, batch)
		for i := 0; i < len(comment.Mentions); i++ {
			if _, err := result.Exec(); err != nil {
				result.Close()
				return fmt.Errorf("postgres: failed to insert mention %d: %w", i, err)
			}
		}
		if err := result.Close(); err != nil {
			return fmt.Errorf("postgres: failed to close mention batch: %w", err)
		}
	}

	// Commit the aggregate
	if err := tx.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit comment transaction: %w", err)
	}

	return nil
}

/*
FindCommentByID returns the comment row regardless of its visibility flag.

Returns:
  - *Comment: Bare comment row, without mentions
  - error: apperr.NotFound on absent rows
*/
func (repository *photoRepository) FindCommentByID(context context.Context, id string) (*Comment, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.PhotoComment.ID, schema.PhotoComment.PhotoID, schema.PhotoComment.UserID,
		schema.PhotoComment.Body, schema.PhotoComment.IsDelete, schema.PhotoComment.CreatedAt,
		schema.PhotoComment.Table,
		schema.PhotoComment.ID,
	)

	var comment Comment
	err := repository.pool.QueryRow(context, query, id).Scan(
		&comment.ID,
		&comment.PhotoID,
		&comment.UserID,
		&comment.Body,
		&comment.IsDelete,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("comment")
		}
		return nil, fmt.Errorf("postgres: failed to find comment by id: %w", err)
	}

	return &comment, nil
}

/*
SoftDeleteComment flips the comment's visibility flag.
*/
func (repository *photoRepository) SoftDeleteComment(context context.Context, id string) error {

	query := fmt.Sprintf(`UPDATE %s SET %s = TRUE WHERE %s = $1`,
		schema.PhotoComment.Table, schema.PhotoComment.IsDelete, schema.PhotoComment.ID)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete comment: %w", err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("comment")
	}

	return nil
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/database/schema"
)

// # PostgreSQL Unit of Work

// purgeStore implements [PurgeStore] using pgx transactions.
type purgeStore struct {
	pool *pgxpool.Pool
}

// NewPurgeStore constructs a PostgreSQL backed purge store.
func NewPurgeStore(pool *pgxpool.Pool) PurgeStore {
	return &purgeStore{pool: pool}
}

// Begin starts a new purge transaction.
func (store *purgeStore) Begin(context context.Context) (PurgeTx, error) {
	tx, err := store.pool.Begin(context)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to begin purge transaction: %w", err)
	}
	return &purgeTx{tx: tx}, nil
}

// purgeTx implements [PurgeTx] over a single pgx transaction.
type purgeTx struct {
	tx pgx.Tx
}

/*
DeleteOwnedPhotos removes the user's photos with their comment and mention
rows.

Description: Children go first so no statement ever violates a foreign key:
mentions under comments under owned photos, then those comments, then the
photo rows themselves. Soft-deleted rows are purged the same as visible
ones.
*/
func (unit *purgeTx) DeleteOwnedPhotos(context context.Context, userID string) (int64, error) {

	// Mentions inside comments on the user's photos
	mentionQuery := fmt.Sprintf(`
		DELETE FROM %s m
		USING %s c, %s p
		WHERE m.%s = c.%s AND c.%s = p.%s AND p.%s = $1
	`,
		schema.PhotoMention.Table,
		schema.PhotoComment.Table, schema.Photo.Table,
		schema.PhotoMention.CommentID, schema.PhotoComment.ID,
		schema.PhotoComment.PhotoID, schema.Photo.ID,
		schema.Photo.UserID,
	)
	if _, err := unit.tx.Exec(context, mentionQuery, userID); err != nil {
		return 0, fmt.Errorf("postgres: failed to purge mentions on owned photos: %w", err)
	}

	// Comments on the user's photos, regardless of author
	commentQuery := fmt.Sprintf(`
		DELETE FROM %s c
		USING %s p
		WHERE c.%s = p.%s AND p.%s = $1
	`,
		schema.PhotoComment.Table,
		schema.Photo.Table,
		schema.PhotoComment.PhotoID, schema.Photo.ID,
		schema.Photo.UserID,
	)
	if _, err := unit.tx.Exec(context, commentQuery, userID); err != nil {
		return 0, fmt.Errorf("postgres: failed to purge comments on owned photos: %w", err)
	}

	// The photo rows themselves
	photoQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.Photo.Table, schema.Photo.UserID)

	result, err := unit.tx.Exec(context, photoQuery, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to purge photos: %w", err)
	}

	return result.RowsAffected(), nil
}

/*
DeleteAuthoredComments removes the user's comments on other people's photos.

Description: Runs after [DeleteOwnedPhotos], so what remains of the user's
comments is exactly those on surviving photos. Mention rows inside them go
first.
*/
func (unit *purgeTx) DeleteAuthoredComments(context context.Context, userID string) (int64, error) {

	// Mentions inside the user's remaining comments
	mentionQuery := fmt.Sprintf(`
		DELETE FROM %s m
		USING %s c
		WHERE m.%s = c.%s AND c.%s = $1
	`,
		schema.PhotoMention.Table,
		schema.PhotoComment.Table,
		schema.PhotoMention.CommentID, schema.PhotoComment.ID,
		schema.PhotoComment.UserID,
	)
	if _, err := unit.tx.Exec(context, mentionQuery, userID); err != nil {
		return 0, fmt.Errorf("postgres: failed to purge mentions in authored comments: %w", err)
	}

	// The comment rows themselves
	commentQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.PhotoComment.Table, schema.PhotoComment.UserID)

	result, err := unit.tx.Exec(context, commentQuery, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to purge authored comments: %w", err)
	}

	return result.RowsAffected(), nil
}

/*
DeleteActivities removes the user's feed entries.
*/
func (unit *purgeTx) DeleteActivities(context context.Context, userID string) (int64, error) {

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.FeedActivity.Table, schema.FeedActivity.UserID)

	result, err := unit.tx.Exec(context, query, userID)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to purge activities: %w", err)
	}

	return result.RowsAffected(), nil
}

/*
DeleteUser removes the account row and its sessions.
*/
func (unit *purgeTx) DeleteUser(context context.Context, userID string) error {

	// Sessions go explicitly even though the schema cascades them
	sessionQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserSession.Table, schema.UserSession.UserID)
	if _, err := unit.tx.Exec(context, sessionQuery, userID); err != nil {
		return fmt.Errorf("postgres: failed to purge sessions: %w", err)
	}

	accountQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserAccount.Table, schema.UserAccount.ID)

	result, err := unit.tx.Exec(context, accountQuery, userID)
	if err != nil {
		return fmt.Errorf("postgres: failed to purge account: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("user")
	}

	return nil
}

// Commit makes the purge permanent.
func (unit *purgeTx) Commit(context context.Context) error {
	return unit.tx.Commit(context)
}

// Rollback discards the purge.
func (unit *purgeTx) Rollback(context context.Context) error {
	return unit.tx.Rollback(context)
}

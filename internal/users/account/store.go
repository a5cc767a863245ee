// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import "context"

// # Purge Unit of Work

// PurgeStore opens purge transactions.
type PurgeStore interface {

	// Begin starts a new purge transaction. The caller owns its lifecycle
	// and must call Commit or Rollback exactly once.
	Begin(context context.Context) (PurgeTx, error)
}

// PurgeTx is the unit of work for one account purge. Every method runs
// inside the same database transaction; nothing is visible until Commit.
type PurgeTx interface {

	/*
		DeleteOwnedPhotos removes the user's photos along with every
		comment and mention attached to them.

		Returns:
		  - int64: Number of photo rows removed
		  - error: Execution failure
	*/
	DeleteOwnedPhotos(context context.Context, userID string) (int64, error)

	/*
		DeleteAuthoredComments removes comments the user wrote on other
		people's photos, including the mention rows inside them.

		Returns:
		  - int64: Number of comment rows removed
		  - error: Execution failure
	*/
	DeleteAuthoredComments(context context.Context, userID string) (int64, error)

	/*
		DeleteActivities removes the user's feed entries.

		Returns:
		  - int64: Number of activity rows removed
		  - error: Execution failure
	*/
	DeleteActivities(context context.Context, userID string) (int64, error)

	/*
		DeleteUser removes the account row and its sessions.

		Returns:
		  - error: apperr.NotFound if the account does not exist
	*/
	DeleteUser(context context.Context, userID string) error

	// Commit makes every deletion in the unit permanent.
	Commit(context context.Context) error

	// Rollback discards the unit. Safe to call after Commit.
	Rollback(context context.Context) error
}

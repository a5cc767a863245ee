// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles destructive account lifecycle operations.

Its single responsibility is the full purge: permanently removing a user and
every trace of their content in one atomic unit. This is deliberately kept
apart from the auth package, which only ever soft-deletes or revokes.

# Atomicity

A purge touches four stores (photos, comments, activities, the account row
itself) and must never be observed half-done. All deletions run inside one
database transaction; any failure rolls the whole purge back.
*/
package account

// PurgeReport summarises what an account purge removed.
type PurgeReport struct {
	PhotosDeleted     int64 `json:"photos_deleted"`
	CommentsDeleted   int64 `json:"comments_deleted"`
	ActivitiesDeleted int64 `json:"activities_deleted"`
}

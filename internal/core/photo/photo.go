// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package photo implements the photo and comment management layer.

It defines the core domain entities (Photo, Comment, Mention) and the logic
for uploads, commenting, soft-deletion and the per-user aggregate queries
that drive profile pages.

# Soft Deletion

Photos and comments are never physically removed by their owners. Deletion
flips a visibility flag, which keeps identifiers stable for anything still
referencing them and lets moderation review what was removed. Physical
removal happens only during a full account purge.
*/
package photo

import "time"

// # Domain Entities

// Photo represents a single uploaded image owned by a user.
//
// FileName is the storage object key, not a user-facing URL. Handlers
// exchange it for a short-lived presigned link at read time.
type Photo struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	FileName  string     `json:"file_name"`
	IsDelete  bool       `json:"-"`
	CreatedAt time.Time  `json:"date_time"`
	Comments  []*Comment `json:"comments,omitempty"`
	URL       string     `json:"url,omitempty"` // Presigned link, populated by the HTTP layer.
}

// PhotoCount pairs a photo with its visible comment total for the
// most-commented aggregate.
type PhotoCount struct {
	Photo        *Photo `json:"photo"`
	CommentCount int    `json:"comment_count"`
}

// # Field Identifiers

const (
	FieldFileName = "file_name"
	FieldComment  = "comment"
	FieldPhotoID  = "photo_id"
	FieldItems    = "items"
)

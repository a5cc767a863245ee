// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import "context"

// # Photo & Comment Data Access

// PhotoRepository defines the data access contract for photos, comments and
// mentions.
type PhotoRepository interface {

	/*
		Create persists a new photo record.

		Parameters:
		  - context: context.Context
		  - photo: *Photo

		Returns:
		  - error: Storage failure
	*/
	Create(context context.Context, photo *Photo) error

	/*
		FindByID returns the photo with the given ID, deleted or not.

		Description: The row is returned regardless of its visibility flag so
		the service layer can distinguish "gone" from "hidden" when enforcing
		ownership and commentability rules.

		Returns:
		  - *Photo: Bare photo row, without comments
		  - error: apperr.NotFound if no row exists
	*/
	FindByID(context context.Context, id string) (*Photo, error)

	/*
		SoftDelete flips the photo's visibility flag.

		Returns:
		  - error: apperr.NotFound if no row exists
	*/
	SoftDelete(context context.Context, id string) error

	/*
		ListByUser returns a user's visible photos, newest first, each
		hydrated with its visible comments, commenter identities and
		mentions.

		Returns:
		  - []*Photo: Fully hydrated photos
		  - error: Storage failure
	*/
	ListByUser(context context.Context, userID string) ([]*Photo, error)

	/*
		CreateComment persists a comment and its mentions atomically.

		Description: The comment row and all mention rows commit or roll
		back together, so a half-written mention list can never be observed.

		Parameters:
		  - context: context.Context
		  - comment: *Comment (Mentions already deduplicated)

		Returns:
		  - error: Storage failure
	*/
	CreateComment(context context.Context, comment *Comment) error

	/*
		FindCommentByID returns the comment with the given ID, deleted or
		not, without its mention list.

		Returns:
		  - error: apperr.NotFound if no row exists
	*/
	FindCommentByID(context context.Context, id string) (*Comment, error)

	/*
		SoftDeleteComment flips the comment's visibility flag.

		Returns:
		  - error: apperr.NotFound if no row exists
	*/
	SoftDeleteComment(context context.Context, id string) error

	/*
		MostRecent returns the user's newest photo by upload time, counting
		soft-deleted photos as well.

		Returns:
		  - *Photo: Bare photo row
		  - error: apperr.NotFound if the user has no photos at all
	*/
	MostRecent(context context.Context, userID string) (*Photo, error)

	/*
		MostCommented returns the user's visible photo with the most visible
		comments.

		Description: Ties break toward the newer photo. Photos with zero
		visible comments still qualify, so any user with at least one
		visible photo gets a result.

		Returns:
		  - *Photo: Bare photo row
		  - int: Visible comment count
		  - error: apperr.NotFound if the user has no visible photos
	*/
	MostCommented(context context.Context, userID string) (*Photo, int, error)

	/*
		ListMentioned returns the visible photos that carry a visible
		comment mentioning the given user, newest photo first.

		Description: The owner's display name is resolved at read time and
		falls back to "Unknown" when the owning account no longer exists.

		Returns:
		  - []*MentionedPhoto: One row per photo
		  - error: Storage failure
	*/
	ListMentioned(context context.Context, userID string) ([]*MentionedPhoto, error)
}

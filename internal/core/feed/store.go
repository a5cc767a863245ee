// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import "context"

// # Activity Data Access

// ActivityRepository defines the data access contract for feed entries.
type ActivityRepository interface {

	/*
		Create persists a new feed entry.

		Parameters:
		  - context: context.Context
		  - activity: *Activity

		Returns:
		  - error: Storage failure
	*/
	Create(context context.Context, activity *Activity) error

	/*
		ListRecent returns the newest entries, most recent first.

		Description: Ordering is by creation timestamp descending with the
		time-ordered entry ID as a tiebreaker, so two entries written in the
		same instant still list deterministically.

		Parameters:
		  - context: context.Context
		  - limit: int

		Returns:
		  - []*Activity: Newest entries first
		  - error: Storage failure
	*/
	ListRecent(context context.Context, limit int) ([]*Activity, error)
}

// # Actor Resolution

// UserDirectory resolves actor usernames to account identifiers at record time.
type UserDirectory interface {

	/*
		FindIDByUsername returns the account ID for a login name.

		Returns:
		  - string: Account UUID
		  - error: apperr.NotFound if no such account
	*/
	FindIDByUsername(context context.Context, username string) (string, error)
}

// # Recent-Feed Cache

// RecentFeedCache is a short-TTL cache in front of the recent-activity query.
// Implementations must treat a miss and a backend failure identically.
type RecentFeedCache interface {

	// Get returns the cached page for the given limit, or found=false.
	Get(context context.Context, limit int) (activities []*Activity, found bool, err error)

	// Set stores a page for the given limit with the configured TTL.
	Set(context context.Context, limit int, activities []*Activity) error

	// Invalidate drops every cached page after a new entry is recorded.
	Invalidate(context context.Context) error
}

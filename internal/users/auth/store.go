// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for member accounts.
type UserRepository interface {

	/*
		Create persists a new user account.

		Returns:
		  - error: apperr.Conflict when the username is already taken
	*/
	Create(context context.Context, user *User) error

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given login name.

		Returns:
		  - error: apperr.NotFound if missing
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		List returns one page of member accounts for the directory, ordered
		by display name.

		Returns:
		  - []*User: The requested page
		  - int: Total account count (for pagination metadata)
		  - error: Storage failure
	*/
	List(context context.Context, limit, offset int) ([]*User, int, error)
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh sessions.
type SessionRepository interface {

	// Create persists a new session row.
	Create(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the live session carrying the given token
		hash.

		Description: Revoked and expired sessions do not resolve; the caller
		treats them as unauthorized.

		Returns:
		  - error: apperr.NotFound if no live session matches
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// Revoke marks a single session as revoked.
	Revoke(context context.Context, sessionID string) error

	// RevokeAll marks every session of a user as revoked.
	RevokeAll(context context.Context, userID string) error
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/database/schema"
	"github.com/taibuivan/pictura/internal/platform/dberr"
)

// # PostgreSQL Repositories

// userRepository implements the [UserRepository] interface using pgx.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed user store.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

/*
Create persists a new user account.

Description: The unique index on the username column is the final arbiter of
uniqueness; its violation surfaces as apperr.Conflict through the database
error translation layer.
*/
func (repository *userRepository) Create(context context.Context, user *User) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`,
		schema.UserAccount.Table,
		schema.UserAccount.ID,
		schema.UserAccount.Username,
		schema.UserAccount.Password,
		schema.UserAccount.DisplayName,
		schema.UserAccount.Location,
		schema.UserAccount.Description,
		schema.UserAccount.Occupation,
		schema.UserAccount.CreatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.DisplayName,
		user.Location,
		user.Description,
		user.Occupation,
	).Scan(&user.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "create user")
	}

	return nil
}

/*
FindByID returns the account with the given ID.
*/
func (repository *userRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.ID, id)
}

/*
FindByUsername returns the account with the given login name.
*/
func (repository *userRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findBy(context, schema.UserAccount.Username, username)
}

// findBy fetches a single account row keyed by the given column.
func (repository *userRepository) findBy(context context.Context, column, value string) (*User, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Password,
		schema.UserAccount.DisplayName, schema.UserAccount.Location, schema.UserAccount.Description,
		schema.UserAccount.Occupation, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table,
		column,
	)

	var user User
	err := repository.pool.QueryRow(context, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Location,
		&user.Description,
		&user.Occupation,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("user")
		}
		return nil, fmt.Errorf("postgres: failed to find user: %w", err)
	}

	return &user, nil
}

/*
List returns one page of member accounts ordered by display name, plus the
total account count for pagination metadata.
*/
func (repository *userRepository) List(context context.Context, limit, offset int) ([]*User, int, error) {

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.UserAccount.Table)

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to count users: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`,
		schema.UserAccount.ID, schema.UserAccount.Username,
		schema.UserAccount.DisplayName, schema.UserAccount.Location, schema.UserAccount.Description,
		schema.UserAccount.Occupation, schema.UserAccount.CreatedAt,
		schema.UserAccount.Table,
		schema.UserAccount.DisplayName, schema.UserAccount.Username,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var user User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.DisplayName,
			&user.Location,
			&user.Description,
			&user.Occupation,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	return users, total, nil
}

// # Session Repository

// sessionRepository implements the [SessionRepository] interface using pgx.
type sessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository constructs a PostgreSQL backed session store.
func NewSessionRepository(pool *pgxpool.Pool) SessionRepository {
	return &sessionRepository{pool: pool}
}

/*
Create persists a new session row.
*/
func (repository *sessionRepository) Create(context context.Context, session *Session) error {

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		schema.UserSession.Table,
		schema.UserSession.ID,
		schema.UserSession.UserID,
		schema.UserSession.TokenHash,
		schema.UserSession.UserAgent,
		schema.UserSession.IPAddress,
		schema.UserSession.ExpiresAt,
	)

	_, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.TokenHash,
		session.UserAgent,
		session.IPAddress,
		session.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create session: %w", err)
	}

	return nil
}

/*
FindByTokenHash returns the live session carrying the given token hash.

Description: Revoked and expired rows are filtered in the query itself, so a
resolved session is always usable.
*/
func (repository *sessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {

	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s IS NOT NULL, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL AND %s > NOW()
	`,
		schema.UserSession.ID, schema.UserSession.UserID, schema.UserSession.TokenHash,
		schema.UserSession.UserAgent, schema.UserSession.IPAddress, schema.UserSession.ExpiresAt,
		schema.UserSession.RevokedAt, schema.UserSession.CreatedAt,
		schema.UserSession.Table,
		schema.UserSession.TokenHash, schema.UserSession.RevokedAt, schema.UserSession.ExpiresAt,
	)

	var session Session
	err := repository.pool.QueryRow(context, query, tokenHash).Scan(
		&session.ID,
		&session.UserID,
		&session.TokenHash,
		&session.UserAgent,
		&session.IPAddress,
		&session.ExpiresAt,
		&session.IsRevoked,
		&session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("session")
		}
		return nil, fmt.Errorf("postgres: failed to find session: %w", err)
	}

	return &session, nil
}

/*
Revoke marks a single session as revoked.
*/
func (repository *sessionRepository) Revoke(context context.Context, sessionID string) error {

	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UserSession.Table, schema.UserSession.RevokedAt,
		schema.UserSession.ID, schema.UserSession.RevokedAt)

	if _, err := repository.pool.Exec(context, query, sessionID); err != nil {
		return fmt.Errorf("postgres: failed to revoke session: %w", err)
	}

	return nil
}

/*
RevokeAll marks every session of a user as revoked.
*/
func (repository *sessionRepository) RevokeAll(context context.Context, userID string) error {

	query := fmt.Sprintf(`UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL`,
		schema.UserSession.Table, schema.UserSession.RevokedAt,
		schema.UserSession.UserID, schema.UserSession.RevokedAt)

	if _, err := repository.pool.Exec(context, query, userID); err != nil {
		return fmt.Errorf("postgres: failed to revoke sessions: %w", err)
	}

	return nil
}

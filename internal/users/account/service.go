// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/pictura/internal/platform/apperr"
)

// # Service Layer

// Service orchestrates the account purge.
type Service struct {
	purgeStore PurgeStore
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its store dependency.
func NewService(purgeStore PurgeStore, logger *slog.Logger) *Service {
	return &Service{
		purgeStore: purgeStore,
		logger:     logger,
	}
}

/*
PurgeUser permanently removes an account and all of its content.

Description: Only the account owner may purge themself. The removal spans
owned photos (with their comments and mentions), comments the user wrote
elsewhere, feed entries, sessions and the account row, all inside one
transaction. A failure at any step leaves every store untouched.

Mentions OF the purged user inside other people's surviving comments are
left in place; they are part of those comments, and the display-name
snapshot keeps them readable.

Parameters:
  - context: context.Context
  - userID: string (Account to remove)
  - requesterID: string (Authenticated actor)

Returns:
  - *PurgeReport: Row counts of what was removed
  - error: apperr.Forbidden if the requester is not the account owner,
    apperr.NotFound if the account does not exist,
    apperr.Internal on transaction failures
*/
func (service *Service) PurgeUser(context context.Context, userID, requesterID string) (*PurgeReport, error) {

	// Self-service only
	if userID != requesterID {
		return nil, apperr.Forbidden("Only the account owner can delete this account")
	}

	// Open the unit of work
	unit, err := service.purgeStore.Begin(context)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer unit.Rollback(context)

	report := &PurgeReport{}

	// Content removal, children before parents
	if report.PhotosDeleted, err = unit.DeleteOwnedPhotos(context, userID); err != nil {
		return nil, apperr.Internal(fmt.Errorf("purge_photos_failed: %w", err))
	}
	if report.CommentsDeleted, err = unit.DeleteAuthoredComments(context, userID); err != nil {
		return nil, apperr.Internal(fmt.Errorf("purge_comments_failed: %w", err))
	}
	if report.ActivitiesDeleted, err = unit.DeleteActivities(context, userID); err != nil {
		return nil, apperr.Internal(fmt.Errorf("purge_activities_failed: %w", err))
	}

	// The account row last; NotFound here aborts the whole purge
	if err := unit.DeleteUser(context, userID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, err
		}
		return nil, apperr.Internal(fmt.Errorf("purge_account_failed: %w", err))
	}

	// Nothing above is visible until this succeeds
	if err := unit.Commit(context); err != nil {
		return nil, apperr.Internal(fmt.Errorf("purge_commit_failed: %w", err))
	}

	service.logger.Info("account_purged",
		slog.String("user_id", userID),
		slog.Int64("photos_deleted", report.PhotosDeleted),
		slog.Int64("comments_deleted", report.CommentsDeleted),
		slog.Int64("activities_deleted", report.ActivitiesDeleted),
	)

	return report, nil
}

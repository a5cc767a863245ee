// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/pictura/internal/core/feed"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/validate"
	"github.com/taibuivan/pictura/pkg/uuidv7"
)

// # Comment Operations

/*
AddComment attaches a new comment to a visible photo.

Description: Comments append independently; two users commenting on the same
photo at the same time never conflict. Mentions are deduplicated before the
write so a user tagged twice in one comment is stored once. A new_comment
feed entry is published best-effort after the row commits.

Parameters:
  - context: context.Context
  - input: AddCommentInput

Returns:
  - *Comment: The persisted comment with its final mention list
  - error: Validation errors for an empty body,
    apperr.NotFound if the photo is absent or hidden
*/
func (service *Service) AddComment(context context.Context, input AddCommentInput) (*Comment, error) {

	// An all-whitespace comment is an empty comment
	validator := &validate.Validator{}
	validator.Custom(FieldComment, strings.TrimSpace(input.Body) == "", "Comment cannot be empty")
	validator.UUID(FieldPhotoID, input.PhotoID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Target photo must exist and be visible
	target, err := service.photoRepo.FindByID(context, input.PhotoID)
	if err != nil {
		return nil, err
	}
	if target.IsDelete {
		return nil, apperr.NotFound("photo")
	}

	// Comment construction with a deduplicated mention list
	comment := &Comment{
		ID:        uuidv7.New(),
		PhotoID:   input.PhotoID,
		UserID:    input.UserID,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
		Mentions:  DedupeMentions(input.Mentions),
	}

	// Comment and mentions persist atomically
	if err := service.photoRepo.CreateComment(context, comment); err != nil {
		return nil, err
	}

	service.logger.Info("comment_created",
		slog.String("comment_id", comment.ID),
		slog.String(FieldPhotoID, comment.PhotoID),
		slog.String("user_id", comment.UserID),
		slog.Int("mentions", len(comment.Mentions)),
	)

	// Feed publication, best-effort
	service.activities.Record(context, input.Username, feed.ActivityNewComment, feed.NewCommentInfo(comment.PhotoID, comment.Body))

	return comment, nil
}

/*
SoftDeleteComment hides a comment from all listings.

Description: Only the comment's author may delete it. Mentions inside the
comment disappear from the mention feed along with it.

Parameters:
  - context: context.Context
  - commentID: string (UUID)
  - requesterID: string (Authenticated actor)

Returns:
  - error: apperr.NotFound if absent or already deleted,
    apperr.Forbidden if the requester is not the author
*/
func (service *Service) SoftDeleteComment(context context.Context, commentID, requesterID string) error {

	// Authorship resolution
	comment, err := service.photoRepo.FindCommentByID(context, commentID)
	if err != nil {
		return err
	}

	if comment.IsDelete {
		return apperr.NotFound("comment")
	}

	if comment.UserID != requesterID {
		return apperr.Forbidden("Only the author can delete a comment")
	}

	// Visibility flip
	if err := service.photoRepo.SoftDeleteComment(context, commentID); err != nil {
		return err
	}

	service.logger.Info("comment_deleted",
		slog.String("comment_id", commentID),
		slog.String("user_id", requesterID),
	)

	return nil
}

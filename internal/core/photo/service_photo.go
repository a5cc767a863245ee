// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/pictura/internal/core/feed"
	"github.com/taibuivan/pictura/internal/platform/apperr"
	"github.com/taibuivan/pictura/internal/platform/validate"
	"github.com/taibuivan/pictura/pkg/uuidv7"
)

// # Photo Operations

/*
CreatePhoto registers an uploaded image.

Description: The image bytes are already in object storage by the time this
runs; the service only records the reference. A new_photo feed entry is
published best-effort after the row commits.

Parameters:
  - context: context.Context
  - input: CreatePhotoInput

Returns:
  - *Photo: The persisted photo
  - error: Validation or persistence errors
*/
func (service *Service) CreatePhoto(context context.Context, input CreatePhotoInput) (*Photo, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldFileName, input.FileName)
	validator.UUID("user_id", input.UserID)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Identity and timestamp assignment
	photo := &Photo{
		ID:        uuidv7.New(),
		UserID:    input.UserID,
		FileName:  input.FileName,
		CreatedAt: time.Now().UTC(),
	}

	// Storage persistence
	if err := service.photoRepo.Create(context, photo); err != nil {
		return nil, err
	}

	service.logger.Info("photo_created",
		slog.String(FieldPhotoID, photo.ID),
		slog.String("user_id", photo.UserID),
	)

	// Feed publication, best-effort
	service.activities.Record(context, input.Username, feed.ActivityNewPhoto, feed.NewPhotoInfo(photo.ID))

	return photo, nil
}

/*
SoftDeletePhoto hides a photo from all listings.

Description: Only the owner may delete. The row survives with its visibility
flag flipped, so comment and mention rows keep a valid parent.

Parameters:
  - context: context.Context
  - photoID: string (UUID)
  - requesterID: string (Authenticated actor)

Returns:
  - error: apperr.NotFound if absent or already deleted,
    apperr.Forbidden if the requester is not the owner
*/
func (service *Service) SoftDeletePhoto(context context.Context, photoID, requesterID string) error {

	// Ownership resolution
	photo, err := service.photoRepo.FindByID(context, photoID)
	if err != nil {
		return err
	}

	// An already-hidden photo is indistinguishable from an absent one
	if photo.IsDelete {
		return apperr.NotFound("photo")
	}

	if photo.UserID != requesterID {
		return apperr.Forbidden("Only the owner can delete a photo")
	}

	// Visibility flip
	if err := service.photoRepo.SoftDelete(context, photoID); err != nil {
		return err
	}

	service.logger.Info("photo_deleted",
		slog.String(FieldPhotoID, photoID),
		slog.String("user_id", requesterID),
	)

	return nil
}

/*
ListPhotosOfUser returns a user's visible photos with their visible comments.

Description: Each comment carries its author's public identity when the
account still exists; comments from since-purged accounts are returned
without one. Mentions ride along on every comment.

Parameters:
  - context: context.Context
  - userID: string (Profile owner)

Returns:
  - []*Photo: Newest first, fully hydrated
  - error: Storage failures
*/
func (service *Service) ListPhotosOfUser(context context.Context, userID string) ([]*Photo, error) {
	return service.photoRepo.ListByUser(context, userID)
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"context"

	"github.com/taibuivan/pictura/internal/platform/apperr"
)

// # Aggregate Queries

/*
MostRecentPhoto returns the user's newest photo by upload time.

Description: Soft-deleted photos still count here. The aggregate answers
"when did this user last upload", and a later deletion does not rewrite
that history.

Parameters:
  - context: context.Context
  - userID: string (Profile owner)

Returns:
  - *Photo: Bare photo row, or nil if the user has never uploaded
  - error: Storage failures
*/
func (service *Service) MostRecentPhoto(context context.Context, userID string) (*Photo, error) {
	photo, err := service.photoRepo.MostRecent(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return photo, nil
}

/*
MostCommentedPhoto returns the user's visible photo with the most visible
comments.

Description: Unlike [MostRecentPhoto], this aggregate reflects what visitors
can actually see, so hidden photos and hidden comments are excluded. Ties
break toward the newer photo.

Parameters:
  - context: context.Context
  - userID: string (Profile owner)

Returns:
  - *PhotoCount: Photo plus its visible comment total, or nil if the user
    has no visible photos
  - error: Storage failures
*/
func (service *Service) MostCommentedPhoto(context context.Context, userID string) (*PhotoCount, error) {
	photo, count, err := service.photoRepo.MostCommented(context, userID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &PhotoCount{Photo: photo, CommentCount: count}, nil
}

/*
MentionedPhotos returns the photos on which the user has been mentioned.

Description: Only visible photos carrying a visible mentioning comment
qualify. The feed reports Found=false when the user has never been
mentioned so the UI can render its placeholder instead of an empty list.

Parameters:
  - context: context.Context
  - userID: string (Mentioned user)

Returns:
  - *MentionFeed: Found flag plus one row per photo, newest first
  - error: Storage failures
*/
func (service *Service) MentionedPhotos(context context.Context, userID string) (*MentionFeed, error) {
	items, err := service.photoRepo.ListMentioned(context, userID)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return &MentionFeed{Found: false, Items: []*MentionedPhoto{}}, nil
	}

	return &MentionFeed{Found: true, Items: items}, nil
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"net/http"

	requestutil "github.com/taibuivan/pictura/internal/platform/request"
	"github.com/taibuivan/pictura/internal/platform/respond"
)

// # Profile Aggregates

/*
GET /api/v1/users/{id}/photos/recent.

Description: Returns the user's newest photo by upload time, counting
soft-deleted uploads. Responds with a null photo when the user has never
uploaded.

Request:
  - id: string (Profile owner UUID)

Response:
  - 200: Photo|null
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) MostRecentPhoto(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "id")

	photo, err := handler.service.MostRecentPhoto(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if photo != nil {
		photo.URL = handler.attachURL(request.Context(), photo.FileName)
	}

	respond.OK(writer, photo)
}

/*
GET /api/v1/users/{id}/photos/most-commented.

Description: Returns the user's visible photo with the most visible
comments, plus the count. Responds with null when the user has no visible
photos.

Request:
  - id: string (Profile owner UUID)

Response:
  - 200: PhotoCount|null
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) MostCommentedPhoto(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "id")

	result, err := handler.service.MostCommentedPhoto(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if result != nil {
		result.Photo.URL = handler.attachURL(request.Context(), result.Photo.FileName)
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/users/{id}/mentions.

Description: Returns the photos on which the user has been mentioned. The
found flag distinguishes "never mentioned" from an empty page.

Request:
  - id: string (Mentioned user UUID)

Response:
  - 200: MentionFeed
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) MentionedPhotos(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "id")

	mentionFeed, err := handler.service.MentionedPhotos(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	for _, item := range mentionFeed.Items {
		item.URL = handler.attachURL(request.Context(), item.FileName)
	}

	respond.OK(writer, mentionFeed)
}

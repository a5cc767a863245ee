// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"fmt"
	"net/http"

	requestutil "github.com/taibuivan/pictura/internal/platform/request"
	"github.com/taibuivan/pictura/internal/platform/respond"
	"github.com/taibuivan/pictura/internal/platform/validate"
	"github.com/taibuivan/pictura/pkg/slug"
	"github.com/taibuivan/pictura/pkg/uuidv7"
)

// # Upload Constraints

const (
	// uploadFormField is the multipart field carrying the image bytes.
	uploadFormField = "photo"

	// maxUploadBytes bounds a single upload request body.
	maxUploadBytes = 16 << 20
)

// # Photo Lifecycle

/*
POST /api/v1/photos.

Description: Accepts a multipart upload, stores the image bytes in object
storage under a collision-free key, then registers the photo for the
authenticated user.

Request:
  - photo: file (Multipart field with the image)

Response:
  - 201: Photo: Registered photo with a presigned read link
  - 400: ErrValidation: Missing or oversized file
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) UploadPhoto(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Multipart parsing with a hard size cap
	request.Body = http.MaxBytesReader(writer, request.Body, maxUploadBytes)
	if err := request.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.Error(writer, request, validate.RequiredError(uploadFormField, "A photo file is required"))
		return
	}

	file, header, err := request.FormFile(uploadFormField)
	if err != nil {
		respond.Error(writer, request, validate.RequiredError(uploadFormField, "A photo file is required"))
		return
	}
	defer file.Close()

	// Collision-free object key derived from the original name
	key := fmt.Sprintf("photos/%s/%s-%s", claims.UserID, uuidv7.New(), slug.From(header.Filename))

	if err := handler.blobs.Put(request.Context(), key, file, header.Header.Get("Content-Type")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Register the stored object as a photo
	created, err := handler.service.CreatePhoto(request.Context(), CreatePhotoInput{
		UserID:   claims.UserID,
		Username: claims.Username,
		FileName: key,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	created.URL = handler.attachURL(request.Context(), created.FileName)
	respond.Created(writer, created)
}

/*
DELETE /api/v1/photos/{id}.

Description: Soft-deletes a photo owned by the authenticated user.

Request:
  - id: string (Photo UUID)

Response:
  - 204: No content
  - 403: ErrForbidden: Requester does not own the photo
  - 404: ErrNotFound: Photo absent or already deleted
*/
func (handler *Handler) DeletePhoto(writer http.ResponseWriter, request *http.Request) {
	photoID := requestutil.Param(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SoftDeletePhoto(request.Context(), photoID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /api/v1/users/{id}/photos.

Description: Returns a user's visible photos with their visible comments,
commenter identities and mentions. Each photo carries a presigned read link.

Request:
  - id: string (Profile owner UUID)

Response:
  - 200: []Photo: Newest first, fully hydrated
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) ListPhotosOfUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "id")

	photos, err := handler.service.ListPhotosOfUser(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if photos == nil {
		photos = []*Photo{}
	}
	for _, photo := range photos {
		photo.URL = handler.attachURL(request.Context(), photo.FileName)
	}

	respond.OK(writer, map[string]any{FieldItems: photos})
}

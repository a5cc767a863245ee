// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"net/http"

	requestutil "github.com/taibuivan/pictura/internal/platform/request"
	"github.com/taibuivan/pictura/internal/platform/respond"
)

// # Commenting

// addCommentRequest defines the inbound JSON schema for a new comment.
// Mentions arrive pre-parsed from the client's comment markup.
type addCommentRequest struct {
	Comment  string    `json:"comment"`
	Mentions []Mention `json:"mentions"`
}

/*
POST /api/v1/photos/{id}/comments.

Description: Attaches a comment by the authenticated user to a visible
photo. Duplicate mentions of the same user collapse to one.

Request:
  - id: string (Photo UUID)
  - body: addCommentRequest

Response:
  - 201: Comment: Persisted comment with its final mention list
  - 400: ErrInvalidJSON/Validation: Empty comment or bad payload
  - 404: ErrNotFound: Photo absent or deleted
*/
func (handler *Handler) AddComment(writer http.ResponseWriter, request *http.Request) {
	photoID := requestutil.Param(request, "id")

	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addCommentRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	comment, err := handler.service.AddComment(request.Context(), AddCommentInput{
		PhotoID:  photoID,
		UserID:   claims.UserID,
		Username: claims.Username,
		Body:     input.Comment,
		Mentions: input.Mentions,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, comment)
}

/*
DELETE /api/v1/comments/{id}.

Description: Soft-deletes a comment authored by the authenticated user.

Request:
  - id: string (Comment UUID)

Response:
  - 204: No content
  - 403: ErrForbidden: Requester did not author the comment
  - 404: ErrNotFound: Comment absent or already deleted
*/
func (handler *Handler) DeleteComment(writer http.ResponseWriter, request *http.Request) {
	commentID := requestutil.Param(request, "id")

	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SoftDeleteComment(request.Context(), commentID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

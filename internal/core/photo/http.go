// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
HTTP interface for photo management.

# Routing Strategy

Every endpoint requires an authenticated session; there is no anonymous
browsing. Profile reads are addressed by user ID, mutations by the resource
being mutated, with ownership enforced in the service layer.

The handler translates between the web/JSON layer and the internal domain
[Service].
*/
package photo

import (
	"context"
	"io"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/pictura/internal/platform/middleware"
)

// # Handler Implementation

// BlobStore is the slice of object storage the HTTP layer needs: writing
// uploaded bytes and minting short-lived read links. Satisfied by the
// platform blob store.
type BlobStore interface {
	Put(context context.Context, key string, body io.Reader, contentType string) error
	PresignGet(context context.Context, key string) (string, error)
}

// Handler implements the HTTP layer for photos, comments and mentions.
type Handler struct {
	service *Service
	blobs   BlobStore
}

// NewHandler constructs a new photo [Handler].
func NewHandler(service *Service, blobs BlobStore) *Handler {
	return &Handler{service: service, blobs: blobs}
}

// RegisterRoutes attaches photo, comment and mention endpoints to the root
// API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Group(func(user chi.Router) {
		user.Use(middleware.RequireAuth)

		// Photo lifecycle
		user.Post("/photos", handler.UploadPhoto)
		user.Delete("/photos/{id}", handler.DeletePhoto)

		// Commenting
		user.Post("/photos/{id}/comments", handler.AddComment)
		user.Delete("/comments/{id}", handler.DeleteComment)

		// Profile reads and aggregates
		user.Get("/users/{id}/photos", handler.ListPhotosOfUser)
		user.Get("/users/{id}/photos/recent", handler.MostRecentPhoto)
		user.Get("/users/{id}/photos/most-commented", handler.MostCommentedPhoto)
		user.Get("/users/{id}/mentions", handler.MentionedPhotos)
	})
}

// attachURL fills the presigned read link for a stored object key.
// A presign failure leaves the link empty rather than failing the page.
func (handler *Handler) attachURL(context context.Context, key string) string {
	url, err := handler.blobs.PresignGet(context, key)
	if err != nil {
		return ""
	}
	return url
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/pictura/internal/platform/middleware"
	requestutil "github.com/taibuivan/pictura/internal/platform/request"
	"github.com/taibuivan/pictura/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for account purging.
type Handler struct {
	service *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the account removal endpoint to the root API
// router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Group(func(user chi.Router) {
		user.Use(middleware.RequireAuth)
		user.Delete("/users/{id}", handler.PurgeUser)
	})
}

/*
DELETE /api/v1/users/{id}.

Description: Permanently removes the authenticated user's own account and
all of their content in one atomic operation.

Request:
  - id: string (Account UUID, must match the authenticated user)

Response:
  - 200: PurgeReport: Row counts of what was removed
  - 403: ErrForbidden: Requester is not the account owner
  - 404: ErrNotFound: Account does not exist
*/
func (handler *Handler) PurgeUser(writer http.ResponseWriter, request *http.Request) {
	userID := requestutil.Param(request, "id")

	requesterID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	report, err := handler.service.PurgeUser(request.Context(), userID, requesterID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, report)
}

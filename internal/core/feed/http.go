// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package feed

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/pictura/internal/platform/middleware"
	"github.com/taibuivan/pictura/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for the activity feed.
type Handler struct {
	service *Service
}

// NewHandler constructs a new feed [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches feed endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Group(func(user chi.Router) {
		user.Use(middleware.RequireAuth)
		user.Get("/activities", handler.ListRecent)
	})
}

// # Feed Retrieval

/*
GET /api/v1/activities.

Description: Returns the newest site-wide activities for the landing page
ticker, most recent first.

Request:
  - limit: int (Optional, defaults to the server-side feed page size)

Response:
  - 200: []Activity: Newest entries first
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) ListRecent(writer http.ResponseWriter, request *http.Request) {

	// Optional limit override; service clamps invalid values
	limit := 0
	if raw := request.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	activities, err := handler.service.ListRecent(request.Context(), limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// An empty feed serialises as an empty list, not null
	if activities == nil {
		activities = []*Activity{}
	}

	respond.OK(writer, map[string]any{FieldItems: activities})
}

// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import (
	"context"
	"log/slog"

	"github.com/taibuivan/pictura/internal/core/feed"
)

// # Service Layer

// ActivityRecorder publishes best-effort feed entries for photo events.
// Satisfied by the feed service.
type ActivityRecorder interface {
	Record(context context.Context, username string, activityType feed.ActivityType, info *feed.ActivityInfo)
}

// Service orchestrates the business logic for photos, comments and mentions.
type Service struct {
	photoRepo  PhotoRepository
	activities ActivityRecorder
	logger     *slog.Logger
}

// NewService constructs a new [Service] with its required collaborators.
func NewService(photoRepo PhotoRepository, activities ActivityRecorder, logger *slog.Logger) *Service {
	return &Service{
		photoRepo:  photoRepo,
		activities: activities,
		logger:     logger,
	}
}

// # Service Inputs

// CreatePhotoInput carries everything needed to register an upload.
// Username is the actor's login name, used only for the feed entry.
type CreatePhotoInput struct {
	UserID   string
	Username string
	FileName string
}

// AddCommentInput carries a new comment and the actor writing it.
type AddCommentInput struct {
	PhotoID  string
	UserID   string
	Username string
	Body     string
	Mentions []Mention
}

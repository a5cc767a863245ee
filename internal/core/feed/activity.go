// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package feed implements the site-wide activity stream.

It records noteworthy user actions (registrations, logins, uploads, comments)
and serves the most recent slice of them for the landing page ticker.

# Architecture

Every entry snapshots the actor's username at write time, so the feed remains
readable even after the account is later renamed or purged. Recording is
best-effort: a failed write never fails the user action that triggered it.
*/
package feed

import "time"

// # Activity Types

// ActivityType enumerates the actions the feed records.
type ActivityType string

const (
	ActivityLogin      ActivityType = "login"
	ActivityLogout     ActivityType = "logout"
	ActivityRegister   ActivityType = "register"
	ActivityNewPhoto   ActivityType = "new_photo"
	ActivityNewComment ActivityType = "new_comment"
)

// IsValid reports whether the type is one of the known feed actions.
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityLogin, ActivityLogout, ActivityRegister, ActivityNewPhoto, ActivityNewComment:
		return true
	}
	return false
}

// # Activity Payloads

/*
ActivityInfo carries the type-specific payload of a feed entry.

Only photo and comment events carry a payload. Session events (login, logout,
register) store no payload at all, so the field set below is the union of what
[ActivityNewPhoto] and [ActivityNewComment] need:

  - new_photo:   PhotoID only
  - new_comment: PhotoID plus the comment excerpt
*/
type ActivityInfo struct {
	PhotoID string `json:"photo_id,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// NewPhotoInfo builds the payload for a photo-upload entry.
func NewPhotoInfo(photoID string) *ActivityInfo {
	return &ActivityInfo{PhotoID: photoID}
}

// NewCommentInfo builds the payload for a new-comment entry.
func NewCommentInfo(photoID, comment string) *ActivityInfo {
	return &ActivityInfo{PhotoID: photoID, Comment: comment}
}

// ValidFor reports whether the payload shape matches the activity type.
// Session events must carry no payload; content events must name a photo.
func (info *ActivityInfo) ValidFor(activityType ActivityType) bool {
	switch activityType {
	case ActivityNewPhoto:
		return info != nil && info.PhotoID != "" && info.Comment == ""
	case ActivityNewComment:
		return info != nil && info.PhotoID != "" && info.Comment != ""
	default:
		return info == nil
	}
}

// # Domain Entity

// Activity is a single entry in the site-wide feed.
type Activity struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Username  string        `json:"username"` // Snapshot taken at record time.
	Type      ActivityType  `json:"activity_type"`
	Info      *ActivityInfo `json:"activity_info,omitempty"`
	CreatedAt time.Time     `json:"activity_date"`
}

// # Field Identifiers

const (
	FieldActivityType = "activity_type"
	FieldItems        = "items"
)

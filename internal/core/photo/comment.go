// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import "time"

// # Comments

// Comment is a single remark attached to a photo.
//
// Commenter carries the author's public identity at read time. It is absent
// when the author's account no longer exists; the comment itself survives.
type Comment struct {
	ID        string        `json:"id"`
	PhotoID   string        `json:"photo_id"`
	UserID    string        `json:"user_id"`
	Body      string        `json:"comment"`
	IsDelete  bool          `json:"-"`
	CreatedAt time.Time     `json:"date_time"`
	Commenter *CommenterRef `json:"user,omitempty"`
	Mentions  []Mention     `json:"mentions,omitempty"`
}

// CommenterRef is the public identity of a comment's author.
type CommenterRef struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

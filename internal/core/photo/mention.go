// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo

import "github.com/taibuivan/pictura/pkg/slice"

// # Mentions

// Mention tags a user inside a comment. DisplayName is a snapshot taken when
// the comment was written.
type Mention struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

/*
DedupeMentions collapses repeated mentions of the same user within one
comment.

Description: The first occurrence wins, so the earliest display-name snapshot
is the one kept, and the relative order of the surviving mentions is
preserved.

Parameters:
  - mentions: []Mention (As extracted from the comment markup)

Returns:
  - []Mention: At most one entry per user
*/
func DedupeMentions(mentions []Mention) []Mention {
	if len(mentions) == 0 {
		return mentions
	}

	seen := make(map[string]struct{}, len(mentions))

	return slice.Filter(mentions, func(mention Mention) bool {
		if _, duplicate := seen[mention.UserID]; duplicate {
			return false
		}
		seen[mention.UserID] = struct{}{}
		return true
	})
}

// # Mention Feed

// MentionedPhoto is one row of a user's mention feed: the photo a comment
// mentioning them was left on, plus the photo owner's public identity.
type MentionedPhoto struct {
	PhotoID   string `json:"photo_id"`
	FileName  string `json:"file_name"`
	OwnerID   string `json:"owner_id"`
	OwnerName string `json:"owner_name"`
	URL       string `json:"url,omitempty"` // Presigned link, populated by the HTTP layer.
}

// MentionFeed is the result of the mention-feed query. Found distinguishes
// "never mentioned" from an empty page, so the UI can show its placeholder.
type MentionFeed struct {
	Found bool              `json:"found"`
	Items []*MentionedPhoto `json:"items"`
}

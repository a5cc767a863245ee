// Copyright (c) 2026 Pictura. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package photo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/pictura/internal/core/photo"
)

/*
TestDedupeMentions verifies first-occurrence-wins semantics and stable
ordering of the survivors.
*/
func TestDedupeMentions(t *testing.T) {
	tests := []struct {
		name     string
		input    []photo.Mention
		expected []photo.Mention
	}{
		{
			name:     "nil_passes_through",
			input:    nil,
			expected: nil,
		},
		{
			name:     "no_duplicates",
			input:    []photo.Mention{{UserID: "a", DisplayName: "A"}, {UserID: "b", DisplayName: "B"}},
			expected: []photo.Mention{{UserID: "a", DisplayName: "A"}, {UserID: "b", DisplayName: "B"}},
		},
		{
			name: "first_snapshot_wins",
			input: []photo.Mention{
				{UserID: "a", DisplayName: "Old Name"},
				{UserID: "b", DisplayName: "B"},
				{UserID: "a", DisplayName: "New Name"},
			},
			expected: []photo.Mention{
				{UserID: "a", DisplayName: "Old Name"},
				{UserID: "b", DisplayName: "B"},
			},
		},
		{
			name: "order_preserved_around_removals",
			input: []photo.Mention{
				{UserID: "c", DisplayName: "C"},
				{UserID: "a", DisplayName: "A"},
				{UserID: "c", DisplayName: "C2"},
				{UserID: "b", DisplayName: "B"},
				{UserID: "a", DisplayName: "A2"},
			},
			expected: []photo.Mention{
				{UserID: "c", DisplayName: "C"},
				{UserID: "a", DisplayName: "A"},
				{UserID: "b", DisplayName: "B"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, photo.DedupeMentions(tt.input))
		})
	}
}

package schema

// PhotoMentionTable represents the 'photos.mention' table
type PhotoMentionTable struct {
	Table       string
	CommentID   string
	UserID      string
	DisplayName string
}

// PhotoMention is the schema definition for photos.mention
var PhotoMention = PhotoMentionTable{
	Table:       "photos.mention",
	CommentID:   "commentid",
	UserID:      "userid",
	DisplayName: "displayname",
}

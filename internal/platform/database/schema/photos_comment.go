package schema

// PhotoCommentTable represents the 'photos.comment' table
type PhotoCommentTable struct {
	Table     string
	ID        string
	PhotoID   string
	UserID    string
	Body      string
	IsDelete  string
	CreatedAt string
}

// PhotoComment is the schema definition for photos.comment
var PhotoComment = PhotoCommentTable{
	Table:     "photos.comment",
	ID:        "id",
	PhotoID:   "photoid",
	UserID:    "userid",
	Body:      "body",
	IsDelete:  "isdelete",
	CreatedAt: "createdat",
}

// Columns returns all columns in stable order.
func (t PhotoCommentTable) Columns() []string {
	return []string{t.ID, t.PhotoID, t.UserID, t.Body, t.IsDelete, t.CreatedAt}
}

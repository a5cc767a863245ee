package schema

// PhotoTable represents the 'photos.photo' table
type PhotoTable struct {
	Table     string
	ID        string
	UserID    string
	FileName  string
	IsDelete  string
	CreatedAt string
}

// Photo is the schema definition for photos.photo
var Photo = PhotoTable{
	Table:     "photos.photo",
	ID:        "id",
	UserID:    "userid",
	FileName:  "filename",
	IsDelete:  "isdelete",
	CreatedAt: "createdat",
}

// Columns returns all columns in stable order.
func (t PhotoTable) Columns() []string {
	return []string{t.ID, t.UserID, t.FileName, t.IsDelete, t.CreatedAt}
}

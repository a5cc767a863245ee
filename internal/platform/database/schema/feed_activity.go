package schema

// FeedActivityTable represents the 'feed.activity' table
type FeedActivityTable struct {
	Table        string
	ID           string
	UserID       string
	Username     string
	ActivityType string
	ActivityInfo string
	CreatedAt    string
}

// FeedActivity is the schema definition for feed.activity
var FeedActivity = FeedActivityTable{
	Table:        "feed.activity",
	ID:           "id",
	UserID:       "userid",
	Username:     "username",
	ActivityType: "activitytype",
	ActivityInfo: "activityinfo",
	CreatedAt:    "createdat",
}

// Columns returns all columns in stable order.
func (t FeedActivityTable) Columns() []string {
	return []string{t.ID, t.UserID, t.Username, t.ActivityType, t.ActivityInfo, t.CreatedAt}
}

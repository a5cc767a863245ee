package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table       string
	ID          string
	Username    string
	Password    string
	DisplayName string
	Location    string
	Description string
	Occupation  string
	CreatedAt   string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:       "users.account",
	ID:          "id",
	Username:    "username",
	Password:    "passwordhash",
	DisplayName: "displayname",
	Location:    "location",
	Description: "description",
	Occupation:  "occupation",
	CreatedAt:   "createdat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Password, t.DisplayName,
		t.Location, t.Description, t.Occupation, t.CreatedAt,
	}
}

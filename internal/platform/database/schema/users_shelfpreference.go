package schema

// UserPreferencesTable represents the 'users.shelfpreference' table
type UserPreferencesTable struct {
	Table            string
	UserID           string
	Theme            string
	DefaultSort      string
	PreferredPlayers string
	HideExpansions   string
	HideCategories   string
	CompactGrid      string
}

// UserPreferences is the schema definition for users.shelfpreference
var UserPreferences = UserPreferencesTable{
	Table:            "users.shelfpreference",
	UserID:           "userid",
	Theme:            "theme",
	DefaultSort:      "defaultsort",
	PreferredPlayers: "preferredplayers",
	HideExpansions:   "hideexpansions",
	HideCategories:   "hidecategories",
	CompactGrid:      "compactgrid",
}

// Columns returns all standard column names
func (t UserPreferencesTable) Columns() []string {
	return []string{t.UserID, t.Theme, t.DefaultSort, t.PreferredPlayers, t.HideExpansions, t.HideCategories, t.CompactGrid}
}

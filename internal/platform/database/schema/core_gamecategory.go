package schema

// GameCategoryTable represents the 'core.gamecategory' table
type GameCategoryTable struct {
	Table  string
	GameID string
	TagID  string
}

// GameCategory is the schema definition for core.gamecategory
var GameCategory = GameCategoryTable{
	Table:  "core.gamecategory",
	GameID: "gameid",
	TagID:  "tagid",
}

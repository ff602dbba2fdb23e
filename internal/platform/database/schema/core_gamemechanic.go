package schema

// GameMechanicTable represents the 'core.gamemechanic' table
type GameMechanicTable struct {
	Table  string
	GameID string
	TagID  string
}

// GameMechanic is the schema definition for core.gamemechanic
var GameMechanic = GameMechanicTable{
	Table:  "core.gamemechanic",
	GameID: "gameid",
	TagID:  "tagid",
}

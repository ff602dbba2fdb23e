package schema

// CoreGameRelationTable represents the 'core.gamerelation' table
type CoreGameRelationTable struct {
	Table        string
	SourceGameID string
	TargetGameID string
	RelationType string
}

// CoreGameRelation is the schema definition for core.gamerelation
var CoreGameRelation = CoreGameRelationTable{
	Table:        "core.gamerelation",
	SourceGameID: "sourcegameid",
	TargetGameID: "targetgameid",
	RelationType: "relationtype",
}

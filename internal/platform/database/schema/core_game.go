package schema

// CoreGameTable represents the 'core.game' table
type CoreGameTable struct {
	Table           string
	ID              string
	Name            string
	Slug            string
	Description     string
	Publisher       string
	Year            string
	PlayerCountMin  string
	PlayerCountMax  string
	PlayerCountBest string
	PlayTimeMin     string
	PlayTimeMax     string
	Weight          string
	IsStaffPick     string
	IsTrending      string
	IsTopRated      string
	IsHiddenGem     string
	FamilyID        string
	IsHidden        string
	CreatedAt       string
	UpdatedAt       string
	DeletedAt       string
	SearchVector    string
}

// CoreGame is the schema definition for core.game
var CoreGame = CoreGameTable{
	Table:           "core.game",
	ID:              "id",
	Name:            "name",
	Slug:            "slug",
	Description:     "description",
	Publisher:       "publisher",
	Year:            "year",
	PlayerCountMin:  "playercountmin",
	PlayerCountMax:  "playercountmax",
	PlayerCountBest: "playercountbest",
	PlayTimeMin:     "playtimemin",
	PlayTimeMax:     "playtimemax",
	Weight:          "weight",
	IsStaffPick:     "isstaffpick",
	IsTrending:      "istrending",
	IsTopRated:      "istoprated",
	IsHiddenGem:     "ishiddengem",
	FamilyID:        "familyid",
	IsHidden:        "ishidden",
	CreatedAt:       "createdat",
	UpdatedAt:       "updatedat",
	DeletedAt:       "deletedat",
	SearchVector:    "searchvector",
}

func (t CoreGameTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.Slug, t.Description, t.Publisher, t.Year,
		t.PlayerCountMin, t.PlayerCountMax, t.PlayerCountBest,
		t.PlayTimeMin, t.PlayTimeMax, t.Weight,
		t.IsStaffPick, t.IsTrending, t.IsTopRated, t.IsHiddenGem,
		t.FamilyID, t.IsHidden, t.CreatedAt, t.UpdatedAt, t.DeletedAt, t.SearchVector,
	}
}

package tag

import "time"

// Kind separates the two tag vocabularies of the catalogue.
type Kind string

const (
	KindCategory Kind = "category"
	KindMechanic Kind = "mechanic"
)

// IsValid reports whether k is a recognised tag kind.
func (k Kind) IsValid() bool {
	return k == KindCategory || k == KindMechanic
}

// Tag represents a categorization attribute applied to a game, either a
// thematic category or a gameplay mechanic.
type Tag struct {
	ID          int       `json:"id"`
	Kind        Kind      `json:"kind"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"-"`
}

// Catalog groups all tags by kind for the filter sidebar.
type Catalog struct {
	Categories []Tag `json:"categories"`
	Mechanics  []Tag `json:"mechanics"`
}

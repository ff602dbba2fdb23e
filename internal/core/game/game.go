// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

/*
Package game defines the core domain entities for the MeepleBay catalogue.

It manages the lifecycle of board-game records including metadata, player and
play-time envelopes, complexity ratings, and curation flags.

Core Responsibility:

  - Catalogue: Defines the canonical Game record and its publication metadata.
  - Discovery: Manages category/mechanic tag associations and curation flags.
  - Families: Defines typed directed relations (expansions, sequels, spin-offs)
    that connect games into families.

This package acts as the source of truth for all content-related data models.
*/
package game

import "time"

// # Domain Enums

// RelationType classifies a directed link between two games.
//
// Semantics: "source is a <RelationType> of target". For every type except
// [RelationPrequelTo] the target acts as the tree parent; a prequel
// chronologically precedes its target and therefore parents it instead.
type RelationType string

const (
	// RelationExpansionOf marks the source as an expansion requiring the target.
	RelationExpansionOf RelationType = "expansion_of"

	// RelationBaseGameOf marks the source as the base game of the target.
	RelationBaseGameOf RelationType = "base_game_of"

	// RelationSequelTo marks the source as a chronological successor of the target.
	RelationSequelTo RelationType = "sequel_to"

	// RelationPrequelTo marks the source as chronologically preceding the target.
	RelationPrequelTo RelationType = "prequel_to"

	// RelationReimplementationOf marks the source as a redesign of the target's system.
	RelationReimplementationOf RelationType = "reimplementation_of"

	// RelationSpinOffOf marks the source as a derivative work set in the target's universe.
	RelationSpinOffOf RelationType = "spin_off_of"

	// RelationStandaloneInSeries marks the source as an independent entry in the target's series.
	RelationStandaloneInSeries RelationType = "standalone_in_series"

	// RelationPromoOf marks the source as promotional material for the target.
	RelationPromoOf RelationType = "promo_of"
)

// IsValid reports whether t is a recognised [RelationType] value.
func (t RelationType) IsValid() bool {
	switch t {
	case
		RelationExpansionOf,
		RelationBaseGameOf,
		RelationSequelTo,
		RelationPrequelTo,
		RelationReimplementationOf,
		RelationSpinOffOf,
		RelationStandaloneInSeries,
		RelationPromoOf:
		return true
	}
	return false
}

// # Core Entities

// Game is the central aggregate of the MeepleBay domain.
// It represents a single board-game record in the catalogue.
type Game struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"` // URL-safe identifier

	Description string `json:"description,omitempty"`
	Publisher   string `json:"publisher,omitempty"`
	Year        *int   `json:"year,omitempty"` // Publication year; nil when unknown

	// Player envelope
	PlayerCountMin  int   `json:"player_count_min"`
	PlayerCountMax  int   `json:"player_count_max"`
	PlayerCountBest []int `json:"player_count_best,omitempty"` // Community-voted best counts

	// Play-time envelope in minutes; nil when the publisher never stated one
	PlayTimeMin *int `json:"play_time_min,omitempty"`
	PlayTimeMax *int `json:"play_time_max,omitempty"`

	// Weight is the complexity rating on a 1.0-5.0 scale; nil when unrated.
	Weight *float64 `json:"weight,omitempty"`

	// # Curation Flags
	// Editorially maintained; consumed by the recommendation scorer.
	IsStaffPick bool `json:"is_staff_pick"`
	IsTrending  bool `json:"is_trending"`
	IsTopRated  bool `json:"is_top_rated"`
	IsHiddenGem bool `json:"is_hidden_gem"`

	// FamilyID groups games connected (or intended to be connected) by relations.
	FamilyID *string `json:"family_id,omitempty"`

	// Category/mechanic tag slugs, resolved through junction tables.
	Categories []string `json:"categories,omitempty"`
	Mechanics  []string `json:"mechanics,omitempty"`

	// # Junction IDs (Input only)
	CategoryIDs []int `json:"category_ids,omitempty"`
	MechanicIDs []int `json:"mechanic_ids,omitempty"`

	IsHidden  bool       `json:"is_hidden"` // True while delisted by moderation
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"-"` // nil = active; non-nil = soft-deleted
}

// Relation defines a typed directed link between two games.
//
// The pair is ordered: "SourceGameID is a Type of TargetGameID".
type Relation struct {
	SourceGameID string       `json:"source_game_id"`
	TargetGameID string       `json:"target_game_id"`
	Type         RelationType `json:"type"`
	TargetName   string       `json:"target_name,omitempty"` // Denormalized for display
}

// # Search & Filtering

// Filter holds the parameters for a filtered game list query.
type Filter struct {
	IncludedCategories []int    `json:"included_categories,omitempty"`
	IncludedMechanics  []int    `json:"included_mechanics,omitempty"`
	PlayerCount        *int     `json:"player_count,omitempty"` // Games supporting exactly this count
	MaxPlayTime        *int     `json:"max_play_time,omitempty"`
	MaxWeight          *float64 `json:"max_weight,omitempty"`
	Year               *int     `json:"year,omitempty"`
	FamilyID           string   `json:"family_id,omitempty"`
	CuratedOnly        bool     `json:"curated_only,omitempty"` // Any curation flag set
	Query              string   `json:"q,omitempty"`            // Full-text search term
	Sort               string   `json:"sort,omitempty"`         // latest, name, year, weight
	SortDir            string   `json:"sort_dir,omitempty"`     // "asc" or "desc"
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID              = "id"
	FieldName            = "name"
	FieldSlug            = "slug"
	FieldDescription     = "description"
	FieldPublisher       = "publisher"
	FieldYear            = "year"
	FieldPlayerCountMin  = "player_count_min"
	FieldPlayerCountMax  = "player_count_max"
	FieldPlayerCountBest = "player_count_best"
	FieldPlayTimeMin     = "play_time_min"
	FieldPlayTimeMax     = "play_time_max"
	FieldWeight          = "weight"
	FieldFamilyID        = "family_id"
	FieldCategoryIDs     = "category_ids"
	FieldMechanicIDs     = "mechanic_ids"
)

// Field identifiers for the [Relation] domain.
const (
	FieldSourceGameID = "source_game_id"
	FieldTargetGameID = "target_game_id"
	FieldRelationType = "relation_type"
	FieldMessage      = "message"
)

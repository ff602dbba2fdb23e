// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package family_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/core/family"
	"github.com/meeplebay/meeplebay/internal/core/game"
)

// makeGame builds a minimal catalogue record for layout tests.
func makeGame(id, name string, year int) *game.Game {
	g := &game.Game{ID: id, Name: name}
	if year != 0 {
		g.Year = &year
	}
	return g
}

func relation(source, target string, relType game.RelationType) game.Relation {
	return game.Relation{SourceGameID: source, TargetGameID: target, Type: relType}
}

// placedCount sums the nodes across all tiers.
func placedCount(layout family.Layout) int {
	total := 0
	for _, tier := range layout.Tiers {
		total += len(tier.Nodes)
	}
	return total
}

// findNode locates a game id anywhere in the layout, or nil.
func findNode(layout family.Layout, gameID string) *family.Node {
	for _, tier := range layout.Tiers {
		for _, node := range tier.Nodes {
			if node.Game.ID == gameID {
				return node
			}
		}
	}
	return nil
}

/*
TestBuildLayout_EmptyInput verifies the zero-games edge case returns empty
structures rather than nil panics or errors.
*/
func TestBuildLayout_EmptyInput(t *testing.T) {
	layout := family.BuildLayout(nil, nil, "")

	assert.Empty(t, layout.Tiers)
	assert.Empty(t, layout.Orphans)
}

/*
TestBuildLayout_BaseGamePlacement checks that the resolved base always sits at
tier 1, column 0, both with an explicit id and with year-based election.
*/
func TestBuildLayout_BaseGamePlacement(t *testing.T) {
	games := []*game.Game{
		makeGame("g-new", "Brand New Edition", 2020),
		makeGame("g-old", "Original", 1995),
	}

	tests := []struct {
		name       string
		baseGameID string
		wantBaseID string
	}{
		{"explicit_base_wins", "g-new", "g-new"},
		{"earliest_year_elected", "", "g-old"},
		{"unknown_id_falls_back_to_election", "g-missing", "g-old"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := family.BuildLayout(games, nil, tt.baseGameID)

			node := findNode(layout, tt.wantBaseID)
			require.NotNil(t, node)
			assert.Equal(t, 1, node.Tier)
			assert.Equal(t, 0, node.Column)
			assert.Empty(t, node.RelationType)
		})
	}
}

/*
TestBuildLayout_BaseElectionTieBreaks verifies that a nil publication year
sorts last and that equal years fall back to the shortest name.
*/
func TestBuildLayout_BaseElectionTieBreaks(t *testing.T) {
	tests := []struct {
		name       string
		games      []*game.Game
		wantBaseID string
	}{
		{
			name: "nil_year_sorts_last",
			games: []*game.Game{
				makeGame("g-undated", "Undated Promo", 0),
				makeGame("g-dated", "Dated Game", 2010),
			},
			wantBaseID: "g-dated",
		},
		{
			name: "equal_year_shortest_name_wins",
			games: []*game.Game{
				makeGame("g-long", "Catan: Seafarers Edition", 2001),
				makeGame("g-short", "Catan", 2001),
			},
			wantBaseID: "g-short",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := family.BuildLayout(tt.games, nil, "")

			node := findNode(layout, tt.wantBaseID)
			require.NotNil(t, node)
			assert.Equal(t, 1, node.Tier)
			assert.Equal(t, 0, node.Column)
		})
	}
}

/*
TestBuildLayout_TimelineTier places sequels and prequels on tier 0, sorted by
publication year with unknown years last.
*/
func TestBuildLayout_TimelineTier(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("seq-late", "Sequel II", 2012),
		makeGame("seq-early", "Sequel I", 2005),
		makeGame("seq-undated", "Lost Sequel", 0),
	}
	relations := []game.Relation{
		relation("seq-late", "base", game.RelationSequelTo),
		relation("seq-undated", "base", game.RelationSequelTo),
		relation("seq-early", "base", game.RelationSequelTo),
	}

	layout := family.BuildLayout(games, relations, "base")

	require.NotEmpty(t, layout.Tiers)
	timeline := layout.Tiers[0]
	require.Equal(t, 0, timeline.Tier)
	require.Len(t, timeline.Nodes, 3)

	assert.Equal(t, "seq-early", timeline.Nodes[0].Game.ID)
	assert.Equal(t, "seq-late", timeline.Nodes[1].Game.ID)
	assert.Equal(t, "seq-undated", timeline.Nodes[2].Game.ID)

	for column, node := range timeline.Nodes {
		assert.Equal(t, column, node.Column)
		assert.Equal(t, "base", node.ParentID)
	}
}

/*
TestBuildLayout_PrequelDirectionInversion exercises the one relation whose
tree direction is inverted: "base prequel_to later" parents the later game
under the base, while "earlier prequel_to base" parents the base itself and
leaves the earlier game unreachable.
*/
func TestBuildLayout_PrequelDirectionInversion(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("later", "The Continuation", 2008),
		makeGame("earlier", "The Origin", 1994),
	}
	relations := []game.Relation{
		relation("base", "later", game.RelationPrequelTo),
		relation("earlier", "base", game.RelationPrequelTo),
	}

	layout := family.BuildLayout(games, relations, "base")

	later := findNode(layout, "later")
	require.NotNil(t, later)
	assert.Equal(t, 0, later.Tier)
	assert.Equal(t, game.RelationPrequelTo, later.RelationType)

	// The origin game parents the base, so nothing reaches it from the root.
	assert.Nil(t, findNode(layout, "earlier"))
	require.Len(t, layout.Orphans, 1)
	assert.Equal(t, "earlier", layout.Orphans[0].ID)
}

/*
TestBuildLayout_VariantTier verifies tier 1 holds the base plus direct
variants in relation encounter order, with connector styles derived from the
relation type.
*/
func TestBuildLayout_VariantTier(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("spin", "Spin-Off", 2010),
		makeGame("standalone", "Standalone", 2004),
		makeGame("reimpl", "Reimplementation", 2015),
	}
	relations := []game.Relation{
		relation("spin", "base", game.RelationSpinOffOf),
		relation("standalone", "base", game.RelationStandaloneInSeries),
		relation("reimpl", "base", game.RelationReimplementationOf),
	}

	layout := family.BuildLayout(games, relations, "base")

	require.Len(t, layout.Tiers, 1)
	tier := layout.Tiers[0]
	require.Equal(t, 1, tier.Tier)
	require.Len(t, tier.Nodes, 4)

	// Base first, then encounter order; no re-sort by year.
	assert.Equal(t, "base", tier.Nodes[0].Game.ID)
	assert.Equal(t, "spin", tier.Nodes[1].Game.ID)
	assert.Equal(t, "standalone", tier.Nodes[2].Game.ID)
	assert.Equal(t, "reimpl", tier.Nodes[3].Game.ID)

	assert.Equal(t, family.LineSolid, tier.Nodes[0].LineStyle)
	assert.Equal(t, family.LineDashed, tier.Nodes[1].LineStyle)
	assert.Equal(t, family.LineDashed, tier.Nodes[2].LineStyle)
	assert.Equal(t, family.LineDotted, tier.Nodes[3].LineStyle)
}

/*
TestBuildLayout_ExpansionDepthFirst checks that nested expansions are placed
depth-first: a child's subtree is fully columned before the next sibling, so
sibling subtrees never interleave within a tier.
*/
func TestBuildLayout_ExpansionDepthFirst(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("exp-a", "Expansion A", 2001),
		makeGame("exp-b", "Expansion B", 2002),
		makeGame("exp-a1", "Expansion A Module", 2003),
		makeGame("exp-b1", "Expansion B Module", 2004),
	}
	relations := []game.Relation{
		relation("exp-b", "base", game.RelationExpansionOf),
		relation("exp-a", "base", game.RelationExpansionOf),
		relation("exp-a1", "exp-a", game.RelationExpansionOf),
		relation("exp-b1", "exp-b", game.RelationExpansionOf),
	}

	layout := family.BuildLayout(games, relations, "base")

	// Tier 2: the two direct expansions sorted by year.
	require.Len(t, layout.Tiers, 3)
	tier2 := layout.Tiers[1]
	require.Equal(t, 2, tier2.Tier)
	require.Len(t, tier2.Nodes, 2)
	assert.Equal(t, "exp-a", tier2.Nodes[0].Game.ID)
	assert.Equal(t, "exp-b", tier2.Nodes[1].Game.ID)

	// Tier 3: A's module was columned before B's module.
	tier3 := layout.Tiers[2]
	require.Equal(t, 3, tier3.Tier)
	require.Len(t, tier3.Nodes, 2)
	assert.Equal(t, "exp-a1", tier3.Nodes[0].Game.ID)
	assert.Equal(t, 0, tier3.Nodes[0].Column)
	assert.Equal(t, "exp-b1", tier3.Nodes[1].Game.ID)
	assert.Equal(t, 1, tier3.Nodes[1].Column)
}

/*
TestBuildLayout_DepthBound builds an expansion chain of length 10 and asserts
termination with everything past the depth limit surfacing as orphans.
*/
func TestBuildLayout_DepthBound(t *testing.T) {
	games := []*game.Game{makeGame("g0", "Chain Base", 2000)}
	var relations []game.Relation

	for i := 1; i <= 10; i++ {
		id := fmt.Sprintf("g%d", i)
		games = append(games, makeGame(id, fmt.Sprintf("Chain Link %d", i), 2000+i))
		relations = append(relations, relation(id, fmt.Sprintf("g%d", i-1), game.RelationExpansionOf))
	}

	layout := family.BuildLayout(games, relations, "g0")

	// g0 at tier 1, g1..g3 at tiers 2..4, g4..g10 beyond the limit.
	assert.Equal(t, 4, placedCount(layout))
	require.Len(t, layout.Orphans, 7)
	assert.Equal(t, "g4", layout.Orphans[0].ID)

	deepest := layout.Tiers[len(layout.Tiers)-1]
	assert.Equal(t, family.MaxDepth, deepest.Tier)
}

/*
TestBuildLayout_CycleSafety feeds a two-game expansion cycle and asserts the
traversal terminates with each game placed exactly once.
*/
func TestBuildLayout_CycleSafety(t *testing.T) {
	games := []*game.Game{
		makeGame("a", "Alpha", 2000),
		makeGame("b", "Beta", 2001),
	}
	relations := []game.Relation{
		relation("a", "b", game.RelationExpansionOf),
		relation("b", "a", game.RelationExpansionOf),
	}

	layout := family.BuildLayout(games, relations, "")

	assert.Equal(t, 2, placedCount(layout))
	assert.Empty(t, layout.Orphans)

	base := findNode(layout, "a")
	require.NotNil(t, base)
	assert.Equal(t, 1, base.Tier)

	other := findNode(layout, "b")
	require.NotNil(t, other)
	assert.Equal(t, 2, other.Tier)
}

/*
TestBuildLayout_MalformedRelations covers the silent-degradation paths:
dangling foreign keys, duplicate relations, and self-loops.
*/
func TestBuildLayout_MalformedRelations(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("exp", "Expansion", 2002),
	}
	relations := []game.Relation{
		relation("exp", "base", game.RelationExpansionOf),
		relation("exp", "base", game.RelationExpansionOf), // duplicate
		relation("ghost", "base", game.RelationExpansionOf), // dangling source
		relation("exp", "phantom", game.RelationExpansionOf), // dangling target
		relation("base", "base", game.RelationExpansionOf), // self-loop
	}

	layout := family.BuildLayout(games, relations, "base")

	assert.Equal(t, 2, placedCount(layout))
	assert.Empty(t, layout.Orphans)

	exp := findNode(layout, "exp")
	require.NotNil(t, exp)
	assert.Equal(t, 2, exp.Tier)
}

/*
TestBuildLayout_OrphanCompleteness asserts the partition property: every input
game lands in exactly one tier or in the orphan set, never both, never
neither.
*/
func TestBuildLayout_OrphanCompleteness(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("exp", "Expansion", 2001),
		makeGame("island", "Unconnected", 2005),
		makeGame("promo-island", "Unconnected Promo", 0),
	}
	relations := []game.Relation{
		relation("exp", "base", game.RelationExpansionOf),
	}

	layout := family.BuildLayout(games, relations, "base")

	assert.Equal(t, len(games), placedCount(layout)+len(layout.Orphans))

	seen := make(map[string]int)
	for _, tier := range layout.Tiers {
		for _, node := range tier.Nodes {
			seen[node.Game.ID]++
		}
	}
	for _, orphan := range layout.Orphans {
		seen[orphan.ID]++
	}
	for _, g := range games {
		assert.Equal(t, 1, seen[g.ID], "game %s placed %d times", g.ID, seen[g.ID])
	}
}

/*
TestBuildLayout_Determinism runs the same layout twice and requires deep
equality, so no dependence on map iteration order may leak into the output.
*/
func TestBuildLayout_Determinism(t *testing.T) {
	games := []*game.Game{
		makeGame("base", "Base", 2000),
		makeGame("seq", "Sequel", 2004),
		makeGame("exp-a", "Expansion A", 2001),
		makeGame("exp-b", "Expansion B", 2002),
		makeGame("spin", "Spin-Off", 2003),
		makeGame("island", "Unconnected", 2010),
	}
	relations := []game.Relation{
		relation("seq", "base", game.RelationSequelTo),
		relation("exp-a", "base", game.RelationExpansionOf),
		relation("exp-b", "base", game.RelationExpansionOf),
		relation("spin", "base", game.RelationSpinOffOf),
	}

	first := family.BuildLayout(games, relations, "base")
	second := family.BuildLayout(games, relations, "base")

	assert.Equal(t, first, second)
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package family

import (
	"sort"

	"github.com/meeplebay/meeplebay/internal/core/game"
)

// # Layout Types

// LineStyle tags the connector rendering for a tree edge.
type LineStyle string

const (
	// LineSolid is the default connector (expansions, sequels, promos).
	LineSolid LineStyle = "solid"

	// LineDashed marks standalone series entries and spin-offs.
	LineDashed LineStyle = "dashed"

	// LineDotted marks reimplementations.
	LineDotted LineStyle = "dotted"
)

// lineStyleFor derives the connector style purely from the relation type.
func lineStyleFor(relationType game.RelationType) LineStyle {
	switch relationType {
	case game.RelationReimplementationOf:
		return LineDotted
	case game.RelationStandaloneInSeries, game.RelationSpinOffOf:
		return LineDashed
	default:
		return LineSolid
	}
}

// Node wraps a game with its placement in the family tree.
//
// Tier 0 is the sequel/prequel lane, tier 1 the base-game lane, tier 2 and
// deeper the nested expansion lanes. ParentID is a non-owning back-reference
// for drawing connectors; traversal never follows it.
type Node struct {
	Game         *game.Game        `json:"game"`
	RelationType game.RelationType `json:"relation_type,omitempty"` // Empty for the base game
	Tier         int               `json:"tier"`
	Column       int               `json:"column"`
	ParentID     string            `json:"parent_id,omitempty"`
	LineStyle    LineStyle         `json:"line_style"`
}

// Tier groups the nodes of one horizontal layer, ordered by column.
type Tier struct {
	Tier  int     `json:"tier"`
	Nodes []*Node `json:"nodes"`
}

// Layout is the full derived tree structure for one family.
//
// Every input game appears in exactly one tier or in Orphans, never both and
// never duplicated. The structure is rebuilt from scratch on every call.
type Layout struct {
	Tiers   []Tier       `json:"tiers"`
	Orphans []*game.Game `json:"orphans"`
}

// # Tree Construction

/*
BuildLayout lays out a family of games as a tiered tree plus an orphan list.

Description: The base game is resolved (explicit id, else earliest publication
year with shortest-name tie-break) and placed at tier 1, column 0. Direct
sequels and prequels of the base form tier 0 sorted by year. Direct variants
(standalone entries, spin-offs, reimplementations) join the base on tier 1 in
relation encounter order. Expansions are placed depth-first from the base on
tiers 2 and deeper, sorted by year within each parent, with each tier's
columns allocated by a running counter so sibling subtrees never interleave.
Traversal is bounded by [MaxDepth]; anything unreachable under these rules
lands in Orphans.

The function is total: self-loops, duplicate relations, dangling ids, and
cycles degrade into skipped placements, never errors or unbounded recursion.

Parameters:
  - games: []*game.Game (All members of one family)
  - relations: []game.Relation (Typed directed relations between members)
  - baseGameID: string (Explicit root id, or "" to auto-select)

Returns:
  - Layout: Tiers sorted by tier number, nodes sorted by column, plus orphans
*/
func BuildLayout(games []*game.Game, relations []game.Relation, baseGameID string) Layout {
	if len(games) == 0 {
		return Layout{Tiers: []Tier{}, Orphans: []*game.Game{}}
	}

	base := resolveBaseGame(games, baseGameID)
	index := buildChildParentIndex(games, relations)

	placed := make(map[string]bool, len(games))
	var nodes []*Node

	// ── Tier 0: sequels & prequels ────────────────────────────────────────
	var timeline []childEdge
	for _, edge := range index.ChildrenOf[base.ID] {
		if edge.Relation.Type == game.RelationSequelTo || edge.Relation.Type == game.RelationPrequelTo {
			timeline = append(timeline, edge)
		}
	}
	sortEdgesByYear(timeline)

	for column, edge := range timeline {
		if placed[edge.Game.ID] {
			continue
		}
		placed[edge.Game.ID] = true
		nodes = append(nodes, &Node{
			Game:         edge.Game,
			RelationType: edge.Relation.Type,
			Tier:         0,
			Column:       column,
			ParentID:     base.ID,
			LineStyle:    lineStyleFor(edge.Relation.Type),
		})
	}

	// ── Tier 1: base game & direct variants ───────────────────────────────
	// The base is placed unconditionally before any traversal, which also
	// guards the common self-loop case.
	placed[base.ID] = true
	nodes = append(nodes, &Node{
		Game:      base,
		Tier:      1,
		Column:    0,
		LineStyle: LineSolid,
	})

	variantColumn := 1
	for _, edge := range index.ChildrenOf[base.ID] {
		switch edge.Relation.Type {
		case game.RelationStandaloneInSeries, game.RelationSpinOffOf, game.RelationReimplementationOf:
		default:
			continue
		}
		if placed[edge.Game.ID] {
			continue
		}
		placed[edge.Game.ID] = true
		nodes = append(nodes, &Node{
			Game:         edge.Game,
			RelationType: edge.Relation.Type,
			Tier:         1,
			Column:       variantColumn,
			ParentID:     base.ID,
			LineStyle:    lineStyleFor(edge.Relation.Type),
		})
		variantColumn++
	}

	// ── Tier 2+: nested expansions ────────────────────────────────────────
	nextColumn := make(map[int]int)
	nodes = placeExpansions(base.ID, 2, index, placed, nextColumn, nodes)

	// ── Orphans ───────────────────────────────────────────────────────────
	orphans := make([]*game.Game, 0)
	for _, g := range games {
		if !placed[g.ID] {
			orphans = append(orphans, g)
		}
	}

	return Layout{Tiers: groupByTier(nodes), Orphans: orphans}
}

/*
placeExpansions performs the depth-first expansion traversal.

Description: Children of currentParentID attached via expansion_of are sorted
by year and placed left to right; each child's own expansion subtree is fully
placed before the next sibling is visited, so a tier's running column counter
keeps sibling subtrees contiguous. Already-placed games are skipped, which
makes the traversal idempotent against duplicate relations and cycles.
Recursion stops once tier exceeds [MaxDepth], leaving deeper branches
unplaced.

Visited state is passed through the call chain rather than held on the
package or an object, so concurrent layouts never interfere.
*/
func placeExpansions(currentParentID string, tier int, index *relationIndex, placed map[string]bool, nextColumn map[int]int, nodes []*Node) []*Node {
	if tier > MaxDepth {
		return nodes
	}

	var expansions []childEdge
	for _, edge := range index.ChildrenOf[currentParentID] {
		if edge.Relation.Type == game.RelationExpansionOf {
			expansions = append(expansions, edge)
		}
	}
	sortEdgesByYear(expansions)

	for _, edge := range expansions {
		if placed[edge.Game.ID] {
			continue
		}
		placed[edge.Game.ID] = true

		column := nextColumn[tier]
		nextColumn[tier] = column + 1

		nodes = append(nodes, &Node{
			Game:         edge.Game,
			RelationType: edge.Relation.Type,
			Tier:         tier,
			Column:       column,
			ParentID:     currentParentID,
			LineStyle:    LineSolid,
		})

		// Depth-first: finish this child's subtree before the next sibling.
		nodes = placeExpansions(edge.Game.ID, tier+1, index, placed, nextColumn, nodes)
	}

	return nodes
}

// groupByTier buckets nodes into [Tier] groups sorted by tier number, with
// each group's nodes sorted by column.
func groupByTier(nodes []*Node) []Tier {
	byTier := make(map[int][]*Node)
	for _, node := range nodes {
		byTier[node.Tier] = append(byTier[node.Tier], node)
	}

	tierNumbers := make([]int, 0, len(byTier))
	for tierNumber := range byTier {
		tierNumbers = append(tierNumbers, tierNumber)
	}
	sort.Ints(tierNumbers)

	tiers := make([]Tier, 0, len(tierNumbers))
	for _, tierNumber := range tierNumbers {
		group := byTier[tierNumber]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Column < group[j].Column
		})
		tiers = append(tiers, Tier{Tier: tierNumber, Nodes: group})
	}

	return tiers
}

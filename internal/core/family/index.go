// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

/*
Package family implements the game-family relationship graph algorithms.

A family is a set of games connected by typed directed relations, rooted at a
single "base" game. This package derives two views from the raw relation data:

  - Layout: a tiered tree for the public family visualization (sequel lane,
    base+variant lane, nested expansion lanes) plus the set of orphans.
  - FindOrphans: the plain set of games unreachable from the base, used by the
    admin relation editor.

Both are pure, stateless functions over in-memory collections. They never
mutate their inputs, never touch storage, and are total: malformed relation
data (dangling ids, duplicates, cycles, self-loops) degrades into skipped
edges or orphans rather than errors.
*/
package family

import (
	"sort"

	"github.com/meeplebay/meeplebay/internal/core/game"
)

// MaxDepth bounds the expansion traversal so cyclic relation data always
// terminates. Expansions nested deeper than this are left unplaced and
// surface as orphans.
const MaxDepth = 4

// childEdge pairs a child game with the relation that attaches it to its parent.
type childEdge struct {
	Game     *game.Game
	Relation game.Relation
}

// parentEdge pairs a parent game with the relation that attaches the child.
type parentEdge struct {
	Game     *game.Game
	Relation game.Relation
}

// relationIndex holds the parent/child adjacency derived from a relation list.
type relationIndex struct {
	// ChildrenOf maps a parent game id to its attached children, in relation
	// encounter order.
	ChildrenOf map[string][]childEdge

	// ParentOf maps a child game id to its single parent edge. When a game has
	// several incoming qualifying relations the last one encountered wins; no
	// error is raised. Changing this silently changes tier placement, so the
	// behavior is kept as-is.
	ParentOf map[string]parentEdge
}

/*
buildChildParentIndex derives the parent/child adjacency from a relation list.

Description: Relations whose endpoints are not both present in games are
silently dropped. For every surviving relation the target is treated as the
parent and the source as the child, except [game.RelationPrequelTo] where the
direction is inverted: a prequel chronologically precedes its target and
therefore acts as the tree parent.

Parameters:
  - games: []*game.Game (The family member set)
  - relations: []game.Relation (Raw typed directed relations)

Returns:
  - *relationIndex: Adjacency usable by both traversal variants
*/
func buildChildParentIndex(games []*game.Game, relations []game.Relation) *relationIndex {
	byID := make(map[string]*game.Game, len(games))
	for _, g := range games {
		byID[g.ID] = g
	}

	index := &relationIndex{
		ChildrenOf: make(map[string][]childEdge),
		ParentOf:   make(map[string]parentEdge),
	}

	for _, relation := range relations {
		source, sourceOK := byID[relation.SourceGameID]
		target, targetOK := byID[relation.TargetGameID]

		// Dangling foreign keys are ignored rather than rejected.
		if !sourceOK || !targetOK {
			continue
		}

		parent, child := target, source
		if relation.Type == game.RelationPrequelTo {
			parent, child = source, target
		}

		index.ChildrenOf[parent.ID] = append(index.ChildrenOf[parent.ID], childEdge{Game: child, Relation: relation})
		index.ParentOf[child.ID] = parentEdge{Game: parent, Relation: relation}
	}

	return index
}

/*
resolveBaseGame selects the root of the family tree.

Description: The explicitly supplied id wins when it references a member of
games. Otherwise the game with the earliest publication year is chosen, with
an unknown year ordering last and ties broken by the shortest display name.

Parameters:
  - games: []*game.Game (Non-empty family member set)
  - baseGameID: string (Explicit root id, or "" to auto-select)

Returns:
  - *game.Game: The resolved base game; nil only when games is empty
*/
func resolveBaseGame(games []*game.Game, baseGameID string) *game.Game {
	if len(games) == 0 {
		return nil
	}

	if baseGameID != "" {
		for _, g := range games {
			if g.ID == baseGameID {
				return g
			}
		}
	}

	base := games[0]
	for _, g := range games[1:] {
		if yearLess(g, base) {
			base = g
		}
	}
	return base
}

// yearLess orders games by publication year ascending with nil years last,
// ties broken by shortest name. Used for base-game election.
func yearLess(a, b *game.Game) bool {
	ay, by := yearOrInfinity(a), yearOrInfinity(b)
	if ay != by {
		return ay < by
	}
	return len(a.Name) < len(b.Name)
}

// yearOrInfinity treats an unknown publication year as +infinity for ordering.
func yearOrInfinity(g *game.Game) int {
	if g.Year == nil {
		return int(^uint(0) >> 1)
	}
	return *g.Year
}

// sortEdgesByYear stably orders child edges by publication year ascending,
// unknown years last. Stability preserves relation encounter order for ties.
func sortEdgesByYear(edges []childEdge) {
	sort.SliceStable(edges, func(i, j int) bool {
		return yearOrInfinity(edges[i].Game) < yearOrInfinity(edges[j].Game)
	})
}

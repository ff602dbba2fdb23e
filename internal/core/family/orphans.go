// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package family

import (
	"sort"

	"github.com/meeplebay/meeplebay/internal/core/game"
)

// # Orphan Detection

/*
FindOrphans returns the family members not reachable from the base game.

Description: This is the reduced traversal used by the admin relation editor,
which only needs set membership rather than tree positions. The base game is
resolved the same way as [BuildLayout], but reachability here is
relation-type-agnostic: every relation counts as a tree edge (with the usual
prequel direction inversion) and there is no depth limit. Siblings are visited
expansions-first, then by year ascending, purely for deterministic output
order.

A game can therefore be reachable here yet still land in [BuildLayout]'s
orphan set, for example when it sits past the expansion depth limit or hangs
off an unsupported relation combination. The two consumers intentionally keep
their own traversal semantics; do not unify them without a product decision.

Parameters:
  - games: []*game.Game (All members of one family)
  - relations: []game.Relation (Typed directed relations between members)
  - baseGameID: string (Explicit root id, or "" to auto-select)

Returns:
  - []*game.Game: Members with no relation path from the base, in input order
*/
func FindOrphans(games []*game.Game, relations []game.Relation, baseGameID string) []*game.Game {
	if len(games) == 0 {
		return []*game.Game{}
	}

	base := resolveBaseGame(games, baseGameID)
	index := buildChildParentIndex(games, relations)

	visited := make(map[string]bool, len(games))
	visitReachable(base.ID, index, visited)

	orphans := make([]*game.Game, 0)
	for _, g := range games {
		if !visited[g.ID] {
			orphans = append(orphans, g)
		}
	}
	return orphans
}

// visitReachable marks every game reachable from currentID through any
// relation type. The visited set doubles as the cycle guard.
func visitReachable(currentID string, index *relationIndex, visited map[string]bool) {
	if visited[currentID] {
		return
	}
	visited[currentID] = true

	children := make([]childEdge, len(index.ChildrenOf[currentID]))
	copy(children, index.ChildrenOf[currentID])

	// Expansion children first, then by year. Affects output determinism
	// only, never reachability.
	sort.SliceStable(children, func(i, j int) bool {
		iExpansion := children[i].Relation.Type == game.RelationExpansionOf
		jExpansion := children[j].Relation.Type == game.RelationExpansionOf
		if iExpansion != jExpansion {
			return iExpansion
		}
		return yearOrInfinity(children[i].Game) < yearOrInfinity(children[j].Game)
	})

	for _, edge := range children {
		visitReachable(edge.Game.ID, index, visited)
	}
}

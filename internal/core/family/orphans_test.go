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

/*
TestFindOrphans_EmptyInput verifies the zero-games edge case.
*/
func TestFindOrphans_EmptyInput(t *testing.T) {
	orphans := family.FindOrphans(nil, nil, "")
	assert.Empty(t, orphans)
}

/*
TestFindOrphans_ReachabilityIsTypeAgnostic checks that every relation type
counts as a tree edge for the admin editor's orphan set, unlike the tiered
layout which only follows specific types per tier.
*/
func TestFindOrphans_ReachabilityIsTypeAgnostic(t *testing.T) {
	games := []*game.Game{
		{ID: "base", Name: "Base"},
		{ID: "promo", Name: "Promo"},
		{ID: "deep-promo", Name: "Deep Promo"},
		{ID: "island", Name: "Unconnected"},
	}
	relations := []game.Relation{
		{SourceGameID: "promo", TargetGameID: "base", Type: game.RelationPromoOf},
		{SourceGameID: "deep-promo", TargetGameID: "promo", Type: game.RelationPromoOf},
	}

	orphans := family.FindOrphans(games, relations, "base")

	require.Len(t, orphans, 1)
	assert.Equal(t, "island", orphans[0].ID)
}

/*
TestFindOrphans_DivergesFromLayout documents the accepted inconsistency
between the two traversals: a long expansion chain is fully reachable for the
admin editor but exceeds the layout's depth limit, so the same game is
"connected" in one view and an orphan in the other.
*/
func TestFindOrphans_DivergesFromLayout(t *testing.T) {
	games := []*game.Game{{ID: "g0", Name: "Chain Base"}}
	var relations []game.Relation
	for i := 1; i <= 6; i++ {
		games = append(games, &game.Game{ID: fmt.Sprintf("g%d", i), Name: fmt.Sprintf("Chain Link %d", i)})
		relations = append(relations, game.Relation{
			SourceGameID: fmt.Sprintf("g%d", i),
			TargetGameID: fmt.Sprintf("g%d", i-1),
			Type:         game.RelationExpansionOf,
		})
	}

	orphans := family.FindOrphans(games, relations, "g0")
	assert.Empty(t, orphans, "reachability has no depth limit")

	layout := family.BuildLayout(games, relations, "g0")
	assert.NotEmpty(t, layout.Orphans, "layout is depth-limited")
}

/*
TestFindOrphans_CycleTermination feeds mutually-referencing relations and
requires termination with both games reachable.
*/
func TestFindOrphans_CycleTermination(t *testing.T) {
	year := 2000
	games := []*game.Game{
		{ID: "a", Name: "Alpha", Year: &year},
		{ID: "b", Name: "Beta"},
	}
	relations := []game.Relation{
		{SourceGameID: "a", TargetGameID: "b", Type: game.RelationExpansionOf},
		{SourceGameID: "b", TargetGameID: "a", Type: game.RelationExpansionOf},
	}

	orphans := family.FindOrphans(games, relations, "")
	assert.Empty(t, orphans)
}

/*
TestFindOrphans_DanglingRelationsIgnored confirms relations pointing outside
the family contribute nothing to reachability.
*/
func TestFindOrphans_DanglingRelationsIgnored(t *testing.T) {
	games := []*game.Game{
		{ID: "base", Name: "Base"},
		{ID: "stray", Name: "Stray"},
	}
	relations := []game.Relation{
		{SourceGameID: "stray", TargetGameID: "elsewhere", Type: game.RelationExpansionOf},
	}

	orphans := family.FindOrphans(games, relations, "base")

	require.Len(t, orphans, 1)
	assert.Equal(t, "stray", orphans[0].ID)
}

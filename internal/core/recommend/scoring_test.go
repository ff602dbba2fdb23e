// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/core/game"
	"github.com/meeplebay/meeplebay/internal/core/recommend"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// neutralSignals produces the permissive defaults of an all-skipped wizard.
func neutralSignals() recommend.Signals {
	return recommend.BuildSignals(recommend.Answers{})
}

/*
TestScore_PlayerCountTiers walks the player-count term through its four
outcomes: best-count match, within supported range, mere overlap, and miss.
*/
func TestScore_PlayerCountTiers(t *testing.T) {
	// Midpoint is 3; the [3,4] spread keeps the overlap tier reachable for
	// candidates whose envelope excludes the midpoint itself.
	signals := recommend.Signals{
		PlayerCountMin: 3, PlayerCountMax: 4,
		PlayTimeMin: 0, PlayTimeMax: 300,
		WeightMin: 1, WeightMax: 5,
	}

	tests := []struct {
		name      string
		candidate *game.Game
		wantTerm  float64
	}{
		{
			name:      "best_count_match",
			candidate: &game.Game{PlayerCountMin: 2, PlayerCountMax: 4, PlayerCountBest: []int{3}},
			wantTerm:  25,
		},
		{
			name:      "within_supported_range",
			candidate: &game.Game{PlayerCountMin: 2, PlayerCountMax: 4},
			wantTerm:  15,
		},
		{
			// Midpoint 3 falls outside [4,6], but the ranges share player count 4.
			name:      "ranges_merely_overlap",
			candidate: &game.Game{PlayerCountMin: 4, PlayerCountMax: 6},
			wantTerm:  8,
		},
		{
			name:      "no_overlap",
			candidate: &game.Game{PlayerCountMin: 6, PlayerCountMax: 8},
			wantTerm:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := recommend.Score(tt.candidate, signals, nil, nil)

			// Isolate the player-count term: the same game with an impossible
			// player envelope scores everything except that term.
			baseline := *tt.candidate
			baseline.PlayerCountBest = nil
			baseline.PlayerCountMin, baseline.PlayerCountMax = 90, 99
			rest := recommend.Score(&baseline, signals, nil, nil)

			assert.InDelta(t, tt.wantTerm, score-rest, 0.001)
		})
	}
}

/*
TestScore_StaffPickMonotonicity checks the exact curation delta: two games
identical except for the staff-pick flag differ by exactly 6 points.
*/
func TestScore_StaffPickMonotonicity(t *testing.T) {
	signals := neutralSignals()

	plain := &game.Game{ID: "plain", PlayerCountMin: 2, PlayerCountMax: 4, Weight: floatPtr(2.0)}
	picked := &game.Game{ID: "picked", PlayerCountMin: 2, PlayerCountMax: 4, Weight: floatPtr(2.0), IsStaffPick: true}

	delta := recommend.Score(picked, signals, nil, nil) - recommend.Score(plain, signals, nil, nil)
	assert.InDelta(t, 6.0, delta, 0.001)
}

/*
TestScore_CurationBoostsStack verifies all four curation boosts are additive
on a single game (6+4+3+2 = 15).
*/
func TestScore_CurationBoostsStack(t *testing.T) {
	signals := neutralSignals()

	plain := &game.Game{PlayerCountMin: 2, PlayerCountMax: 4}
	curated := &game.Game{
		PlayerCountMin: 2, PlayerCountMax: 4,
		IsStaffPick: true, IsTopRated: true, IsTrending: true, IsHiddenGem: true,
	}

	delta := recommend.Score(curated, signals, nil, nil) - recommend.Score(plain, signals, nil, nil)
	assert.InDelta(t, 15.0, delta, 0.001)
}

/*
TestScore_MissingMetadataFallbacks confirms games without weight or play time
score against the documented fallbacks (2.5 and 60) instead of erroring or
being excluded.
*/
func TestScore_MissingMetadataFallbacks(t *testing.T) {
	bare := &game.Game{PlayerCountMin: 2, PlayerCountMax: 4}
	explicit := &game.Game{
		PlayerCountMin: 2, PlayerCountMax: 4,
		Weight:      floatPtr(2.5),
		PlayTimeMax: intPtr(60),
	}

	signals := neutralSignals()
	assert.InDelta(t, recommend.Score(explicit, signals, nil, nil), recommend.Score(bare, signals, nil, nil), 0.001)
}

/*
TestScore_PlayTimeFallbackChain verifies play_time_max is preferred, then
play_time_min, then the constant 60.
*/
func TestScore_PlayTimeFallbackChain(t *testing.T) {
	// Narrow window around 45 minutes: only games whose effective time lands
	// inside it collect a play-time term.
	signals := recommend.Signals{
		PlayerCountMin: 1, PlayerCountMax: 10,
		PlayTimeMin: 40, PlayTimeMax: 50,
		WeightMin: 1, WeightMax: 5,
	}

	usesMax := &game.Game{PlayerCountMin: 1, PlayerCountMax: 4, PlayTimeMin: intPtr(200), PlayTimeMax: intPtr(45)}
	usesMin := &game.Game{PlayerCountMin: 1, PlayerCountMax: 4, PlayTimeMin: intPtr(45)}
	usesDefault := &game.Game{PlayerCountMin: 1, PlayerCountMax: 4}

	assert.Greater(t, recommend.Score(usesMax, signals, nil, nil), recommend.Score(usesDefault, signals, nil, nil))
	assert.InDelta(t, recommend.Score(usesMax, signals, nil, nil), recommend.Score(usesMin, signals, nil, nil), 0.001)
}

/*
TestScore_TagMatchCaps verifies the capped linear tag terms: categories at
min(n*7, 15), mechanics at min(n*5, 10), themes only when a theme preference
exists.
*/
func TestScore_TagMatchCaps(t *testing.T) {
	candidate := &game.Game{PlayerCountMin: 2, PlayerCountMax: 4}

	t.Run("category_cap", func(t *testing.T) {
		signals := neutralSignals()
		signals.PreferredCategories = []string{"strategy", "economic", "war-game"}

		baseline := recommend.Score(candidate, signals, nil, nil)
		one := recommend.Score(candidate, signals, []string{"strategy"}, nil)
		three := recommend.Score(candidate, signals, []string{"strategy", "economic", "war-game"}, nil)

		assert.InDelta(t, 7.0, one-baseline, 0.001)
		assert.InDelta(t, 15.0, three-baseline, 0.001, "3 matches would be 21 uncapped")
	})

	t.Run("mechanic_cap", func(t *testing.T) {
		signals := neutralSignals()
		signals.PreferredMechanics = []string{"deck-building", "drafting", "set-collection"}

		baseline := recommend.Score(candidate, signals, nil, nil)
		one := recommend.Score(candidate, signals, nil, []string{"drafting"})
		three := recommend.Score(candidate, signals, nil, []string{"deck-building", "drafting", "set-collection"})

		assert.InDelta(t, 5.0, one-baseline, 0.001)
		assert.InDelta(t, 10.0, three-baseline, 0.001, "3 matches would be 15 uncapped")
	})

	t.Run("theme_term_requires_theme_preference", func(t *testing.T) {
		withoutThemes := neutralSignals()
		score := recommend.Score(candidate, withoutThemes, []string{"fantasy"}, nil)

		withThemes := neutralSignals()
		withThemes.PreferredThemes = []string{"fantasy"}
		themed := recommend.Score(candidate, withThemes, []string{"fantasy"}, nil)

		assert.InDelta(t, 5.0, themed-score, 0.001)
	})
}

/*
TestRank_FullScenario is the end-to-end ranking check: a well-fitting staff
pick must outrank a solo-only heavyweight that misses every term.
*/
func TestRank_FullScenario(t *testing.T) {
	g1 := &game.Game{
		ID:              "g1",
		Weight:          floatPtr(2.0),
		PlayerCountMin:  2,
		PlayerCountMax:  4,
		PlayerCountBest: []int{3},
		IsStaffPick:     true,
	}
	g2 := &game.Game{
		ID:             "g2",
		Weight:         floatPtr(4.5),
		PlayerCountMin: 1,
		PlayerCountMax: 1,
	}

	signals := recommend.Signals{
		PlayerCountMin: 3, PlayerCountMax: 3,
		PlayTimeMin: 0, PlayTimeMax: 300,
		WeightMin: 1, WeightMax: 2.5,
	}

	ranked := recommend.Rank([]*game.Game{g2, g1}, signals, nil, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "g1", ranked[0].Game.ID)
	assert.Equal(t, "g2", ranked[1].Game.ID)
	assert.Greater(t, ranked[0].Score, ranked[1].Score+30, "g1 collects best-count, weight, and curation terms")
}

/*
TestRank_StableForTies verifies equal scores preserve input relative order.
*/
func TestRank_StableForTies(t *testing.T) {
	twin := func(id string) *game.Game {
		return &game.Game{ID: id, PlayerCountMin: 2, PlayerCountMax: 4, Weight: floatPtr(2.0)}
	}

	ranked := recommend.Rank(
		[]*game.Game{twin("first"), twin("second"), twin("third")},
		neutralSignals(), nil, nil,
	)

	require.Len(t, ranked, 3)
	assert.Equal(t, ranked[0].Score, ranked[1].Score)
	assert.Equal(t, "first", ranked[0].Game.ID)
	assert.Equal(t, "second", ranked[1].Game.ID)
	assert.Equal(t, "third", ranked[2].Game.ID)
}

/*
TestRank_Determinism runs the same ranking twice and requires identical
output.
*/
func TestRank_Determinism(t *testing.T) {
	games := []*game.Game{
		{ID: "a", PlayerCountMin: 1, PlayerCountMax: 4, Weight: floatPtr(1.8)},
		{ID: "b", PlayerCountMin: 2, PlayerCountMax: 6, IsTrending: true},
		{ID: "c", PlayerCountMin: 5, PlayerCountMax: 10, PlayTimeMax: intPtr(25)},
	}
	categories := map[string][]string{"a": {"strategy"}, "c": {"party"}}
	mechanics := map[string][]string{"b": {"drafting"}}

	signals := recommend.BuildSignals(recommend.Answers{
		PlayerCount:    recommend.PlayerCountParty,
		PlayTime:       recommend.PlayTimeQuick,
		ExperienceType: recommend.ExperienceSocial,
	})

	first := recommend.Rank(games, signals, categories, mechanics)
	second := recommend.Rank(games, signals, categories, mechanics)

	assert.Equal(t, first, second)
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meeplebay/meeplebay/internal/core/recommend"
)

/*
TestBuildSignals_PlayerCountBuckets maps every player-count answer to its
target range, including the permissive default when the step is skipped.
*/
func TestBuildSignals_PlayerCountBuckets(t *testing.T) {
	tests := []struct {
		name    string
		choice  recommend.PlayerCountChoice
		wantMin int
		wantMax int
	}{
		{"solo", recommend.PlayerCountSolo, 1, 1},
		{"partner", recommend.PlayerCountPartner, 2, 2},
		{"small_group", recommend.PlayerCountSmallGroup, 3, 4},
		{"party", recommend.PlayerCountParty, 5, 12},
		{"skipped_defaults", "", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := recommend.BuildSignals(recommend.Answers{PlayerCount: tt.choice})

			assert.Equal(t, tt.wantMin, signals.PlayerCountMin)
			assert.Equal(t, tt.wantMax, signals.PlayerCountMax)
		})
	}
}

/*
TestBuildSignals_PlayTimeBuckets maps every session-length answer to its
minute range.
*/
func TestBuildSignals_PlayTimeBuckets(t *testing.T) {
	tests := []struct {
		name    string
		choice  recommend.PlayTimeChoice
		wantMin int
		wantMax int
	}{
		{"quick", recommend.PlayTimeQuick, 0, 30},
		{"standard", recommend.PlayTimeStandard, 30, 60},
		{"long", recommend.PlayTimeLong, 60, 120},
		{"epic", recommend.PlayTimeEpic, 120, 300},
		{"skipped_defaults", "", 0, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := recommend.BuildSignals(recommend.Answers{PlayTime: tt.choice})

			assert.Equal(t, tt.wantMin, signals.PlayTimeMin)
			assert.Equal(t, tt.wantMax, signals.PlayTimeMax)
		})
	}
}

/*
TestBuildSignals_ExperienceLevelToWeight maps tabletop experience to the
target complexity range.
*/
func TestBuildSignals_ExperienceLevelToWeight(t *testing.T) {
	tests := []struct {
		name    string
		choice  recommend.ExperienceLevelChoice
		wantMin float64
		wantMax float64
	}{
		{"new", recommend.ExperienceNew, 1, 2},
		{"casual", recommend.ExperienceCasual, 1.5, 2.5},
		{"experienced", recommend.ExperienceExperienced, 2, 4},
		{"hardcore", recommend.ExperienceHardcore, 3, 5},
		{"skipped_defaults", "", 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := recommend.BuildSignals(recommend.Answers{ExperienceLevel: tt.choice})

			assert.InDelta(t, tt.wantMin, signals.WeightMin, 0.001)
			assert.InDelta(t, tt.wantMax, signals.WeightMax, 0.001)
		})
	}
}

/*
TestBuildSignals_ExperienceTypeSeedsCategories verifies the session-type
answer seeds the category preference list.
*/
func TestBuildSignals_ExperienceTypeSeedsCategories(t *testing.T) {
	signals := recommend.BuildSignals(recommend.Answers{ExperienceType: recommend.ExperienceSocial})

	assert.ElementsMatch(t, []string{"party", "social-deduction", "word-game"}, signals.PreferredCategories)
	assert.Empty(t, signals.PreferredThemes)
	assert.Empty(t, signals.PreferredMechanics)
}

/*
TestBuildSignals_ThemeWorldKeywords verifies a concrete theme world appends
its keywords to both the theme and category lists, while surprise-me seeds
nothing.
*/
func TestBuildSignals_ThemeWorldKeywords(t *testing.T) {
	t.Run("swords_sorcery_appends_to_both_lists", func(t *testing.T) {
		signals := recommend.BuildSignals(recommend.Answers{ThemeWorld: recommend.ThemeSwordsSorcery})

		expected := []string{"fantasy", "medieval", "adventure", "mythology", "fighting", "dragons"}
		assert.Equal(t, expected, signals.PreferredThemes)
		assert.Equal(t, expected, signals.PreferredCategories)
	})

	t.Run("surprise_me_seeds_nothing", func(t *testing.T) {
		signals := recommend.BuildSignals(recommend.Answers{ThemeWorld: recommend.ThemeSurpriseMe})

		assert.Empty(t, signals.PreferredThemes)
		assert.Empty(t, signals.PreferredCategories)
	})
}

/*
TestBuildSignals_FieldsAreIndependent exercises the documented combined
example: party + quick yields the party player range and the quick time range
without either answer affecting the other's signal.
*/
func TestBuildSignals_FieldsAreIndependent(t *testing.T) {
	signals := recommend.BuildSignals(recommend.Answers{
		PlayerCount: recommend.PlayerCountParty,
		PlayTime:    recommend.PlayTimeQuick,
	})

	assert.Equal(t, 5, signals.PlayerCountMin)
	assert.Equal(t, 12, signals.PlayerCountMax)
	assert.Equal(t, 0, signals.PlayTimeMin)
	assert.Equal(t, 30, signals.PlayTimeMax)

	// Untouched signals keep their defaults.
	assert.InDelta(t, 1.0, signals.WeightMin, 0.001)
	assert.InDelta(t, 5.0, signals.WeightMax, 0.001)
}

/*
TestBuildSignals_DuplicateKeywordsAreHarmless combines an experience type and
a theme whose keyword lists overlap; concatenation keeps the duplicate, which
scoring treats as plain membership.
*/
func TestBuildSignals_DuplicateKeywordsAreHarmless(t *testing.T) {
	signals := recommend.BuildSignals(recommend.Answers{
		ExperienceType: recommend.ExperienceNarrative, // seeds "fantasy" among others
		ThemeWorld:     recommend.ThemeSwordsSorcery,  // also contains "fantasy"
	})

	occurrences := 0
	for _, tag := range signals.PreferredCategories {
		if tag == "fantasy" {
			occurrences++
		}
	}
	assert.Equal(t, 2, occurrences, "concatenation keeps duplicates")
}

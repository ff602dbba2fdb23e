// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/core/recommend"
)

/*
TestCatalog_DeclarationOrder pins the catalog order, which doubles as the
classification tie-break and must never change.
*/
func TestCatalog_DeclarationOrder(t *testing.T) {
	require.Len(t, recommend.Archetypes, 6)

	wantOrder := []string{"strategist", "social-butterfly", "team-player", "storyteller", "quick-draw", "curator"}
	for i, archetype := range recommend.Archetypes {
		assert.Equal(t, wantOrder[i], archetype.ID)
	}
}

/*
TestClassify_DominantAnswers checks representative answer sets against their
expected winning persona.
*/
func TestClassify_DominantAnswers(t *testing.T) {
	tests := []struct {
		name    string
		answers recommend.Answers
		want    string
	}{
		{
			// party: social-butterfly +25; social: social-butterfly +35.
			name: "party_social_picks_social_butterfly",
			answers: recommend.Answers{
				PlayerCount:    recommend.PlayerCountParty,
				ExperienceType: recommend.ExperienceSocial,
			},
			want: "social-butterfly",
		},
		{
			name: "cooperative_picks_team_player",
			answers: recommend.Answers{
				PlayerCount:    recommend.PlayerCountSmallGroup,
				ExperienceType: recommend.ExperienceCooperative,
			},
			want: "team-player",
		},
		{
			name: "epic_competitive_picks_strategist",
			answers: recommend.Answers{
				PlayTime:        recommend.PlayTimeEpic,
				ExperienceLevel: recommend.ExperienceHardcore,
				ExperienceType:  recommend.ExperienceCompetitive,
			},
			want: "strategist",
		},
		{
			name: "narrative_picks_storyteller",
			answers: recommend.Answers{
				PlayTime:       recommend.PlayTimeLong,
				ExperienceType: recommend.ExperienceNarrative,
			},
			want: "storyteller",
		},
		{
			name: "quick_new_picks_quick_draw",
			answers: recommend.Answers{
				PlayTime:        recommend.PlayTimeQuick,
				ExperienceLevel: recommend.ExperienceNew,
			},
			want: "quick-draw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			archetype := recommend.Classify(tt.answers)
			assert.Equal(t, tt.want, archetype.ID)
		})
	}
}

/*
TestClassify_TieBreakByDeclarationOrder verifies ties resolve to the earliest
catalog entry: with no answers every accumulator is zero and the first entry
wins.
*/
func TestClassify_TieBreakByDeclarationOrder(t *testing.T) {
	archetype := recommend.Classify(recommend.Answers{})
	assert.Equal(t, "strategist", archetype.ID)
}

/*
TestClassify_ExperienceTypeDominates confirms the session-type block is the
heaviest signal: a lone cooperative answer outweighs three answers pointing
elsewhere.
*/
func TestClassify_ExperienceTypeDominates(t *testing.T) {
	archetype := recommend.Classify(recommend.Answers{
		PlayerCount:     recommend.PlayerCountPartner, // strategist +10
		PlayTime:        recommend.PlayTimeLong,       // strategist +15
		ExperienceLevel: recommend.ExperienceCasual,   // team-player +10
		ExperienceType:  recommend.ExperienceCooperative,
	})

	assert.Equal(t, "team-player", archetype.ID)
}

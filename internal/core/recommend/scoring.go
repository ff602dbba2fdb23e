// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend

import (
	"math"
	"sort"

	"github.com/meeplebay/meeplebay/internal/core/game"
	"github.com/meeplebay/meeplebay/pkg/pointer"
)

// # Scoring Constants

// Fallbacks for games with incomplete metadata. A missing field never
// excludes a candidate; it just scores against the fallback.
const (
	fallbackWeight   = 2.5
	fallbackPlayTime = 60
)

// Term caps and weights of the additive scoring formula, out of a notional
// 100 points. Scores are relative and only used for sort order; the total is
// neither normalized nor clamped.
const (
	playerCountBestScore    = 25.0
	playerCountInRangeScore = 15.0
	playerCountOverlapScore = 8.0

	playTimeMaxScore = 10.0
	playTimeMinScore = 3.0

	weightMaxScore = 15.0
	weightMinScore = 5.0

	categoryMatchPoints = 7.0
	categoryMatchCap    = 15.0

	themeMatchPoints = 5.0
	themeMatchCap    = 10.0

	mechanicMatchPoints = 5.0
	mechanicMatchCap    = 10.0

	staffPickBoost = 6.0
	topRatedBoost  = 4.0
	trendingBoost  = 3.0
	hiddenGemBoost = 2.0
)

// ScoredGame pairs a candidate with its computed preference score.
type ScoredGame struct {
	Game  *game.Game `json:"game"`
	Score float64    `json:"score"`
}

// # Scoring

/*
Score computes the preference fit of one candidate game.

Description: Seven terms are computed independently and summed: player-count
fit (25), play-time fit (10), weight fit (15), category matches (15), theme
matches (10), mechanic matches (10), and curation boosts (15). Missing
metadata falls back to fixed constants rather than erroring, and a game with
zero matching signals simply scores low; hard filtering is the caller's
responsibility.

Parameters:
  - candidate: *game.Game (The game under evaluation)
  - signals: Signals (The derived preference vector)
  - categories: []string (The game's category tag slugs)
  - mechanics: []string (The game's mechanic tag slugs)

Returns:
  - float64: The summed score; higher is a better fit
*/
func Score(candidate *game.Game, signals Signals, categories, mechanics []string) float64 {
	total := 0.0

	total += playerCountTerm(candidate, signals)
	total += playTimeTerm(candidate, signals)
	total += weightTerm(candidate, signals)

	total += matchTerm(categories, signals.PreferredCategories, categoryMatchPoints, categoryMatchCap)

	// Themes share the catalogue's category tag space; the term only applies
	// when the wizard expressed a theme preference at all.
	if len(signals.PreferredThemes) > 0 {
		total += matchTerm(categories, signals.PreferredThemes, themeMatchPoints, themeMatchCap)
	}

	total += matchTerm(mechanics, signals.PreferredMechanics, mechanicMatchPoints, mechanicMatchCap)

	// Curation boosts are additive; a game can collect all four.
	if candidate.IsStaffPick {
		total += staffPickBoost
	}
	if candidate.IsTopRated {
		total += topRatedBoost
	}
	if candidate.IsTrending {
		total += trendingBoost
	}
	if candidate.IsHiddenGem {
		total += hiddenGemBoost
	}

	return total
}

/*
Rank scores every candidate and returns them best-first.

Description: Candidates are scored via [Score] using the per-game tag lists
and sorted descending. The sort is stable, so equal scores preserve the input
relative order.

Parameters:
  - candidates: []*game.Game (The pre-filtered candidate set)
  - signals: Signals (The derived preference vector)
  - categoriesByGameID: map[string][]string (Category slugs per game id)
  - mechanicsByGameID: map[string][]string (Mechanic slugs per game id)

Returns:
  - []ScoredGame: Descending by score, stable for ties
*/
func Rank(candidates []*game.Game, signals Signals, categoriesByGameID, mechanicsByGameID map[string][]string) []ScoredGame {
	scored := make([]ScoredGame, 0, len(candidates))
	for _, candidate := range candidates {
		scored = append(scored, ScoredGame{
			Game:  candidate,
			Score: Score(candidate, signals, categoriesByGameID[candidate.ID], mechanicsByGameID[candidate.ID]),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// # Term Computation

// playerCountTerm scores how well the signal's target count fits the game's
// player envelope: best-count match > in supported range > ranges overlap.
func playerCountTerm(candidate *game.Game, signals Signals) float64 {
	midpoint := (signals.PlayerCountMin + signals.PlayerCountMax) / 2

	for _, best := range candidate.PlayerCountBest {
		if best == midpoint {
			return playerCountBestScore
		}
	}

	if midpoint >= candidate.PlayerCountMin && midpoint <= candidate.PlayerCountMax {
		return playerCountInRangeScore
	}

	if signals.PlayerCountMax >= candidate.PlayerCountMin && signals.PlayerCountMin <= candidate.PlayerCountMax {
		return playerCountOverlapScore
	}

	return 0
}

// playTimeTerm scores the game's effective play time against the target
// range, decaying with distance from the range midpoint.
func playTimeTerm(candidate *game.Game, signals Signals) float64 {
	effective := fallbackPlayTime
	switch {
	case candidate.PlayTimeMax != nil:
		effective = *candidate.PlayTimeMax
	case candidate.PlayTimeMin != nil:
		effective = *candidate.PlayTimeMin
	}

	if effective < signals.PlayTimeMin || effective > signals.PlayTimeMax {
		return 0
	}

	midpoint := float64(signals.PlayTimeMin+signals.PlayTimeMax) / 2
	if midpoint <= 0 {
		return playTimeMaxScore
	}

	deviationRatio := math.Abs(float64(effective)-midpoint) / midpoint
	return math.Max(playTimeMinScore, playTimeMaxScore-deviationRatio*7)
}

// weightTerm scores the game's complexity against the target range, decaying
// with distance from the range midpoint.
func weightTerm(candidate *game.Game, signals Signals) float64 {
	weight := pointer.Fallback(candidate.Weight, fallbackWeight)

	if weight < signals.WeightMin || weight > signals.WeightMax {
		return 0
	}

	midpoint := (signals.WeightMin + signals.WeightMax) / 2
	if midpoint <= 0 {
		return weightMaxScore
	}

	deviationRatio := math.Abs(weight-midpoint) / midpoint
	return math.Max(weightMinScore, weightMaxScore-deviationRatio*10)
}

// matchTerm counts game tags present in the preference list and converts the
// count to capped points. Membership, not multiplicity: duplicate preferences
// never double-count a tag.
func matchTerm(gameTags, preferred []string, pointsPerMatch, maxPoints float64) float64 {
	if len(gameTags) == 0 || len(preferred) == 0 {
		return 0
	}

	preferredSet := make(map[string]bool, len(preferred))
	for _, tag := range preferred {
		preferredSet[tag] = true
	}

	matches := 0
	for _, tag := range gameTags {
		if preferredSet[tag] {
			matches++
		}
	}

	return math.Min(float64(matches)*pointsPerMatch, maxPoints)
}

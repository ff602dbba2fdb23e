// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend

// # Preference Signals

// Signals is the continuous preference vector derived from wizard answers.
//
// Ranges are inclusive targets, not hard filters. The tag lists are
// order-irrelevant and may contain duplicates; scoring uses membership tests,
// so duplicates are harmless downstream.
type Signals struct {
	PlayerCountMin int `json:"player_count_min"`
	PlayerCountMax int `json:"player_count_max"`

	PlayTimeMin int `json:"play_time_min"`
	PlayTimeMax int `json:"play_time_max"`

	WeightMin float64 `json:"weight_min"`
	WeightMax float64 `json:"weight_max"`

	PreferredCategories []string `json:"preferred_categories"`
	PreferredMechanics  []string `json:"preferred_mechanics"`
	PreferredThemes     []string `json:"preferred_themes"`
}

// experienceTypeCategories seeds category preferences per session-type answer.
var experienceTypeCategories = map[ExperienceTypeChoice][]string{
	ExperienceCompetitive: {"strategy", "economic", "war-game"},
	ExperienceCooperative: {"cooperative", "team-based"},
	ExperienceStrategic:   {"strategy", "economic", "civilization"},
	ExperienceSocial:      {"party", "social-deduction", "word-game"},
	ExperienceNarrative:   {"thematic", "adventure", "fantasy"},
}

// themeWorldKeywords maps each setting bucket to its tag keywords. The
// keywords land in both the theme and category preference lists because the
// catalogue keeps themes and categories in the same tag space.
var themeWorldKeywords = map[ThemeWorldChoice][]string{
	ThemeSwordsSorcery: {"fantasy", "medieval", "adventure", "mythology", "fighting", "dragons"},
	ThemeSpaceFrontier: {"science-fiction", "space-exploration", "aliens", "civilization", "technology"},
	ThemeEldritch:      {"horror", "mystery", "investigation", "supernatural", "gothic", "lovecraftian"},
	ThemeCozyHearth:    {"family", "animals", "farming", "nature", "gardening", "cooking", "relaxing"},
	ThemeHighSociety:   {"economic", "trading", "politics", "negotiation", "city-building", "renaissance"},
}

/*
BuildSignals converts discrete wizard answers into a continuous preference vector.

Description: Each answer maps independently; no field influences another.
Skipped answers fall back to permissive defaults (any player count 1-10, any
time up to five hours, any complexity). The experience-type answer seeds
category preferences; a concrete theme world appends its keywords to both the
theme and category lists by simple concatenation.

Parameters:
  - answers: Answers (The wizard's discrete responses, all optional)

Returns:
  - Signals: Fresh preference vector; never an error
*/
func BuildSignals(answers Answers) Signals {
	signals := Signals{
		PlayerCountMin: 1, PlayerCountMax: 10,
		PlayTimeMin: 0, PlayTimeMax: 300,
		WeightMin: 1, WeightMax: 5,
		PreferredCategories: []string{},
		PreferredMechanics:  []string{},
		PreferredThemes:     []string{},
	}

	switch answers.PlayerCount {
	case PlayerCountSolo:
		signals.PlayerCountMin, signals.PlayerCountMax = 1, 1
	case PlayerCountPartner:
		signals.PlayerCountMin, signals.PlayerCountMax = 2, 2
	case PlayerCountSmallGroup:
		signals.PlayerCountMin, signals.PlayerCountMax = 3, 4
	case PlayerCountParty:
		signals.PlayerCountMin, signals.PlayerCountMax = 5, 12
	}

	switch answers.PlayTime {
	case PlayTimeQuick:
		signals.PlayTimeMin, signals.PlayTimeMax = 0, 30
	case PlayTimeStandard:
		signals.PlayTimeMin, signals.PlayTimeMax = 30, 60
	case PlayTimeLong:
		signals.PlayTimeMin, signals.PlayTimeMax = 60, 120
	case PlayTimeEpic:
		signals.PlayTimeMin, signals.PlayTimeMax = 120, 300
	}

	switch answers.ExperienceLevel {
	case ExperienceNew:
		signals.WeightMin, signals.WeightMax = 1, 2
	case ExperienceCasual:
		signals.WeightMin, signals.WeightMax = 1.5, 2.5
	case ExperienceExperienced:
		signals.WeightMin, signals.WeightMax = 2, 4
	case ExperienceHardcore:
		signals.WeightMin, signals.WeightMax = 3, 5
	}

	if seeded, ok := experienceTypeCategories[answers.ExperienceType]; ok {
		signals.PreferredCategories = append(signals.PreferredCategories, seeded...)
	}

	if answers.ThemeWorld != "" && answers.ThemeWorld != ThemeSurpriseMe {
		if keywords, ok := themeWorldKeywords[answers.ThemeWorld]; ok {
			signals.PreferredThemes = append(signals.PreferredThemes, keywords...)
			signals.PreferredCategories = append(signals.PreferredCategories, keywords...)
		}
	}

	return signals
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

/*
Package recommend implements the preference wizard's recommendation engine.

It converts the wizard's discrete answers into continuous preference signals,
classifies the player into one of six fixed archetypes, and scores candidate
games against the signals to produce a ranked shortlist.

Core Responsibility:

  - Signals: Map answer buckets to numeric target ranges and tag preferences.
  - Archetypes: Additive weighted classification into a fixed persona catalog.
  - Scoring: Multi-term weighted-sum ranking of candidate games.

All three stages are pure and synchronous; every invocation derives fresh
output from its inputs alone. The point values throughout this package are
product-tuned constants; do not re-derive or "clean up" the weights, as that
silently changes recommendation behavior.
*/
package recommend

// # Wizard Enums

// Each answer is optional; an empty string means the step was skipped and the
// corresponding signal falls back to its permissive default.

// PlayerCountChoice buckets how many people usually play.
type PlayerCountChoice string

const (
	PlayerCountSolo       PlayerCountChoice = "solo"
	PlayerCountPartner    PlayerCountChoice = "partner"
	PlayerCountSmallGroup PlayerCountChoice = "small-group"
	PlayerCountParty      PlayerCountChoice = "party"
)

// PlayTimeChoice buckets the preferred session length.
type PlayTimeChoice string

const (
	PlayTimeQuick    PlayTimeChoice = "quick"
	PlayTimeStandard PlayTimeChoice = "standard"
	PlayTimeLong     PlayTimeChoice = "long"
	PlayTimeEpic     PlayTimeChoice = "epic"
)

// ExperienceLevelChoice buckets tabletop experience, mapped to a complexity range.
type ExperienceLevelChoice string

const (
	ExperienceNew         ExperienceLevelChoice = "new"
	ExperienceCasual      ExperienceLevelChoice = "casual"
	ExperienceExperienced ExperienceLevelChoice = "experienced"
	ExperienceHardcore    ExperienceLevelChoice = "hardcore"
)

// ExperienceTypeChoice buckets what the player wants out of a session.
type ExperienceTypeChoice string

const (
	ExperienceCompetitive ExperienceTypeChoice = "competitive"
	ExperienceCooperative ExperienceTypeChoice = "cooperative"
	ExperienceStrategic   ExperienceTypeChoice = "strategic"
	ExperienceSocial      ExperienceTypeChoice = "social"
	ExperienceNarrative   ExperienceTypeChoice = "narrative"
)

// ThemeWorldChoice buckets the preferred setting. ThemeSurpriseMe expresses
// no preference and seeds nothing.
type ThemeWorldChoice string

const (
	ThemeSwordsSorcery ThemeWorldChoice = "swords-sorcery"
	ThemeSpaceFrontier ThemeWorldChoice = "space-frontier"
	ThemeEldritch      ThemeWorldChoice = "eldritch-horror"
	ThemeCozyHearth    ThemeWorldChoice = "cozy-hearth"
	ThemeHighSociety   ThemeWorldChoice = "high-society"
	ThemeSurpriseMe    ThemeWorldChoice = "surprise-me"
)

// Answers is the plain record of wizard responses. Every field is optional.
type Answers struct {
	PlayerCount     PlayerCountChoice     `json:"player_count,omitempty"`
	PlayTime        PlayTimeChoice        `json:"play_time,omitempty"`
	ExperienceLevel ExperienceLevelChoice `json:"experience_level,omitempty"`
	ExperienceType  ExperienceTypeChoice  `json:"experience_type,omitempty"`
	ThemeWorld      ThemeWorldChoice      `json:"theme_world,omitempty"`
}

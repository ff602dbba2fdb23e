// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend

// # Player Archetypes

// Archetype is one of six fixed personas used to contextualize a
// recommendation set for the player.
type Archetype struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Emblem      string `json:"emblem"` // Visual tag rendered next to the persona name
}

// Archetypes is the immutable archetype reference data.
//
// Declaration order doubles as the tie-break for [Classify]: when two
// archetypes accumulate the same score, the earlier entry wins. Do not
// reorder.
var Archetypes = []Archetype{
	{
		ID:          "strategist",
		DisplayName: "The Strategist",
		Description: "Thrives on deep decision trees, long-term planning, and outthinking the table.",
		Emblem:      "chess-knight",
	},
	{
		ID:          "social-butterfly",
		DisplayName: "The Social Butterfly",
		Description: "Plays for the laughter and the table talk; the bigger the group, the better.",
		Emblem:      "confetti",
	},
	{
		ID:          "team-player",
		DisplayName: "The Team Player",
		Description: "Happiest when everyone wins or loses together against the game itself.",
		Emblem:      "linked-rings",
	},
	{
		ID:          "storyteller",
		DisplayName: "The Storyteller",
		Description: "Chases immersive worlds, campaign arcs, and games that leave a tale to retell.",
		Emblem:      "open-book",
	},
	{
		ID:          "quick-draw",
		DisplayName: "The Quick Draw",
		Description: "Wants fast setup, snappy turns, and one more round before the night ends.",
		Emblem:      "lightning",
	},
	{
		ID:          "curator",
		DisplayName: "The Curator",
		Description: "Collects refined systems and hidden gems, savoring elegance over hype.",
		Emblem:      "magnifier",
	},
}

// archetypeRule adds points to a set of archetypes when an answer matches.
type archetypeRule map[string]int

// The four rule blocks below are hand-tuned product constants (5-40 points
// per contribution). The experience-type block is deliberately the heaviest
// signal. Reproduce, never re-derive.

var playerCountRules = map[PlayerCountChoice]archetypeRule{
	PlayerCountSolo:       {"strategist": 20, "curator": 15},
	PlayerCountPartner:    {"strategist": 10, "storyteller": 10, "quick-draw": 5},
	PlayerCountSmallGroup: {"team-player": 15, "strategist": 10},
	PlayerCountParty:      {"social-butterfly": 25, "quick-draw": 10},
}

var playTimeRules = map[PlayTimeChoice]archetypeRule{
	PlayTimeQuick:    {"quick-draw": 25, "social-butterfly": 10},
	PlayTimeStandard: {"team-player": 10, "social-butterfly": 5, "quick-draw": 5},
	PlayTimeLong:     {"strategist": 15, "storyteller": 10},
	PlayTimeEpic:     {"strategist": 25, "storyteller": 15, "curator": 5},
}

var experienceLevelRules = map[ExperienceLevelChoice]archetypeRule{
	ExperienceNew:         {"social-butterfly": 10, "quick-draw": 10},
	ExperienceCasual:      {"team-player": 10, "social-butterfly": 5},
	ExperienceExperienced: {"strategist": 15, "curator": 10},
	ExperienceHardcore:    {"strategist": 20, "curator": 20},
}

var experienceTypeRules = map[ExperienceTypeChoice]archetypeRule{
	ExperienceCompetitive: {"strategist": 40, "quick-draw": 10},
	ExperienceCooperative: {"team-player": 40, "storyteller": 5},
	ExperienceStrategic:   {"strategist": 35, "curator": 15},
	ExperienceSocial:      {"social-butterfly": 35, "team-player": 10},
	ExperienceNarrative:   {"storyteller": 40, "curator": 10},
}

/*
Classify selects the archetype best matching the wizard answers.

Description: A score accumulator is kept for all six archetypes. Four
independent additive rule blocks (player count, play time, experience level,
experience type) each contribute fixed points to one to three archetypes per
answer value. The archetype with the strictly highest total wins; ties fall
to the earliest entry in [Archetypes].

Parameters:
  - answers: Answers (The wizard's discrete responses, all optional)

Returns:
  - Archetype: The winning persona; the first catalog entry when all answers are skipped
*/
func Classify(answers Answers) Archetype {
	scores := make(map[string]int, len(Archetypes))
	for _, archetype := range Archetypes {
		scores[archetype.ID] = 0
	}

	applyRule(scores, playerCountRules[answers.PlayerCount])
	applyRule(scores, playTimeRules[answers.PlayTime])
	applyRule(scores, experienceLevelRules[answers.ExperienceLevel])
	applyRule(scores, experienceTypeRules[answers.ExperienceType])

	winner := Archetypes[0]
	best := scores[winner.ID]
	for _, archetype := range Archetypes[1:] {
		if scores[archetype.ID] > best {
			winner = archetype
			best = scores[archetype.ID]
		}
	}
	return winner
}

// applyRule adds one rule block's contributions to the accumulator.
func applyRule(scores map[string]int, rule archetypeRule) {
	for archetypeID, points := range rule {
		scores[archetypeID] += points
	}
}

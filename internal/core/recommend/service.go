// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend

import (
	"context"
	"log/slog"

	"github.com/meeplebay/meeplebay/internal/core/game"
)

// # Service Layer

// Candidate pool bounds. The scorer is linear in candidates, so the pool is
// capped before scoring rather than after.
const (
	defaultResultCount = 10
	maxResultCount     = 50
	candidatePoolLimit = 500
)

// Catalog is the slice of the game repository the recommender consumes.
type Catalog interface {
	ListCandidates(context context.Context, playerCount, limit int) ([]*game.Game, error)
}

// Narrator rewrites a wizard outcome into presentation prose. No
// implementation ships with the service; the hook exists so an external
// text generator can be attached without touching the ranking path.
type Narrator interface {
	Narrate(context context.Context, result *Result) (string, error)
}

// Result is the complete wizard outcome: the player's persona plus the
// ranked recommendation list.
type Result struct {
	Archetype Archetype    `json:"archetype"`
	Games     []ScoredGame `json:"games"`
	Narrative string       `json:"narrative,omitempty"`
}

// Service runs the recommendation wizard end to end.
type Service struct {
	catalog  Catalog
	narrator Narrator
	logger   *slog.Logger
}

// NewService constructs a new recommendation [Service].
func NewService(catalog Catalog, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// SetNarrator attaches the optional prose hook.
func (service *Service) SetNarrator(narrator Narrator) {
	service.narrator = narrator
}

/*
Recommend converts wizard answers into a persona and a ranked game list.

Description: Answers are first reduced to a preference signal vector and an
archetype classification, both pure in-memory computations. The candidate
pool is then pre-filtered in the database by the target player count, scored
against the signals, and truncated to the requested size.

Parameters:
  - context: context.Context
  - answers: Answers (The wizard's discrete responses, all optional)
  - limit: int (Requested result count; clamped to [1, 50], 0 means default)

Returns:
  - *Result: Persona and ranked recommendations, best first
  - error: Candidate retrieval failures
*/
func (service *Service) Recommend(context context.Context, answers Answers, limit int) (*Result, error) {

	// Result size clamping
	if limit <= 0 {
		limit = defaultResultCount
	}
	if limit > maxResultCount {
		limit = maxResultCount
	}

	// Pure preference derivation
	signals := BuildSignals(answers)
	archetype := Classify(answers)

	// Database pre-filter on the target player count
	targetCount := (signals.PlayerCountMin + signals.PlayerCountMax) / 2
	candidates, err := service.catalog.ListCandidates(context, targetCount, candidatePoolLimit)
	if err != nil {
		return nil, err
	}

	// Candidates arrive with tag slugs hydrated; project them into the
	// per-game lookup maps the ranker consumes.
	categories := make(map[string][]string, len(candidates))
	mechanics := make(map[string][]string, len(candidates))
	for _, candidate := range candidates {
		categories[candidate.ID] = candidate.Categories
		mechanics[candidate.ID] = candidate.Mechanics
	}

	ranked := Rank(candidates, signals, categories, mechanics)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := &Result{
		Archetype: archetype,
		Games:     ranked,
	}

	// Narration is cosmetic; failures never degrade the recommendations.
	if service.narrator != nil {
		if narrative, err := service.narrator.Narrate(context, result); err != nil {
			service.logger.Warn("wizard_narration_failed", slog.String("error", err.Error()))
		} else {
			result.Narrative = narrative
		}
	}

	service.logger.Info("wizard_completed",
		slog.String("archetype", archetype.ID),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(ranked)),
	)

	return result, nil
}

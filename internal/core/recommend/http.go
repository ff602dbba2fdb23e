// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

/*
Package recommend provides the HTTP interface for the recommendation wizard.

A single public endpoint accepts the wizard's answers and returns the
classified player archetype together with a ranked game list. The wizard is
stateless: no answer is persisted, and every step may be skipped.
*/
package recommend

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/meeplebay/meeplebay/internal/platform/request"
	"github.com/meeplebay/meeplebay/internal/platform/respond"
	"github.com/meeplebay/meeplebay/internal/platform/validate"
	"github.com/meeplebay/meeplebay/pkg/convert"
)

// # Handler Implementation

// Handler translates wizard submissions into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new recommendation [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the wizard endpoint mounted.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/wizard", handler.runWizard)
	return router
}

// wizardRequest defines the inbound JSON schema for a wizard submission.
// Empty strings mean the step was skipped.
type wizardRequest struct {
	PlayerCount     string `json:"player_count"`
	PlayTime        string `json:"play_time"`
	ExperienceLevel string `json:"experience_level"`
	ExperienceType  string `json:"experience_type"`
	ThemeWorld      string `json:"theme_world"`
}

/*
POST /api/v1/recommendations/wizard.

Description: Runs the five-step preference wizard. Every field is optional;
skipped steps fall back to permissive defaults. Returns the matched player
archetype and up to `limit` ranked games.

Request:
  - limit: int (Query param; result count, default 10, max 50)
  - body: wizardRequest

Response:
  - 200: Result: Archetype and ranked recommendations
  - 400: 400: ErrInvalidJSON/Validation: Malformed body or unknown answer value
*/
func (handler *Handler) runWizard(writer http.ResponseWriter, request *http.Request) {
	var input wizardRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Unknown answer values are rejected rather than silently skipped, so
	// frontend regressions surface immediately.
	v := &validate.Validator{}
	if input.PlayerCount != "" {
		v.OneOf("player_count", input.PlayerCount,
			string(PlayerCountSolo), string(PlayerCountPartner), string(PlayerCountSmallGroup), string(PlayerCountParty))
	}
	if input.PlayTime != "" {
		v.OneOf("play_time", input.PlayTime,
			string(PlayTimeQuick), string(PlayTimeStandard), string(PlayTimeLong), string(PlayTimeEpic))
	}
	if input.ExperienceLevel != "" {
		v.OneOf("experience_level", input.ExperienceLevel,
			string(ExperienceNew), string(ExperienceCasual), string(ExperienceExperienced), string(ExperienceHardcore))
	}
	if input.ExperienceType != "" {
		v.OneOf("experience_type", input.ExperienceType,
			string(ExperienceCompetitive), string(ExperienceCooperative), string(ExperienceStrategic), string(ExperienceSocial), string(ExperienceNarrative))
	}
	if input.ThemeWorld != "" {
		v.OneOf("theme_world", input.ThemeWorld,
			string(ThemeSwordsSorcery), string(ThemeSpaceFrontier), string(ThemeEldritch), string(ThemeCozyHearth), string(ThemeHighSociety), string(ThemeSurpriseMe))
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	answers := Answers{
		PlayerCount:     PlayerCountChoice(input.PlayerCount),
		PlayTime:        PlayTimeChoice(input.PlayTime),
		ExperienceLevel: ExperienceLevelChoice(input.ExperienceLevel),
		ExperienceType:  ExperienceTypeChoice(input.ExperienceType),
		ThemeWorld:      ThemeWorldChoice(input.ThemeWorld),
	}

	// Optional result count
	limit := convert.ToInt(request.URL.Query().Get("limit"))

	result, err := handler.service.Recommend(request.Context(), answers, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

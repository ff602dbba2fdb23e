// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

/*
Package game provides the HTTP interface for discovery and management of the catalogue.

It exposes endpoints for browsing games, inspecting their relations, and managing
metadata by authorised personnel.

# Routing Strategy

  - Public (v1): Discovery endpoints accessible to all visitors (GET /games).
  - Restricted (v1): Mutative endpoints requiring Admin or Moderator roles (POST, PATCH, DELETE).

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/meeplebay/meeplebay/internal/platform/middleware"
	requestutil "github.com/meeplebay/meeplebay/internal/platform/request"
	"github.com/meeplebay/meeplebay/internal/platform/respond"
	"github.com/meeplebay/meeplebay/internal/platform/sec"
	"github.com/meeplebay/meeplebay/internal/platform/validate"
	"github.com/meeplebay/meeplebay/pkg/convert"
	"github.com/meeplebay/meeplebay/pkg/pagination"
	"github.com/meeplebay/meeplebay/pkg/pointer"
	"github.com/meeplebay/meeplebay/pkg/query"
)

// # Handler Implementation

// Handler implements the HTTP layer for game management and discovery.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new game [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the game domain's endpoints.
//
// # Routing Strategy
//
//   - Discovery (Public): Accessible by all visitors for browsing.
//   - Management (Restricted): Requires [RoleAdmin] for state-mutating operations.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// ## Public Discovery Endpoints
	router.Get("/", handler.listGames)
	router.Get("/{identifier}", handler.getGame)
	router.Get("/{id}/relations", handler.listRelations)

	// ## Content Management (Admin Protected)
	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))

		admin.Post("/", handler.createGame)
		admin.Patch("/{id}", handler.updateGame)
		admin.Delete("/{id}", handler.deleteGame)

		// Relations
		admin.Post("/{id}/relations", handler.addRelation)
		admin.Delete("/{id}/relations/{target}/{type}", handler.removeRelation)
	})

	return router
}

// # Game Endpoints

/*
GET /api/v1/games.

Description: Retrieves a paginated list of games from the catalogue.
Supports filtering by player count, play time, complexity, tags, and
full-text search.

Request:
  - q: string (Full-text search)
  - players: int (Games supporting exactly this player count)
  - maxtime: int (Maximum play time in minutes)
  - maxweight: float (Maximum complexity rating)
  - year: int
  - family: string (Family UUID)
  - curated: bool (Only editorially flagged games)
  - categories: []int (Category tag IDs, AND semantics)
  - mechanics: []int (Mechanic tag IDs, AND semantics)
  - sort: string (latest, name, year, weight)
  - dir: string (asc, desc)
  - limit: int
  - page: int

Response:
  - 200: []Game: Paginated list of games
*/
func (handler *Handler) listGames(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	queryParams := request.URL.Query()

	filter := Filter{
		Query:              queryParams.Get("q"),
		FamilyID:           queryParams.Get("family"),
		CuratedOnly:        convert.ToBool(queryParams.Get("curated")),
		IncludedCategories: query.IntSlice(queryParams["categories"]),
		IncludedMechanics:  query.IntSlice(queryParams["mechanics"]),
		Sort:               queryParams.Get("sort"),
		SortDir:            queryParams.Get("dir"),
	}

	// Numeric filters are optional; malformed values are silently dropped
	if players := convert.ToInt(queryParams.Get("players")); players > 0 {
		filter.PlayerCount = pointer.To(players)
	}
	if maxTime := convert.ToInt(queryParams.Get("maxtime")); maxTime > 0 {
		filter.MaxPlayTime = pointer.To(maxTime)
	}
	if maxWeight := convert.ToFloat64(queryParams.Get("maxweight")); maxWeight > 0 {
		filter.MaxWeight = pointer.To(maxWeight)
	}
	if year := convert.ToInt(queryParams.Get("year")); year > 0 {
		filter.Year = pointer.To(year)
	}

	games, total, err := handler.service.ListGames(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, games, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

/*
GET /api/v1/games/{identifier}.

Description: Retrieves detailed metadata for a game using either its UUID or
unique name slug. UUID lookups take precedence.

Request:
  - identifier: string (UUID or Slug)

Response:
  - 200: Game: Success
  - 404: 404: ErrNotFound: Game not found
*/
func (handler *Handler) getGame(writer http.ResponseWriter, request *http.Request) {
	identifier := requestutil.ID(request, "identifier")

	entity, err := handler.service.GetGame(request.Context(), identifier)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, entity)
}

// # Request Payloads

// createGameRequest defines the inbound JSON schema for game creation.
type createGameRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Publisher       string   `json:"publisher"`
	Year            *int     `json:"year"`
	PlayerCountMin  int      `json:"player_count_min"`
	PlayerCountMax  int      `json:"player_count_max"`
	PlayerCountBest []int    `json:"player_count_best"`
	PlayTimeMin     *int     `json:"play_time_min"`
	PlayTimeMax     *int     `json:"play_time_max"`
	Weight          *float64 `json:"weight"`
	FamilyID        *string  `json:"family_id"`
	CategoryIDs     []int    `json:"category_ids"`
	MechanicIDs     []int    `json:"mechanic_ids"`
}

// # Mutation Endpoints

/*
POST /api/v1/games.

Description: Creates a new game entry in the catalogue.
Slugs are auto-generated from the name if not provided.

Request (Body):
  - createGameRequest: JSON object

Response:
  - 201: Game: Created game object
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
*/
func (handler *Handler) createGame(writer http.ResponseWriter, request *http.Request) {
	var input createGameRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	v := &validate.Validator{}
	v.Required(FieldName, input.Name).MaxLen(FieldName, input.Name, 500)

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	gameDto := &Game{
		Name:            input.Name,
		Description:     input.Description,
		Publisher:       input.Publisher,
		Year:            input.Year,
		PlayerCountMin:  input.PlayerCountMin,
		PlayerCountMax:  input.PlayerCountMax,
		PlayerCountBest: input.PlayerCountBest,
		PlayTimeMin:     input.PlayTimeMin,
		PlayTimeMax:     input.PlayTimeMax,
		Weight:          input.Weight,
		FamilyID:        input.FamilyID,
		CategoryIDs:     input.CategoryIDs,
		MechanicIDs:     input.MechanicIDs,
	}

	if err := handler.service.CreateGame(request.Context(), gameDto); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, gameDto)
}

/*
PATCH /api/v1/games/{id}.

Description: Applies partial updates to an existing game record.
Clients should only provide the fields that need to be changed.

Request:
  - id: string (UUID)
  - body: createGameRequest (Partial JSON)

Response:
  - 200: Game: Updated game object
  - 400: 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Game not found
*/
func (handler *Handler) updateGame(writer http.ResponseWriter, request *http.Request) {
	gameID := requestutil.ID(request, "id")

	var input createGameRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	gameDto := &Game{
		ID:              gameID,
		Name:            input.Name,
		Description:     input.Description,
		Publisher:       input.Publisher,
		Year:            input.Year,
		PlayerCountMin:  input.PlayerCountMin,
		PlayerCountMax:  input.PlayerCountMax,
		PlayerCountBest: input.PlayerCountBest,
		PlayTimeMin:     input.PlayTimeMin,
		PlayTimeMax:     input.PlayTimeMax,
		Weight:          input.Weight,
		FamilyID:        input.FamilyID,
		CategoryIDs:     input.CategoryIDs,
		MechanicIDs:     input.MechanicIDs,
	}

	if err := handler.service.UpdateGame(request.Context(), gameDto); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, gameDto)
}

/*
DELETE /api/v1/games/{id}.

Description: Performs a soft-delete of the game record.
Deleted records are hidden from discovery but remain in the database for auditing.

Request:
  - id: string (UUID)

Response:
  - 204: No Content: Success
  - 401: 401: ErrUnauthorized: Missing or invalid token
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Game not found
*/
func (handler *Handler) deleteGame(writer http.ResponseWriter, request *http.Request) {
	gameID := requestutil.ID(request, "id")

	if err := handler.service.DeleteGame(request.Context(), gameID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package family

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/meeplebay/meeplebay/internal/platform/request"
	"github.com/meeplebay/meeplebay/internal/platform/respond"
)

// # Handler Implementation

// Handler exposes the family tree endpoints. All routes are public
// discovery surfaces; relation mutation lives in the game domain.
type Handler struct {
	service *Service
}

// NewHandler constructs a new family [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the family endpoints under a game-scoped router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{id}/family", handler.getTree)
	router.Get("/{id}/family/orphans", handler.getOrphans)
}

/*
GET /api/v1/games/{id}/family.

Description: Returns the tiered relation tree of the game's family, anchored
at the requested game. Members that could not be placed are listed as orphans
alongside the tiers.

Request:
  - id: string (UUID)

Response:
  - 200: Layout: Tiers plus orphans
  - 404: 404: ErrNotFound: Game not found
*/
func (handler *Handler) getTree(writer http.ResponseWriter, request *http.Request) {
	gameID := requestutil.ID(request, "id")

	layout, err := handler.service.GetTree(request.Context(), gameID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, layout)
}

/*
GET /api/v1/games/{id}/family/orphans.

Description: Returns family members with no relation path back to the
requested game, regardless of relation type or chain length.

Request:
  - id: string (UUID)

Response:
  - 200: []Game: Disconnected members
  - 404: 404: ErrNotFound: Game not found
*/
func (handler *Handler) getOrphans(writer http.ResponseWriter, request *http.Request) {
	gameID := requestutil.ID(request, "id")

	orphans, err := handler.service.GetOrphans(request.Context(), gameID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, orphans)
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package game

import (
	"net/http"

	requestutil "github.com/meeplebay/meeplebay/internal/platform/request"
	"github.com/meeplebay/meeplebay/internal/platform/respond"
)

// # Relation Endpoints

/*
GET /api/v1/games/{id}/relations.

Description: Lists expansions, sequels, spin-offs, and other linked works for a game.

Request:
  - id: string (UUID)

Response:
  - 200: []Relation: Success
  - 404: 404: ErrNotFound: Game not found
*/
func (handler *Handler) listRelations(writer http.ResponseWriter, request *http.Request) {
	// Extract ID from URL
	gameID := requestutil.ID(request, "id")

	// Domain Logic Execution
	relations, err := handler.service.ListRelations(request.Context(), gameID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.OK(writer, relations)
}

/*
POST /api/v1/games/{id}/relations.

Description: Defines a typed directional relationship between two games.
Writing a second type for the same ordered pair overwrites the first.

Request:
  - id: string (Source UUID)
  - body: { target_id: string, type: string }

Response:
  - 201: Message: Success
  - 400: 400: ErrInvalidJSON: Invalid body
  - 401: 401: ErrUnauthorized: Authentication required
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Game not found
  - 422: 422: ErrUnprocessable: Self-link or unknown relation type
*/
func (handler *Handler) addRelation(writer http.ResponseWriter, request *http.Request) {
	// Extract ID from URL
	gameID := requestutil.ID(request, "id")

	// Strict JSON decoding
	var input struct {
		TargetID string `json:"target_id"`
		Type     string `json:"type"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Domain Logic Execution
	if err := handler.service.AddRelation(request.Context(), gameID, input.TargetID, RelationType(input.Type)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Structured API Response
	respond.Created(writer, map[string]string{FieldMessage: "Relation added"})
}

/*
DELETE /api/v1/games/{id}/relations/{target}/{type}.

Description: Removes a specific relationship between two games.

Request:
  - id: string (Source UUID)
  - target: string (Target UUID)
  - type: string (Relation type)

Response:
  - 204: No Content: Success
  - 401: 401: ErrUnauthorized: Authentication required
  - 403: 403: ErrForbidden: Insufficient permissions
  - 404: 404: ErrNotFound: Relation not found
*/
func (handler *Handler) removeRelation(writer http.ResponseWriter, request *http.Request) {
	gameID := requestutil.ID(request, "id")
	targetID := requestutil.ID(request, "target")
	relationType := requestutil.ID(request, "type")

	if err := handler.service.RemoveRelation(request.Context(), gameID, targetID, RelationType(relationType)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package game

import (
	"context"
	"log/slog"

	"github.com/meeplebay/meeplebay/internal/platform/apperr"
)

// # Relations

/*
ListRelations retrieves all outgoing links of a game (expansions, sequels, etc.).

Parameters:
  - context: context.Context
  - gameID: string (UUID)

Returns:
  - []*Relation: List of related games and their types
  - error: Storage failures
*/
func (service *Service) ListRelations(context context.Context, gameID string) ([]*Relation, error) {
	return service.gameRepo.ListRelations(context, gameID)
}

/*
AddRelation defines a typed link between two games.

Description: Establishes a directional relationship ("source is a <type> of
target"). At most one relation may exist per ordered pair; writing a second
type for the same pair overwrites the first. Self-links and unknown types
are rejected.

Parameters:
  - context: context.Context
  - sourceID: string (Source UUID)
  - targetID: string (Target UUID)
  - relationType: RelationType

Returns:
  - error: Validation or persistence error
*/
func (service *Service) AddRelation(context context.Context, sourceID, targetID string, relationType RelationType) error {

	// Reject self-referential links
	if sourceID == targetID {
		return apperr.Unprocessable("a game cannot relate to itself")
	}

	// Relation type whitelist
	if !relationType.IsValid() {
		return apperr.Unprocessable("unknown relation type: " + string(relationType))
	}

	// Both endpoints must exist and be active
	if _, err := service.gameRepo.FindByID(context, sourceID); err != nil {
		return err
	}
	if _, err := service.gameRepo.FindByID(context, targetID); err != nil {
		return err
	}

	if err := service.gameRepo.AddRelation(context, sourceID, targetID, relationType); err != nil {
		return err
	}

	if service.treeCache != nil {
		service.treeCache.Invalidate(context, sourceID, targetID)
	}

	service.logger.Info("relation_added",
		slog.String("source_game_id", sourceID),
		slog.String("target_game_id", targetID),
		slog.String("relation_type", string(relationType)),
	)

	return nil
}

/*
RemoveRelation deletes a link between two games.

Parameters:
  - context: context.Context
  - sourceID: string (Source UUID)
  - targetID: string (Target UUID)
  - relationType: RelationType

Returns:
  - error: Persistence failure
*/
func (service *Service) RemoveRelation(context context.Context, sourceID, targetID string, relationType RelationType) error {
	if err := service.gameRepo.RemoveRelation(context, sourceID, targetID, relationType); err != nil {
		return err
	}

	if service.treeCache != nil {
		service.treeCache.Invalidate(context, sourceID, targetID)
	}

	service.logger.Info("relation_removed",
		slog.String("source_game_id", sourceID),
		slog.String("target_game_id", targetID),
	)

	return nil
}

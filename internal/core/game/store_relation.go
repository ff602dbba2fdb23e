// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package game

import "context"

// # Relation Data Access

// RelationRepository defines the persistence contract for typed game links.
type RelationRepository interface {
	/*
		ListRelations fetches all outgoing relations of a game.

		Parameters:
		  - context: context.Context
		  - gameID: string (UUID)

		Returns:
		  - []*Relation: Links with target names resolved
		  - error: Database retrieval failures
	*/
	ListRelations(context context.Context, gameID string) ([]*Relation, error)

	/*
		ListRelationsAmong fetches every relation whose source AND target both
		belong to the given ID set. Used to assemble a family graph.

		Parameters:
		  - context: context.Context
		  - gameIDs: []string (UUIDs of the family members)

		Returns:
		  - []*Relation: Links internal to the set
		  - error: Database retrieval failures
	*/
	ListRelationsAmong(context context.Context, gameIDs []string) ([]*Relation, error)

	/*
		AddRelation persists a directional link between two games.

		Parameters:
		  - context: context.Context
		  - sourceID: string (Source UUID)
		  - targetID: string (Target UUID)
		  - relationType: RelationType

		Returns:
		  - error: Database execution errors
	*/
	AddRelation(context context.Context, sourceID, targetID string, relationType RelationType) error

	/*
		RemoveRelation deletes a link between two games.

		Parameters:
		  - context: context.Context
		  - sourceID: string (Source UUID)
		  - targetID: string (Target UUID)
		  - relationType: RelationType

		Returns:
		  - error: Database execution errors
	*/
	RemoveRelation(context context.Context, sourceID, targetID string, relationType RelationType) error
}

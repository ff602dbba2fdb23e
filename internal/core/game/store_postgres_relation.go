// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package game

import (
	"context"
	"fmt"

	"github.com/meeplebay/meeplebay/internal/platform/database/schema"
)

// # Relation Management

/*
ListRelations fetches all outgoing relations of a game.

Description: Resolves the target game's display name in the same round-trip
so API consumers can render a linked-games panel without extra lookups.

Parameters:
  - context: context.Context
  - gameID: string (UUID)

Returns:
  - []*Relation: Links with target names resolved
  - error: Database execution errors
*/
func (repository *gameRepository) ListRelations(context context.Context, gameID string) ([]*Relation, error) {

	// Relation lookup with target name resolution
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, g.%s
		FROM %s r
		JOIN %s g ON r.%s = g.%s
		WHERE r.%s = $1
	`,
		schema.CoreGameRelation.SourceGameID, schema.CoreGameRelation.TargetGameID, schema.CoreGameRelation.RelationType, schema.CoreGame.Name,
		schema.CoreGameRelation.Table,
		schema.CoreGame.Table, schema.CoreGameRelation.TargetGameID, schema.CoreGame.ID,
		schema.CoreGameRelation.SourceGameID,
	)

	// Query execution
	rows, err := repository.pool.Query(context, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Hydrate relation slice
	var relations []*Relation
	for rows.Next() {
		var relation Relation
		if err := rows.Scan(&relation.SourceGameID, &relation.TargetGameID, &relation.Type, &relation.TargetName); err != nil {
			return nil, err
		}
		relations = append(relations, &relation)
	}
	return relations, nil
}

/*
ListRelationsAmong fetches every relation internal to the given ID set.

Description: The family tree builder needs the complete edge list of a family
in one round-trip. Both endpoints are constrained to the member set so links
escaping the family are never returned.

Parameters:
  - context: context.Context
  - gameIDs: []string (UUIDs of the family members)

Returns:
  - []*Relation: Links whose source and target both belong to the set
  - error: Database execution errors
*/
func (repository *gameRepository) ListRelationsAmong(context context.Context, gameIDs []string) ([]*Relation, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}

	// Both endpoints bounded to the member set
	query := fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, g.%s
		FROM %s r
		JOIN %s g ON r.%s = g.%s
		WHERE r.%s = ANY($1) AND r.%s = ANY($1)
	`,
		schema.CoreGameRelation.SourceGameID, schema.CoreGameRelation.TargetGameID, schema.CoreGameRelation.RelationType, schema.CoreGame.Name,
		schema.CoreGameRelation.Table,
		schema.CoreGame.Table, schema.CoreGameRelation.TargetGameID, schema.CoreGame.ID,
		schema.CoreGameRelation.SourceGameID, schema.CoreGameRelation.TargetGameID,
	)

	// Query execution
	rows, err := repository.pool.Query(context, query, gameIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Hydrate relation slice
	var relations []*Relation
	for rows.Next() {
		var relation Relation
		if err := rows.Scan(&relation.SourceGameID, &relation.TargetGameID, &relation.Type, &relation.TargetName); err != nil {
			return nil, err
		}
		relations = append(relations, &relation)
	}
	return relations, nil
}

/*
AddRelation persists a directional link between two games.

Returns:
  - error: Database execution errors
*/
func (repository *gameRepository) AddRelation(context context.Context, sourceID, targetID string, relationType RelationType) error {

	// Connection insertion logic
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s
	`,
		schema.CoreGameRelation.Table, schema.CoreGameRelation.SourceGameID, schema.CoreGameRelation.TargetGameID, schema.CoreGameRelation.RelationType,
		schema.CoreGameRelation.SourceGameID, schema.CoreGameRelation.TargetGameID,
		schema.CoreGameRelation.RelationType, schema.CoreGameRelation.RelationType,
	)

	// Execution
	_, err := repository.pool.Exec(context, query, sourceID, targetID, relationType)
	return err
}

/*
RemoveRelation deletes a link between two games.

Returns:
  - error: Database execution errors
*/
func (repository *gameRepository) RemoveRelation(context context.Context, sourceID, targetID string, relationType RelationType) error {

	// Delete execution
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2 AND %s = $3`,
		schema.CoreGameRelation.Table, schema.CoreGameRelation.SourceGameID, schema.CoreGameRelation.TargetGameID, schema.CoreGameRelation.RelationType)

	// Command execution
	_, err := repository.pool.Exec(context, query, sourceID, targetID, relationType)
	return err
}

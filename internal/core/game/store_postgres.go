/*
Package game provides the PostgreSQL implementation for the catalogue's data access.

It utilizes advanced Postgres features to deliver a high-performance discovery experience:
  - Full-Text Search: Uses 'websearch_to_tsquery' and GIN indexes for fuzzy matching.
  - JSON Aggregation: Retrieves complex nested data (e.g., tag slugs) in a single round-trip.
  - Window Functions: Calculates total result counts without requiring a separate 'COUNT' query.
  - ACID Transactions: Ensures atomicity when updating games and their junction tables.

The repository follows an "Aggregate" pattern where sub-resources are managed
through the main repository instance to maintain domain integrity.
*/
package game

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meeplebay/meeplebay/internal/platform/apperr"
	"github.com/meeplebay/meeplebay/internal/platform/database/schema"
)

// # PostgreSQL Repositories

// gameRepository implements the [Repository] interface using pgx.
type gameRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed game store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &gameRepository{pool: pool}
}

// gameSelectColumns renders the shared projection of core game columns
// prefixed with the given table alias.
func gameSelectColumns(alias string) string {
	t := schema.CoreGame
	columns := []string{
		t.ID, t.Name, t.Slug, t.Description, t.Publisher, t.Year,
		t.PlayerCountMin, t.PlayerCountMax, t.PlayerCountBest,
		t.PlayTimeMin, t.PlayTimeMax, t.Weight,
		t.IsStaffPick, t.IsTrending, t.IsTopRated, t.IsHiddenGem,
		t.FamilyID, t.IsHidden, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
	for i, column := range columns {
		columns[i] = alias + "." + column
	}
	return strings.Join(columns, ", ")
}

// tagSlugSubquery renders a correlated sub-query aggregating the tag slugs of
// one junction table into a JSON array.
func tagSlugSubquery(junctionTable, junctionGameID, junctionTagID, alias string) string {
	return fmt.Sprintf(`COALESCE((
		SELECT json_agg(t.%s ORDER BY t.%s)
		FROM %s t
		JOIN %s j ON t.%s = j.%s
		WHERE j.%s = %s.%s
	), '[]')`,
		schema.RefTag.Slug, schema.RefTag.Slug,
		schema.RefTag.Table,
		junctionTable, schema.RefTag.ID, junctionTagID,
		junctionGameID, alias, schema.CoreGame.ID,
	)
}

// scanGameRow maps one result row onto a Game entity. The projection order
// must match [gameSelectColumns].
func scanGameRow(rows pgx.Rows, entity *Game, extra ...any) error {
	targets := []any{
		&entity.ID,
		&entity.Name,
		&entity.Slug,
		&entity.Description,
		&entity.Publisher,
		&entity.Year,
		&entity.PlayerCountMin,
		&entity.PlayerCountMax,
		&entity.PlayerCountBest,
		&entity.PlayTimeMin,
		&entity.PlayTimeMax,
		&entity.Weight,
		&entity.IsStaffPick,
		&entity.IsTrending,
		&entity.IsTopRated,
		&entity.IsHiddenGem,
		&entity.FamilyID,
		&entity.IsHidden,
		&entity.CreatedAt,
		&entity.UpdatedAt,
		&entity.DeletedAt,
	}
	targets = append(targets, extra...)
	return rows.Scan(targets...)
}

// # Game Repository Implementation

/*
List returns a filtered, paginated slice of games and the total count.

Description: This high-performance query utilizes several PostgreSQL advanced
features:
  - Window Function: Uses COUNT(*) OVER() to retrieve total record counts
    without a second query.
  - JSON Aggregation: Sub-queries aggregate associated category and mechanic
    slugs into JSON arrays to prevent N+1 overhead.
  - Set Operations: Uses array operators (<@) for tag filtering.

Parameters:
  - context: context.Context
  - filter: Filter (Search, player count, tags, sorting)
  - limit: int
  - offset: int

Returns:
  - []*Game: Slice of hydrated game entities
  - int: Total count matching filters
  - error: Database execution errors
*/
func (repository *gameRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Game, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	// Using Window Function to get total count
	// Category and mechanic slugs are aggregated into JSON arrays per row
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT
			%s,
			COUNT(*) OVER() AS total_count,
			%s AS categories,
			%s AS mechanics
		FROM %s g
		WHERE g.%s IS NULL AND g.%s = FALSE
	`,
		gameSelectColumns("g"),
		tagSlugSubquery(schema.GameCategory.Table, schema.GameCategory.GameID, schema.GameCategory.TagID, "g"),
		tagSlugSubquery(schema.GameMechanic.Table, schema.GameMechanic.GameID, schema.GameMechanic.TagID, "g"),
		schema.CoreGame.Table,
		schema.CoreGame.DeletedAt, schema.CoreGame.IsHidden,
	))

	// Player Count Filtering (target count inside the supported envelope)
	if filter.PlayerCount != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND $%d BETWEEN g.%s AND g.%s", argID, schema.CoreGame.PlayerCountMin, schema.CoreGame.PlayerCountMax))
		args = append(args, *filter.PlayerCount)
		argID++
	}

	// Play Time Filtering
	if filter.MaxPlayTime != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND g.%s <= $%d", schema.CoreGame.PlayTimeMax, argID))
		args = append(args, *filter.MaxPlayTime)
		argID++
	}

	// Complexity Filtering
	if filter.MaxWeight != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND g.%s <= $%d", schema.CoreGame.Weight, argID))
		args = append(args, *filter.MaxWeight)
		argID++
	}

	// Year Filtering
	if filter.Year != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND g.%s = $%d", schema.CoreGame.Year, argID))
		args = append(args, *filter.Year)
		argID++
	}

	// Family Grouping Filtering
	if filter.FamilyID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND g.%s = $%d", schema.CoreGame.FamilyID, argID))
		args = append(args, filter.FamilyID)
		argID++
	}

	// Curated Shelf Filtering (any editorial flag set)
	if filter.CuratedOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND (g.%s OR g.%s OR g.%s OR g.%s)",
			schema.CoreGame.IsStaffPick, schema.CoreGame.IsTrending, schema.CoreGame.IsTopRated, schema.CoreGame.IsHiddenGem))
	}

	// Search Query Filtering
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND g.%s @@ websearch_to_tsquery('simple', unaccent($%d))", schema.CoreGame.SearchVector, argID))
		args = append(args, filter.Query)
		argID++
	}

	// Tag Filtering (AND logic: every requested tag must be linked)
	if len(filter.IncludedCategories) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(` AND $%d::int[] <@ (SELECT array_agg(%s) FROM %s WHERE %s = g.%s)`,
			argID, schema.GameCategory.TagID, schema.GameCategory.Table, schema.GameCategory.GameID, schema.CoreGame.ID))
		args = append(args, filter.IncludedCategories)
		argID++
	}

	// Mechanic Filtering
	if len(filter.IncludedMechanics) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(` AND $%d::int[] <@ (SELECT array_agg(%s) FROM %s WHERE %s = g.%s)`,
			argID, schema.GameMechanic.TagID, schema.GameMechanic.Table, schema.GameMechanic.GameID, schema.CoreGame.ID))
		args = append(args, filter.IncludedMechanics)
		argID++
	}

	// Apply Sorting Logic
	sort := fmt.Sprintf("g.%s", schema.CoreGame.CreatedAt) // default
	switch filter.Sort {
	// Alphabetical Order
	case "name":
		sort = fmt.Sprintf("g.%s", schema.CoreGame.Name)
	// Publication Year
	case "year":
		sort = fmt.Sprintf("g.%s", schema.CoreGame.Year)
	// Complexity
	case "weight":
		sort = fmt.Sprintf("g.%s", schema.CoreGame.Weight)
	// Latest
	case "latest":
		sort = fmt.Sprintf("g.%s", schema.CoreGame.CreatedAt)
	}

	// Apply Sorting Direction
	sortDir := "DESC"
	if strings.ToLower(filter.SortDir) == "asc" || filter.Sort == "name" {
		sortDir = "ASC"
	}

	// Apply Sorting
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s %s, g.%s DESC", sort, sortDir, schema.CoreGame.ID))

	// Pagination injection
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	// Query Execution
	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list games: %w", err)
	}
	defer rows.Close()

	// Initialize variables
	var games []*Game
	var totalCount int

	// Iterate over rows
	for rows.Next() {
		entity := &Game{}
		var categoriesJSON, mechanicsJSON []byte

		if err := scanGameRow(rows, entity, &totalCount, &categoriesJSON, &mechanicsJSON); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan game: %w", err)
		}

		// Unmarshal tag slug arrays
		if err := json.Unmarshal(categoriesJSON, &entity.Categories); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal categories: %w", err)
		}
		if err := json.Unmarshal(mechanicsJSON, &entity.Mechanics); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal mechanics: %w", err)
		}

		games = append(games, entity)
	}

	// Return the list of games and total count
	return games, totalCount, nil
}

/*
FindByID retrieves a game record by its primary key.

Description: Performs a single-row lookup to retrieve core game metadata.
Alongside the core fields, the query utilizes PostgreSQL's JSON aggregation
(json_agg) to retrieve the associated category and mechanic slugs in a single
database round-trip, avoiding the classic N+1 query problem.

Parameters:
  - context: context.Context
  - id: string (UUID primary key of the target game)

Returns:
  - *Game: The fully hydrated game entity including tag slugs
  - error: apperr.NotFound if the game does not exist, or an internal error
*/
func (repository *gameRepository) FindByID(context context.Context, id string) (*Game, error) {
	condition := fmt.Sprintf("g.%s = $1 AND g.%s IS NULL", schema.CoreGame.ID, schema.CoreGame.DeletedAt)
	return repository.findOne(context, condition, id)
}

/*
FindBySlug retrieves a game record using its unique SEO URL slug.

Description: Used for public discovery where the internal UUID is not present
in the frontend URL schema. Operates identically to FindByID but resolves
through the indexed slug column.

Parameters:
  - context: context.Context
  - slug: string (Human-readable URL identifier)

Returns:
  - *Game: The fully hydrated game entity including tag slugs
  - error: apperr.NotFound on an unknown slug
*/
func (repository *gameRepository) FindBySlug(context context.Context, slug string) (*Game, error) {
	condition := fmt.Sprintf("g.%s = $1 AND g.%s IS NULL", schema.CoreGame.Slug, schema.CoreGame.DeletedAt)
	return repository.findOne(context, condition, slug)
}

// findOne executes the shared single-row lookup with tag slug aggregation.
func (repository *gameRepository) findOne(context context.Context, condition string, arg any) (*Game, error) {

	// Unified Lookup Query with JSON Tag Aggregation
	query := fmt.Sprintf(`
		SELECT
			%s,
			%s AS categories,
			%s AS mechanics
		FROM %s g
		WHERE %s
	`,
		gameSelectColumns("g"),
		tagSlugSubquery(schema.GameCategory.Table, schema.GameCategory.GameID, schema.GameCategory.TagID, "g"),
		tagSlugSubquery(schema.GameMechanic.Table, schema.GameMechanic.GameID, schema.GameMechanic.TagID, "g"),
		schema.CoreGame.Table,
		condition,
	)

	rows, err := repository.pool.Query(context, query, arg)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to find game: %w", err)
	}
	defer rows.Close()

	// Single-row extraction
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("postgres: failed to find game: %w", err)
		}
		return nil, apperr.NotFound("game")
	}

	entity := &Game{}
	var categoriesJSON, mechanicsJSON []byte
	if err := scanGameRow(rows, entity, &categoriesJSON, &mechanicsJSON); err != nil {
		return nil, fmt.Errorf("postgres: failed to scan game: %w", err)
	}

	// Tag slug hydration
	if err := json.Unmarshal(categoriesJSON, &entity.Categories); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal categories: %w", err)
	}
	if err := json.Unmarshal(mechanicsJSON, &entity.Mechanics); err != nil {
		return nil, fmt.Errorf("postgres: failed to unmarshal mechanics: %w", err)
	}

	return entity, nil
}

/*
ListByFamilyID returns every active game sharing a family grouping.

Description: Family members are the raw material for the relation tree
builder; they are returned year-ascending so downstream consumers receive a
stable base ordering regardless of insertion sequence.

Parameters:
  - context: context.Context
  - familyID: string (UUID)

Returns:
  - []*Game: Family members ordered by publication year, then name
  - error: Database execution errors
*/
func (repository *gameRepository) ListByFamilyID(context context.Context, familyID string) ([]*Game, error) {

	// Family member lookup ordered for deterministic downstream traversal
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s g
		WHERE g.%s = $1 AND g.%s IS NULL
		ORDER BY g.%s NULLS LAST, g.%s
	`,
		gameSelectColumns("g"),
		schema.CoreGame.Table,
		schema.CoreGame.FamilyID, schema.CoreGame.DeletedAt,
		schema.CoreGame.Year, schema.CoreGame.Name,
	)

	rows, err := repository.pool.Query(context, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list family members: %w", err)
	}
	defer rows.Close()

	// Hydrate member slice
	var games []*Game
	for rows.Next() {
		entity := &Game{}
		if err := scanGameRow(rows, entity); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan family member: %w", err)
		}
		games = append(games, entity)
	}

	return games, nil
}

/*
ListCandidates returns games supporting the given player count.

Description: The recommendation pre-filter. A cheap indexed range check on the
player envelope bounds the candidate pool before the in-memory scorer runs;
tag slugs are aggregated in the same round-trip since the scorer consumes
them directly.

Parameters:
  - context: context.Context
  - playerCount: int (Target table size)
  - limit: int (Hard cap on the candidate pool)

Returns:
  - []*Game: Candidate games with tag slugs hydrated
  - error: Database execution errors
*/
func (repository *gameRepository) ListCandidates(context context.Context, playerCount, limit int) ([]*Game, error) {

	// Indexed envelope check plus tag hydration for the scorer
	query := fmt.Sprintf(`
		SELECT
			%s,
			%s AS categories,
			%s AS mechanics
		FROM %s g
		WHERE g.%s IS NULL AND g.%s = FALSE
		  AND $1 BETWEEN g.%s AND g.%s
		ORDER BY g.%s, g.%s
		LIMIT $2
	`,
		gameSelectColumns("g"),
		tagSlugSubquery(schema.GameCategory.Table, schema.GameCategory.GameID, schema.GameCategory.TagID, "g"),
		tagSlugSubquery(schema.GameMechanic.Table, schema.GameMechanic.GameID, schema.GameMechanic.TagID, "g"),
		schema.CoreGame.Table,
		schema.CoreGame.DeletedAt, schema.CoreGame.IsHidden,
		schema.CoreGame.PlayerCountMin, schema.CoreGame.PlayerCountMax,
		schema.CoreGame.Name, schema.CoreGame.ID,
	)

	rows, err := repository.pool.Query(context, query, playerCount, limit)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to list candidates: %w", err)
	}
	defer rows.Close()

	// Hydrate candidate slice
	var games []*Game
	for rows.Next() {
		entity := &Game{}
		var categoriesJSON, mechanicsJSON []byte
		if err := scanGameRow(rows, entity, &categoriesJSON, &mechanicsJSON); err != nil {
			return nil, fmt.Errorf("postgres: failed to scan candidate: %w", err)
		}
		if err := json.Unmarshal(categoriesJSON, &entity.Categories); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal categories: %w", err)
		}
		if err := json.Unmarshal(mechanicsJSON, &entity.Mechanics); err != nil {
			return nil, fmt.Errorf("postgres: failed to unmarshal mechanics: %w", err)
		}
		games = append(games, entity)
	}

	return games, nil
}

/*
Create persists a new game entity and all its associated junction table links.

Description: Executes the insertion within a single ACID-compliant PostgreSQL
transaction. If the insertion of the core record or any of the junction links
(categories, mechanics) fails due to constraints or network issues, the entire
operation is rolled back. This prevents orphaned associations and partial saves.

Parameters:
  - context: context.Context
  - game: *Game (The domain entity containing core metadata and junction ID arrays)

Returns:
  - error: nil on a successfully committed sequence, otherwise SQL errors
*/
func (repository *gameRepository) Create(context context.Context, game *Game) error {

	// Transaction Context Instantiation
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin transaction: %w", err)
	}
	defer transaction.Rollback(context)

	// Core Record Insertion
	query := fmt.Sprintf(`
		INSERT INTO %s (
			%s, %s, %s, %s, %s, %s,
			%s, %s, %s, %s, %s, %s, %s
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		schema.CoreGame.Table,
		schema.CoreGame.ID, schema.CoreGame.Name, schema.CoreGame.Slug, schema.CoreGame.Description, schema.CoreGame.Publisher, schema.CoreGame.Year,
		schema.CoreGame.PlayerCountMin, schema.CoreGame.PlayerCountMax, schema.CoreGame.PlayerCountBest,
		schema.CoreGame.PlayTimeMin, schema.CoreGame.PlayTimeMax, schema.CoreGame.Weight, schema.CoreGame.FamilyID,
	)

	_, err = transaction.Exec(context, query,
		game.ID,
		game.Name,
		game.Slug,
		game.Description,
		game.Publisher,
		game.Year,
		game.PlayerCountMin,
		game.PlayerCountMax,
		game.PlayerCountBest,
		game.PlayTimeMin,
		game.PlayTimeMax,
		game.Weight,
		game.FamilyID,
	)
	if err != nil {
		return fmt.Errorf("postgres: failed to create game: %w", err)
	}

	// Junction Synchronization (Categories)
	if len(game.CategoryIDs) > 0 {
		if err := repository.updateJunction(context, transaction, schema.GameCategory.Table, schema.GameCategory.GameID, schema.GameCategory.TagID, game.ID, game.CategoryIDs); err != nil {
			return err
		}
	}

	// Junction Synchronization (Mechanics)
	if len(game.MechanicIDs) > 0 {
		if err := repository.updateJunction(context, transaction, schema.GameMechanic.Table, schema.GameMechanic.GameID, schema.GameMechanic.TagID, game.ID, game.MechanicIDs); err != nil {
			return err
		}
	}

	// Commit the transaction sequence
	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	return nil
}

/*
Update persists metadata modifications to an existing game record.

Description: Utilizes a dynamic strings.Builder to construct a PATCH-style
partial update. It checks which fields are populated on the entity and appends
them to the SET block, then fully replaces the category and mechanic junction
associations when their ID arrays are present, all inside one transaction.

Parameters:
  - context: context.Context
  - game: *Game (Target ID and updated fields)

Returns:
  - error: apperr.NotFound if the target record does not exist, or execution errors
*/
func (repository *gameRepository) Update(context context.Context, game *Game) error {

	// Dynamic PATCH query assembly
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.CoreGame.Table, schema.CoreGame.UpdatedAt))

	var args []any
	argID := 1

	// Name
	if game.Name != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.Name, argID))
		args = append(args, game.Name)
		argID++
	}

	// Slug
	if game.Slug != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.Slug, argID))
		args = append(args, game.Slug)
		argID++
	}

	// Description
	if game.Description != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.Description, argID))
		args = append(args, game.Description)
		argID++
	}

	// Publisher
	if game.Publisher != "" {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.Publisher, argID))
		args = append(args, game.Publisher)
		argID++
	}

	// Year
	if game.Year != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.Year, argID))
		args = append(args, *game.Year)
		argID++
	}

	// Player envelope
	if game.PlayerCountMin > 0 {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.PlayerCountMin, argID))
		args = append(args, game.PlayerCountMin)
		argID++
	}
	if game.PlayerCountMax > 0 {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.PlayerCountMax, argID))
		args = append(args, game.PlayerCountMax)
		argID++
	}
	if game.PlayerCountBest != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.PlayerCountBest, argID))
		args = append(args, game.PlayerCountBest)
		argID++
	}

	// Play-time envelope
	if game.PlayTimeMin != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.PlayTimeMin, argID))
		args = append(args, *game.PlayTimeMin)
		argID++
	}
	if game.PlayTimeMax != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.PlayTimeMax, argID))
		args = append(args, *game.PlayTimeMax)
		argID++
	}

	// Weight
	if game.Weight != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.Weight, argID))
		args = append(args, *game.Weight)
		argID++
	}

	// Family grouping
	if game.FamilyID != nil {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", schema.CoreGame.FamilyID, argID))
		args = append(args, *game.FamilyID)
		argID++
	}

	// Scoped WHERE constraint targeting the single active row
	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d AND %s IS NULL", schema.CoreGame.ID, argID, schema.CoreGame.DeletedAt))
	args = append(args, game.ID)

	// Transaction boundary so junction rewrites rollback if the core query fails
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres: update transaction begin failed: %w", err)
	}
	defer transaction.Rollback(context)

	// Core record update
	response, err := transaction.Exec(context, queryBuilder.String(), args...)
	if err != nil {
		return fmt.Errorf("postgres: failed to update game: %w", err)
	}
	if response.RowsAffected() == 0 {
		return apperr.NotFound("game")
	}

	// Junction Synchronization (Categories)
	if game.CategoryIDs != nil {
		if err := repository.updateJunction(context, transaction, schema.GameCategory.Table, schema.GameCategory.GameID, schema.GameCategory.TagID, game.ID, game.CategoryIDs); err != nil {
			return err
		}
	}

	// Junction Synchronization (Mechanics)
	if game.MechanicIDs != nil {
		if err := repository.updateJunction(context, transaction, schema.GameMechanic.Table, schema.GameMechanic.GameID, schema.GameMechanic.TagID, game.ID, game.MechanicIDs); err != nil {
			return err
		}
	}

	// Commit after the core table and junction links are aligned
	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres: update transaction commit failed: %w", err)
	}

	return nil
}

/*
updateJunction synchronizes many-to-many tag associations.

Description: Implements a "Clear and Insert" bulk strategy for junction
tables. All mappings of the root game are flushed first, then the new links
are queued through the native pgx.Batch pipeline, bounding multiple network
trips into a single optimized sequence.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (The active transaction boundary)
  - table: string (Fully-qualified junction table, e.g. "core.gamecategory")
  - idCol: string (The root relational column, e.g. "gameid")
  - valCol: string (The bound tag column, e.g. "tagid")
  - id: string (UUID of the parent game)
  - vals: []int (The tag IDs to map to the parent)

Returns:
  - error: Structural execution failures
*/
func (repository *gameRepository) updateJunction(context context.Context, transaction pgx.Tx, table, idCol, valCol, id string, vals []int) error {

	// Clear previous entries
	delQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, idCol)
	if _, err := transaction.Exec(context, delQuery, id); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", table, err)
	}

	// Nothing to insert
	if len(vals) == 0 {
		return nil
	}

	// Batch insert the new mappings
	insQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)", table, idCol, valCol)
	batch := &pgx.Batch{}
	for _, value := range vals {
		batch.Queue(insQuery, id, value)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", table, err)
	}

	return nil
}

/*
SoftDelete hides a game without physical row removal.

Description: Stamps the deletedat column with the database engine's current
timestamp. Primary application queries carry a global `WHERE deletedat IS
NULL` constraint, which scopes the row out of discovery.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: apperr.NotFound if missing or already deleted, otherwise execution errors
*/
func (repository *gameRepository) SoftDelete(context context.Context, id string) error {

	// Stamp deletion timestamp
	query := fmt.Sprintf("UPDATE %s SET %s = NOW() WHERE %s = $1 AND %s IS NULL",
		schema.CoreGame.Table, schema.CoreGame.DeletedAt, schema.CoreGame.ID, schema.CoreGame.DeletedAt)

	result, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return fmt.Errorf("postgres: failed to delete game: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("game")
	}

	return nil
}

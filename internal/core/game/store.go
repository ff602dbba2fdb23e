// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package game

import "context"

// # Game Data Access

// Repository defines the data access contract for the game domain.
type Repository interface {
	RelationRepository

	/*
		List returns a filtered, paginated slice of games and the total count.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Criteria for tags, player count, search, etc.)
		  - limit: int
		  - offset: int

		Returns:
		  - []*Game: Slice of matching catalogue records
		  - int: Total count of records matching the filter
		  - error: Database retrieval failures
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Game, int, error)

	/*
		FindByID returns the game with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *Game: The hydrated domain entity
		  - error: ErrNotFound if missing or soft-deleted
	*/
	FindByID(context context.Context, id string) (*Game, error)

	/*
		FindBySlug returns the game matching the unique SEO identifier.

		Parameters:
		  - context: context.Context
		  - slug: string

		Returns:
		  - *Game: The hydrated domain entity
		  - error: ErrNotFound if missing
	*/
	FindBySlug(context context.Context, slug string) (*Game, error)

	/*
		ListByFamilyID returns every active game sharing a family grouping.

		Parameters:
		  - context: context.Context
		  - familyID: string (UUID)

		Returns:
		  - []*Game: Family members ordered by publication year
		  - error: Database retrieval failures
	*/
	ListByFamilyID(context context.Context, familyID string) ([]*Game, error)

	/*
		ListCandidates returns games supporting the given player count,
		used as the recommendation pre-filter.

		Parameters:
		  - context: context.Context
		  - playerCount: int (Target table size)
		  - limit: int (Hard cap on the candidate pool)

		Returns:
		  - []*Game: Candidate games with tag slugs hydrated
		  - error: Database retrieval failures
	*/
	ListCandidates(context context.Context, playerCount, limit int) ([]*Game, error)

	/*
		Create persists a new game to the store.

		Parameters:
		  - context: context.Context
		  - game: *Game (Metadata and junction ID arrays)

		Returns:
		  - error: Storage or constraint failures
	*/
	Create(context context.Context, game *Game) error

	/*
		Update persists changes to an existing game's mutable fields.

		Parameters:
		  - context: context.Context
		  - game: *Game (Target ID and modified attributes)

		Returns:
		  - error: Storage or validation failures
	*/
	Update(context context.Context, game *Game) error

	/*
		SoftDelete marks a game as deleted without physical row removal.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - error: State update failures
	*/
	SoftDelete(context context.Context, id string) error
}

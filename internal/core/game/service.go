// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package game

import (
	"context"
	"log/slog"

	"github.com/meeplebay/meeplebay/internal/platform/validate"
	"github.com/meeplebay/meeplebay/pkg/slug"
	"github.com/meeplebay/meeplebay/pkg/uuid"
)

// # Service Layer

// TreeInvalidator drops derived family tree caches keyed by game id.
//
// The family domain implements it; the indirection exists because that
// domain already depends on this one.
type TreeInvalidator interface {
	Invalidate(context context.Context, gameIDs ...string)
}

// Service orchestrates the business logic for the game catalogue.
// It acts as the primary entry point for managing content metadata.
type Service struct {
	gameRepo  Repository
	treeCache TreeInvalidator
	logger    *slog.Logger
}

// NewService constructs a new [Service] with its required repositories.
func NewService(gameRepo Repository, logger *slog.Logger) *Service {
	return &Service{
		gameRepo: gameRepo,
		logger:   logger,
	}
}

// SetTreeInvalidator attaches the family cache hook. Relation writes flush
// the cached trees of both endpoints once a hook is present.
func (service *Service) SetTreeInvalidator(invalidator TreeInvalidator) {
	service.treeCache = invalidator
}

// # Game Lookups

/*
ListGames retrieves a paginated and filtered collection of games.

Description: This method orchestrates the discovery phase of the catalogue.
It passes filter criteria directly to the repository layer for efficient
database-level filtering and sorting.

Parameters:
  - context: context.Context
  - filter: Filter (Criteria for tags, player count, search, etc.)
  - limit: int (Max records to return)
  - offset: int (Pagination cursor)

Returns:
  - []*Game: Slice of matching catalogue records
  - int: Total count of records matching the filter (for pagination metadata)
  - error: System or repository level errors
*/
func (service *Service) ListGames(context context.Context, filter Filter, limit, offset int) ([]*Game, int, error) {
	return service.gameRepo.List(context, filter, limit, offset)
}

/*
GetGame fetches a single catalogue record by UUID or SEO Slug.

Description: The service determines the lookup strategy from the identifier
shape. If it matches the UUID format, a primary key lookup is performed;
otherwise the record is resolved via the unique URL slug.

Parameters:
  - context: context.Context
  - identifier: string (UUID or Slug)

Returns:
  - *Game: The hydrated domain entity
  - error: ErrNotFound if no match is found
*/
func (service *Service) GetGame(context context.Context, identifier string) (*Game, error) {

	// Identity format detection
	if isUUID(identifier) {
		return service.gameRepo.FindByID(context, identifier)
	}

	// Slug resolution
	return service.gameRepo.FindBySlug(context, identifier)
}

// # Game Management

/*
CreateGame initialises a new catalogue record in the system.

Description: Performs deep business validation on the metadata,
generates a stable UUID v7 identity, and creates SEO-friendly
slugs before persisting to the repository.

Parameters:
  - context: context.Context
  - game: *Game (The entity to be persisted)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) CreateGame(context context.Context, game *Game) error {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldName, game.Name).MaxLen(FieldName, game.Name, 500)

	// Player envelope validation
	validator.Range(FieldPlayerCountMin, game.PlayerCountMin, 1, 99)
	validator.Range(FieldPlayerCountMax, game.PlayerCountMax, 1, 99)
	validator.Custom(FieldPlayerCountMax, game.PlayerCountMax < game.PlayerCountMin,
		"must be greater than or equal to player_count_min")

	// Complexity rating bounds
	if game.Weight != nil {
		validator.Custom(FieldWeight, *game.Weight < 1.0 || *game.Weight > 5.0,
			"must be between 1.0 and 5.0")
	}

	// Identity generation
	if game.ID == "" {
		game.ID = uuid.New()
	}

	// Slug generation
	if game.Slug == "" {
		game.Slug = slug.From(game.Name)
	}

	// Return validation errors if any constraints failed
	if err := validator.Err(); err != nil {
		return err
	}

	// Persistence via Repository
	if err := service.gameRepo.Create(context, game); err != nil {
		return err
	}

	service.logger.Info("game_created",
		slog.String("game_id", game.ID),
		slog.String("name", game.Name),
	)

	return nil
}

/*
UpdateGame applies modifications to an existing catalogue record.

Description: Supports partial updates. Non-empty fields in the
input entity will overwrite existing values. Enforces business
rules on the updated attributes.

Parameters:
  - context: context.Context
  - game: *Game (Updated attributes)

Returns:
  - error: Validation or persistence errors
*/
func (service *Service) UpdateGame(context context.Context, game *Game) error {

	// Integrity validation for updated fields
	validator := &validate.Validator{}

	// Business attribute validation
	if game.Name != "" {
		validator.MaxLen(FieldName, game.Name, 500)
	}

	// Slug shape validation
	if game.Slug != "" {
		validator.Slug(FieldSlug, game.Slug)
	}

	// Player envelope validation
	if game.PlayerCountMin > 0 {
		validator.Range(FieldPlayerCountMin, game.PlayerCountMin, 1, 99)
	}
	if game.PlayerCountMax > 0 {
		validator.Range(FieldPlayerCountMax, game.PlayerCountMax, 1, 99)
	}

	// Complexity rating bounds
	if game.Weight != nil {
		validator.Custom(FieldWeight, *game.Weight < 1.0 || *game.Weight > 5.0,
			"must be between 1.0 and 5.0")
	}

	// Return validation errors if any constraints failed
	if err := validator.Err(); err != nil {
		return err
	}

	// Execute storage update
	if err := service.gameRepo.Update(context, game); err != nil {
		return err
	}

	// Trees anchored elsewhere in the family age out via TTL.
	if service.treeCache != nil {
		service.treeCache.Invalidate(context, game.ID)
	}

	service.logger.Info("game_updated", slog.String("game_id", game.ID))

	return nil
}

/*
DeleteGame removes a game from active discovery.

Description: Implements soft-delete logic. The record remains
in the database but its visibility status is flipped to hidden.

Parameters:
  - context: context.Context
  - id: string (UUID)

Returns:
  - error: Persistence error if removal fails
*/
func (service *Service) DeleteGame(context context.Context, id string) error {
	if err := service.gameRepo.SoftDelete(context, id); err != nil {
		return err
	}

	if service.treeCache != nil {
		service.treeCache.Invalidate(context, id)
	}

	service.logger.Warn("game_deleted", slog.String("game_id", id))

	return nil
}

// # Internal Helpers

// isUUID returns true if the string matches the standard UUID length.
func isUUID(s string) bool {
	return len(s) == 36
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package family

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meeplebay/meeplebay/internal/core/game"
	"github.com/meeplebay/meeplebay/internal/platform/constants"
	"github.com/meeplebay/meeplebay/pkg/slice"
)

// # Service Layer

// Catalog is the slice of the game repository the family domain consumes.
type Catalog interface {
	FindByID(context context.Context, id string) (*game.Game, error)
	ListByFamilyID(context context.Context, familyID string) ([]*game.Game, error)
	ListRelationsAmong(context context.Context, gameIDs []string) ([]*game.Relation, error)
}

// TreeCache is the slice of the Redis command surface the layout cache
// consumes. A [redis.Client] satisfies it directly.
type TreeCache interface {
	Get(context context.Context, key string) *redis.StringCmd
	Set(context context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(context context.Context, keys ...string) *redis.IntCmd
}

// Service assembles and caches relation trees for game families.
type Service struct {
	catalog Catalog
	cache   TreeCache
	logger  *slog.Logger
}

// NewService constructs a new family [Service].
func NewService(catalog Catalog, cache TreeCache, logger *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		cache:   cache,
		logger:  logger,
	}
}

// # Tree Assembly

/*
GetTree returns the tiered relation layout for the family of a game.

Description: The requested game anchors the tree as its base. Family members
and their internal relations are loaded in two round-trips and passed to the
in-memory layout builder. Assembled layouts are cached in Redis per anchor
game; a cache hit skips the database entirely.

Parameters:
  - context: context.Context
  - gameID: string (UUID of the anchor game)

Returns:
  - *Layout: Tiered placement plus unplaced orphans
  - error: ErrNotFound if the anchor game does not exist
*/
func (service *Service) GetTree(context context.Context, gameID string) (*Layout, error) {

	// Cache lookup
	cacheKey := constants.RedisPrefixFamilyTree + gameID
	if cached, err := service.cache.Get(context, cacheKey).Result(); err == nil {
		layout := &Layout{}
		if err := json.Unmarshal([]byte(cached), layout); err == nil {
			return layout, nil
		}
		// Corrupt entry; fall through to a rebuild
		service.logger.Warn("family_cache_corrupt", slog.String("game_id", gameID))
	} else if !errors.Is(err, redis.Nil) {
		// Redis being down degrades to database reads rather than failing
		service.logger.Warn("family_cache_unavailable", slog.String("error", err.Error()))
	}

	// Assemble from the database
	games, relations, err := service.loadFamily(context, gameID)
	if err != nil {
		return nil, err
	}

	layout := BuildLayout(games, relations, gameID)

	// Cache fill; failures only cost the next request a rebuild
	if payload, err := json.Marshal(layout); err == nil {
		if err := service.cache.Set(context, cacheKey, payload, constants.FamilyTreeCacheTTL).Err(); err != nil {
			service.logger.Warn("family_cache_set_failed", slog.String("error", err.Error()))
		}
	}

	return &layout, nil
}

/*
GetOrphans returns the family members unreachable from the anchor game.

Description: Unlike the tree layout, reachability here follows every relation
type without a depth bound, so a member counts as connected when any relation
path of any length leads back to the anchor.

Parameters:
  - context: context.Context
  - gameID: string (UUID of the anchor game)

Returns:
  - []*game.Game: Disconnected members in catalogue order
  - error: ErrNotFound if the anchor game does not exist
*/
func (service *Service) GetOrphans(context context.Context, gameID string) ([]*game.Game, error) {
	games, relations, err := service.loadFamily(context, gameID)
	if err != nil {
		return nil, err
	}

	orphans := FindOrphans(games, relations, gameID)
	if orphans == nil {
		orphans = []*game.Game{}
	}
	return orphans, nil
}

/*
Invalidate drops the cached trees anchored at the given games.

Description: Called after relation writes. Both endpoints of a changed
relation are passed so either side's cached tree is rebuilt on next read.

Parameters:
  - context: context.Context
  - gameIDs: ...string (Anchor games whose cached layouts are stale)
*/
func (service *Service) Invalidate(context context.Context, gameIDs ...string) {
	keys := make([]string, 0, len(gameIDs))
	for _, id := range gameIDs {
		keys = append(keys, constants.RedisPrefixFamilyTree+id)
	}
	if len(keys) == 0 {
		return
	}

	if err := service.cache.Del(context, keys...).Err(); err != nil {
		service.logger.Warn("family_cache_invalidate_failed", slog.String("error", err.Error()))
	}
}

// # Internal Helpers

// loadFamily resolves the anchor game and loads its family members plus the
// relations internal to them. A game without a family grouping yields a
// single-member family.
func (service *Service) loadFamily(context context.Context, gameID string) ([]*game.Game, []game.Relation, error) {

	// Anchor resolution
	anchor, err := service.catalog.FindByID(context, gameID)
	if err != nil {
		return nil, nil, err
	}

	// No grouping: the anchor stands alone
	if anchor.FamilyID == nil {
		return []*game.Game{anchor}, nil, nil
	}

	// Member load
	members, err := service.catalog.ListByFamilyID(context, *anchor.FamilyID)
	if err != nil {
		return nil, nil, fmt.Errorf("family: failed to load members: %w", err)
	}

	// Edge load bounded to the member set
	memberIDs := slice.Map(members, func(member *game.Game) string { return member.ID })

	relationPtrs, err := service.catalog.ListRelationsAmong(context, memberIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("family: failed to load relations: %w", err)
	}

	relations := slice.Map(relationPtrs, func(relation *game.Relation) game.Relation { return *relation })

	return members, relations, nil
}

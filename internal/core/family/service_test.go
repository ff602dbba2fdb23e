// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package family_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/core/family"
	"github.com/meeplebay/meeplebay/internal/core/game"
	"github.com/meeplebay/meeplebay/internal/platform/apperr"
	"github.com/meeplebay/meeplebay/internal/platform/constants"
)

// fakeCatalog serves a single in-memory family. The anchor lookup counter
// lets tests assert that a cache hit never reaches the database.
type fakeCatalog struct {
	games       map[string]*game.Game
	members     []*game.Game
	relations   []*game.Relation
	anchorCalls int
}

func (catalog *fakeCatalog) FindByID(_ context.Context, id string) (*game.Game, error) {
	catalog.anchorCalls++
	if entity, ok := catalog.games[id]; ok {
		return entity, nil
	}
	return nil, apperr.NotFound("game")
}

func (catalog *fakeCatalog) ListByFamilyID(_ context.Context, _ string) ([]*game.Game, error) {
	return catalog.members, nil
}

func (catalog *fakeCatalog) ListRelationsAmong(_ context.Context, _ []string) ([]*game.Relation, error) {
	return catalog.relations, nil
}

// fakeTreeCache scripts the Redis read result and records cache fills.
type fakeTreeCache struct {
	getValue string
	getErr   error
	setErr   error
	setKeys  []string
	delKeys  []string
}

func (cache *fakeTreeCache) Get(_ context.Context, _ string) *redis.StringCmd {
	return redis.NewStringResult(cache.getValue, cache.getErr)
}

func (cache *fakeTreeCache) Set(_ context.Context, key string, _ interface{}, _ time.Duration) *redis.StatusCmd {
	cache.setKeys = append(cache.setKeys, key)
	return redis.NewStatusResult("OK", cache.setErr)
}

func (cache *fakeTreeCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	cache.delKeys = append(cache.delKeys, keys...)
	return redis.NewIntResult(int64(len(keys)), nil)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func familyGame(id, familyID string) *game.Game {
	entity := &game.Game{ID: id, Name: id, PlayerCountMin: 1, PlayerCountMax: 4}
	if familyID != "" {
		entity.FamilyID = &familyID
	}
	return entity
}

/*
TestGetOrphans_StandaloneGame treats a game without a family grouping as a
single-member family with nothing disconnected.
*/
func TestGetOrphans_StandaloneGame(t *testing.T) {
	anchor := familyGame("solo-title", "")
	catalog := &fakeCatalog{games: map[string]*game.Game{"solo-title": anchor}}
	service := family.NewService(catalog, nil, testLogger())

	orphans, err := service.GetOrphans(context.Background(), "solo-title")

	require.NoError(t, err)
	assert.Empty(t, orphans)
}

/*
TestGetOrphans_DisconnectedMember reports the family member with no relation
path back to the anchor.
*/
func TestGetOrphans_DisconnectedMember(t *testing.T) {
	base := familyGame("base", "fam-1")
	expansion := familyGame("expansion", "fam-1")
	stray := familyGame("stray", "fam-1")

	catalog := &fakeCatalog{
		games:   map[string]*game.Game{"base": base},
		members: []*game.Game{base, expansion, stray},
		relations: []*game.Relation{
			{SourceGameID: "expansion", TargetGameID: "base", Type: game.RelationExpansionOf},
		},
	}
	service := family.NewService(catalog, nil, testLogger())

	orphans, err := service.GetOrphans(context.Background(), "base")

	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, "stray", orphans[0].ID)
}

/*
TestGetOrphans_UnknownAnchor propagates the not-found error from the anchor
lookup.
*/
func TestGetOrphans_UnknownAnchor(t *testing.T) {
	catalog := &fakeCatalog{games: map[string]*game.Game{}}
	service := family.NewService(catalog, nil, testLogger())

	orphans, err := service.GetOrphans(context.Background(), "missing")

	assert.Nil(t, orphans)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestGetTree_CacheHit serves a cached layout without touching the database.
*/
func TestGetTree_CacheHit(t *testing.T) {
	anchor := familyGame("solo-title", "")
	cached := family.BuildLayout([]*game.Game{anchor}, nil, "solo-title")
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	catalog := &fakeCatalog{games: map[string]*game.Game{"solo-title": anchor}}
	cache := &fakeTreeCache{getValue: string(payload)}
	service := family.NewService(catalog, cache, testLogger())

	layout, err := service.GetTree(context.Background(), "solo-title")

	require.NoError(t, err)
	require.Len(t, layout.Tiers, 1)
	assert.Equal(t, "solo-title", layout.Tiers[0].Nodes[0].Game.ID)
	assert.Zero(t, catalog.anchorCalls)
	assert.Empty(t, cache.setKeys)
}

/*
TestGetTree_CorruptEntryRebuilds falls back to a database rebuild when the
cached payload does not decode, then refreshes the entry.
*/
func TestGetTree_CorruptEntryRebuilds(t *testing.T) {
	anchor := familyGame("base", "fam-1")
	catalog := &fakeCatalog{
		games:   map[string]*game.Game{"base": anchor},
		members: []*game.Game{anchor},
	}
	cache := &fakeTreeCache{getValue: "corrupt{"}
	service := family.NewService(catalog, cache, testLogger())

	layout, err := service.GetTree(context.Background(), "base")

	require.NoError(t, err)
	require.Len(t, layout.Tiers, 1)
	assert.Equal(t, "base", layout.Tiers[0].Nodes[0].Game.ID)
	assert.Equal(t, 1, catalog.anchorCalls)
	assert.Equal(t, []string{constants.RedisPrefixFamilyTree + "base"}, cache.setKeys)
}

/*
TestGetTree_CacheUnavailableDegrades keeps serving from the database when
both the cache read and the refill fail.
*/
func TestGetTree_CacheUnavailableDegrades(t *testing.T) {
	anchor := familyGame("base", "fam-1")
	catalog := &fakeCatalog{
		games:   map[string]*game.Game{"base": anchor},
		members: []*game.Game{anchor},
	}
	cache := &fakeTreeCache{
		getErr: errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"),
		setErr: errors.New("dial tcp 127.0.0.1:6379: connect: connection refused"),
	}
	service := family.NewService(catalog, cache, testLogger())

	layout, err := service.GetTree(context.Background(), "base")

	require.NoError(t, err)
	require.Len(t, layout.Tiers, 1)
	assert.Equal(t, "base", layout.Tiers[0].Nodes[0].Game.ID)
}

/*
TestGetTree_CacheMissFills stores the assembled layout under the anchor key
after a plain miss.
*/
func TestGetTree_CacheMissFills(t *testing.T) {
	anchor := familyGame("base", "fam-1")
	catalog := &fakeCatalog{
		games:   map[string]*game.Game{"base": anchor},
		members: []*game.Game{anchor},
	}
	cache := &fakeTreeCache{getErr: redis.Nil}
	service := family.NewService(catalog, cache, testLogger())

	_, err := service.GetTree(context.Background(), "base")

	require.NoError(t, err)
	assert.Equal(t, []string{constants.RedisPrefixFamilyTree + "base"}, cache.setKeys)
}

/*
TestInvalidate_DropsBothAnchors flushes the cached layouts of both endpoints
of a changed relation.
*/
func TestInvalidate_DropsBothAnchors(t *testing.T) {
	cache := &fakeTreeCache{}
	service := family.NewService(&fakeCatalog{}, cache, testLogger())

	service.Invalidate(context.Background(), "source", "target")

	assert.Equal(t, []string{
		constants.RedisPrefixFamilyTree + "source",
		constants.RedisPrefixFamilyTree + "target",
	}, cache.delKeys)
}

// Copyright (c) 2026 MeepleBay. All rights reserved.
// Author: dev@meeplebay.app

package recommend_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/core/game"
	"github.com/meeplebay/meeplebay/internal/core/recommend"
)

// fakeCatalog records the candidate query and plays back a canned pool.
type fakeCatalog struct {
	games          []*game.Game
	err            error
	gotPlayerCount int
	gotLimit       int
}

func (catalog *fakeCatalog) ListCandidates(_ context.Context, playerCount, limit int) ([]*game.Game, error) {
	catalog.gotPlayerCount = playerCount
	catalog.gotLimit = limit
	return catalog.games, catalog.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// candidatePool builds n minimally valid games supporting 1-4 players.
func candidatePool(n int) []*game.Game {
	pool := make([]*game.Game, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, &game.Game{
			ID:             fmt.Sprintf("game-%03d", i),
			Name:           fmt.Sprintf("Game %03d", i),
			PlayerCountMin: 1,
			PlayerCountMax: 4,
		})
	}
	return pool
}

/*
TestRecommend_DefaultLimit verifies that an unset limit yields at most ten
results from a larger pool, sorted best-first.
*/
func TestRecommend_DefaultLimit(t *testing.T) {
	catalog := &fakeCatalog{games: candidatePool(25)}
	service := recommend.NewService(catalog, testLogger())

	result, err := service.Recommend(context.Background(), recommend.Answers{}, 0)

	require.NoError(t, err)
	assert.Len(t, result.Games, 10)
	for i := 1; i < len(result.Games); i++ {
		assert.GreaterOrEqual(t, result.Games[i-1].Score, result.Games[i].Score)
	}
}

/*
TestRecommend_LimitClamping bounds the caller-supplied result count to the
service maximum and floor.
*/
func TestRecommend_LimitClamping(t *testing.T) {
	catalog := &fakeCatalog{games: candidatePool(80)}
	service := recommend.NewService(catalog, testLogger())

	oversized, err := service.Recommend(context.Background(), recommend.Answers{}, 999)
	require.NoError(t, err)
	assert.Len(t, oversized.Games, 50)

	negative, err := service.Recommend(context.Background(), recommend.Answers{}, -3)
	require.NoError(t, err)
	assert.Len(t, negative.Games, 10)
}

/*
TestRecommend_CandidateQueryTarget checks that the database pre-filter is
driven by the midpoint of the derived player-count range.
*/
func TestRecommend_CandidateQueryTarget(t *testing.T) {
	catalog := &fakeCatalog{games: candidatePool(3)}
	service := recommend.NewService(catalog, testLogger())

	_, err := service.Recommend(context.Background(), recommend.Answers{
		PlayerCount: recommend.PlayerCountPartner,
	}, 0)

	require.NoError(t, err)
	assert.Equal(t, 2, catalog.gotPlayerCount)
	assert.Equal(t, 500, catalog.gotLimit)
}

/*
TestRecommend_ArchetypeMatchesAnswers confirms that the classified persona is
returned alongside the games and tracks the wizard answers.
*/
func TestRecommend_ArchetypeMatchesAnswers(t *testing.T) {
	catalog := &fakeCatalog{games: candidatePool(5)}
	service := recommend.NewService(catalog, testLogger())

	answers := recommend.Answers{
		ExperienceLevel: recommend.ExperienceHardcore,
		ExperienceType:  recommend.ExperienceStrategic,
	}
	result, err := service.Recommend(context.Background(), answers, 0)

	require.NoError(t, err)
	assert.Equal(t, recommend.Classify(answers), result.Archetype)
	assert.NotEmpty(t, result.Archetype.ID)
}

/*
TestRecommend_TagSignalsFlowThrough verifies that hydrated candidate tag
slugs influence the ranking.
*/
func TestRecommend_TagSignalsFlowThrough(t *testing.T) {
	themed := &game.Game{
		ID:             "themed",
		Name:           "Themed",
		PlayerCountMin: 1,
		PlayerCountMax: 4,
		Categories:     []string{"fantasy"},
	}
	plain := &game.Game{
		ID:             "plain",
		Name:           "Plain",
		PlayerCountMin: 1,
		PlayerCountMax: 4,
	}
	catalog := &fakeCatalog{games: []*game.Game{plain, themed}}
	service := recommend.NewService(catalog, testLogger())

	result, err := service.Recommend(context.Background(), recommend.Answers{
		ThemeWorld: recommend.ThemeSwordsSorcery,
	}, 0)

	require.NoError(t, err)
	require.Len(t, result.Games, 2)
	assert.Equal(t, "themed", result.Games[0].Game.ID)
}

/*
TestRecommend_CatalogError surfaces candidate retrieval failures unchanged.
*/
func TestRecommend_CatalogError(t *testing.T) {
	catalog := &fakeCatalog{err: errors.New("connection refused")}
	service := recommend.NewService(catalog, testLogger())

	result, err := service.Recommend(context.Background(), recommend.Answers{}, 0)

	assert.Nil(t, result)
	assert.Error(t, err)
}

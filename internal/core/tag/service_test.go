package tag_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meeplebay/meeplebay/internal/core/tag"
	"github.com/meeplebay/meeplebay/internal/platform/apperr"
)

type fakeRepository struct {
	tags    map[int]*tag.Tag
	created []*tag.Tag
	updated []*tag.Tag
	deleted []int
}

func (repo *fakeRepository) ListTags(_ context.Context) (*tag.Catalog, error) {
	catalog := &tag.Catalog{Categories: []tag.Tag{}, Mechanics: []tag.Tag{}}
	for _, entity := range repo.tags {
		switch entity.Kind {
		case tag.KindCategory:
			catalog.Categories = append(catalog.Categories, *entity)
		case tag.KindMechanic:
			catalog.Mechanics = append(catalog.Mechanics, *entity)
		}
	}
	return catalog, nil
}

func (repo *fakeRepository) GetTagByID(_ context.Context, id int) (*tag.Tag, error) {
	if entity, ok := repo.tags[id]; ok {
		return entity, nil
	}
	return nil, apperr.NotFound("tag")
}

func (repo *fakeRepository) GetTagBySlug(_ context.Context, slug string) (*tag.Tag, error) {
	for _, entity := range repo.tags {
		if entity.Slug == slug {
			return entity, nil
		}
	}
	return nil, apperr.NotFound("tag")
}

func (repo *fakeRepository) Create(_ context.Context, entity *tag.Tag) error {
	repo.created = append(repo.created, entity)
	return nil
}

func (repo *fakeRepository) Update(_ context.Context, entity *tag.Tag) error {
	if _, ok := repo.tags[entity.ID]; !ok {
		return apperr.NotFound("tag")
	}
	repo.updated = append(repo.updated, entity)
	return nil
}

func (repo *fakeRepository) Delete(_ context.Context, id int) error {
	if _, ok := repo.tags[id]; !ok {
		return apperr.NotFound("tag")
	}
	repo.deleted = append(repo.deleted, id)
	return nil
}

func newTagService(repo *fakeRepository) *tag.Service {
	return tag.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateTag(t *testing.T) {
	tests := []struct {
		name      string
		input     tag.Tag
		wantErr   bool
		wantField string
		wantSlug  string
	}{
		{
			name:     "derives_slug_from_name",
			input:    tag.Tag{Kind: tag.KindCategory, Name: "Worker Placement"},
			wantSlug: "worker-placement",
		},
		{
			name:     "keeps_explicit_slug",
			input:    tag.Tag{Kind: tag.KindMechanic, Name: "Deck Building", Slug: "deckbuilding"},
			wantSlug: "deckbuilding",
		},
		{
			name:      "rejects_empty_name",
			input:     tag.Tag{Kind: tag.KindCategory},
			wantErr:   true,
			wantField: "name",
		},
		{
			name:      "rejects_unknown_kind",
			input:     tag.Tag{Kind: "flavor", Name: "Salty"},
			wantErr:   true,
			wantField: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := newTagService(repo)

			err := service.CreateTag(context.Background(), &tt.input)

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, tt.wantField, ae.Details[0].Field)
				assert.Empty(t, repo.created)
				return
			}

			require.NoError(t, err)
			require.Len(t, repo.created, 1)
			assert.Equal(t, tt.wantSlug, repo.created[0].Slug)
		})
	}
}

func TestUpdateTag(t *testing.T) {
	existing := &tag.Tag{ID: 7, Kind: tag.KindMechanic, Name: "Set Collection", Slug: "set-collection"}
	repo := &fakeRepository{tags: map[int]*tag.Tag{7: existing}}
	service := newTagService(repo)

	err := service.UpdateTag(context.Background(), &tag.Tag{ID: 7, Kind: tag.KindMechanic, Name: "Tile Placement"})

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "tile-placement", repo.updated[0].Slug)
}

func TestUpdateTag_UnknownID(t *testing.T) {
	service := newTagService(&fakeRepository{tags: map[int]*tag.Tag{}})

	err := service.UpdateTag(context.Background(), &tag.Tag{ID: 99, Name: "Ghost"})

	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteTag(t *testing.T) {
	existing := &tag.Tag{ID: 3, Kind: tag.KindCategory, Name: "Abstract", Slug: "abstract"}
	repo := &fakeRepository{tags: map[int]*tag.Tag{3: existing}}
	service := newTagService(repo)

	require.NoError(t, service.DeleteTag(context.Background(), 3))
	assert.Equal(t, []int{3}, repo.deleted)

	assert.True(t, apperr.IsNotFound(service.DeleteTag(context.Background(), 8)))
}

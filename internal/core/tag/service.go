package tag

import (
	"context"
	"log/slog"

	"github.com/meeplebay/meeplebay/internal/platform/validate"
	"github.com/meeplebay/meeplebay/pkg/slug"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListTags(context context.Context) (*Catalog, error) {
	return service.repo.ListTags(context)
}

func (service *Service) GetTag(context context.Context, id int) (*Tag, error) {
	return service.repo.GetTagByID(context, id)
}

func (service *Service) GetTagBySlug(context context.Context, tagSlug string) (*Tag, error) {
	return service.repo.GetTagBySlug(context, tagSlug)
}

func (service *Service) CreateTag(context context.Context, tag *Tag) error {
	v := &validate.Validator{}
	v.Required("name", tag.Name).MaxLen("name", tag.Name, 100)
	v.Custom("kind", !tag.Kind.IsValid(), "must be 'category' or 'mechanic'")
	if err := v.Err(); err != nil {
		return err
	}

	if tag.Slug == "" {
		tag.Slug = slug.From(tag.Name)
	}

	if err := service.repo.Create(context, tag); err != nil {
		return err
	}

	service.logger.Info("tag_created", slog.Int("tag_id", tag.ID), slog.String("kind", string(tag.Kind)))
	return nil
}

func (service *Service) UpdateTag(context context.Context, tag *Tag) error {
	v := &validate.Validator{}
	v.Required("name", tag.Name).MaxLen("name", tag.Name, 100)
	if err := v.Err(); err != nil {
		return err
	}

	if tag.Slug == "" {
		tag.Slug = slug.From(tag.Name)
	}

	if err := service.repo.Update(context, tag); err != nil {
		return err
	}

	service.logger.Info("tag_updated", slog.Int("tag_id", tag.ID))
	return nil
}

func (service *Service) DeleteTag(context context.Context, id int) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("tag_deleted", slog.Int("tag_id", id))
	return nil
}

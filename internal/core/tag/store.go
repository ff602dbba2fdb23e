package tag

import "context"

type Repository interface {
	ListTags(context context.Context) (*Catalog, error)
	GetTagByID(context context.Context, id int) (*Tag, error)
	GetTagBySlug(context context.Context, slug string) (*Tag, error)
	Create(context context.Context, tag *Tag) error
	Update(context context.Context, tag *Tag) error
	Delete(context context.Context, id int) error
}

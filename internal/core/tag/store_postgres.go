package tag

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meeplebay/meeplebay/internal/platform/apperr"
	"github.com/meeplebay/meeplebay/internal/platform/database/schema"
	"github.com/meeplebay/meeplebay/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListTags(context context.Context) (*Catalog, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s ORDER BY %s, %s ASC`,
		schema.RefTag.ID, schema.RefTag.Kind, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Description,
		schema.RefTag.Table, schema.RefTag.Kind, schema.RefTag.Name)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}
	defer rows.Close()

	catalog := &Catalog{
		Categories: make([]Tag, 0),
		Mechanics:  make([]Tag, 0),
	}

	for rows.Next() {
		t := Tag{}
		if err := rows.Scan(&t.ID, &t.Kind, &t.Name, &t.Slug, &t.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_tag")
		}

		switch t.Kind {
		case KindCategory:
			catalog.Categories = append(catalog.Categories, t)
		case KindMechanic:
			catalog.Mechanics = append(catalog.Mechanics, t)
		}
	}

	return catalog, nil
}

func (repository *PostgresRepository) GetTagByID(context context.Context, id int) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefTag.ID, schema.RefTag.Kind, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Description,
		schema.RefTag.Table, schema.RefTag.ID)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, id).Scan(&t.ID, &t.Kind, &t.Name, &t.Slug, &t.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_id")
	}
	return t, nil
}

func (repository *PostgresRepository) GetTagBySlug(context context.Context, slug string) (*Tag, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefTag.ID, schema.RefTag.Kind, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Description,
		schema.RefTag.Table, schema.RefTag.Slug)

	t := &Tag{}
	err := repository.db.QueryRow(context, query, slug).Scan(&t.ID, &t.Kind, &t.Name, &t.Slug, &t.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "get_tag_by_slug")
	}
	return t, nil
}

func (repository *PostgresRepository) Create(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s) VALUES ($1, $2, $3, $4) RETURNING %s`,
		schema.RefTag.Table,
		schema.RefTag.Kind, schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Description,
		schema.RefTag.ID)

	err := repository.db.QueryRow(context, query, tag.Kind, tag.Name, tag.Slug, tag.Description).Scan(&tag.ID)
	if err != nil {
		return dberr.Wrap(err, "create_tag")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, tag *Tag) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3, %s = $4 WHERE %s = $1`,
		schema.RefTag.Table,
		schema.RefTag.Name, schema.RefTag.Slug, schema.RefTag.Description,
		schema.RefTag.ID)

	result, err := repository.db.Exec(context, query, tag.ID, tag.Name, tag.Slug, tag.Description)
	if err != nil {
		return dberr.Wrap(err, "update_tag")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("tag")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.RefTag.Table, schema.RefTag.ID)

	result, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_tag")
	}
	if result.RowsAffected() == 0 {
		return apperr.NotFound("tag")
	}
	return nil
}

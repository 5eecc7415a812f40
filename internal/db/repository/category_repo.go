package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/db/queries"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]queries.Category, error)
	GetCategory(ctx context.Context, id int32) (queries.Category, error)
}

// CategoryRepository exposes the category table as domain values.
type CategoryRepository struct {
	store categoryStore
}

var _ trivia.CategoryStore = (*CategoryRepository)(nil)

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns every category ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]trivia.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]trivia.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategory(row))
	}
	return out, nil
}

// Get fetches a category, returning trivia.ErrNotFound when it does not exist.
func (r *CategoryRepository) Get(ctx context.Context, id int) (trivia.Category, error) {
	key, ok := toID(id)
	if !ok {
		return trivia.Category{}, trivia.ErrNotFound
	}
	row, err := r.store.GetCategory(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return trivia.Category{}, trivia.ErrNotFound
		}
		return trivia.Category{}, err
	}
	return toCategory(row), nil
}

func toCategory(row queries.Category) trivia.Category {
	return trivia.Category{ID: int(row.ID), Type: row.Type}
}

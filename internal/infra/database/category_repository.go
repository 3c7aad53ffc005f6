package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type CategoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

const categorySelect = `SELECT id, name, slug, created_at, updated_at FROM categories`

func (r *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.DB.QueryContext(ctx, categorySelect+` ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []*entity.Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	row := r.DB.QueryRowContext(ctx, categorySelect+` WHERE id = $1`, id)

	category, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) FindByNameOrSlug(ctx context.Context, name, slug string) (*entity.Category, error) {
	row := r.DB.QueryRowContext(ctx, categorySelect+` WHERE name = $1 OR slug = $2 LIMIT 1`, name, slug)

	category, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	query := `
		INSERT INTO categories (id, name, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		category.ID,
		category.Name,
		category.Slug,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return entity.ErrDuplicateCategory
	}
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	query := `UPDATE categories SET name = $1, slug = $2, updated_at = $3 WHERE id = $4`

	result, err := r.DB.ExecContext(ctx, query,
		category.Name,
		category.Slug,
		category.UpdatedAt,
		category.ID,
	)

	if isUniqueViolation(err) {
		return entity.ErrDuplicateCategory
	}
	if isInvalidUUID(err) {
		return entity.ErrNotFound
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

// Delete removes only the category row. Leads keep their category_id; the
// readers tolerate the dangling reference.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if isInvalidUUID(err) {
		return entity.ErrNotFound
	}
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func scanCategory(row rowScanner) (*entity.Category, error) {
	var category entity.Category
	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CreatedAt,
		&category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/repository/pgdb/converter"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, active, created_at, updated_at;
	`

	var model converter.CategoryModel
	if err := q(ctx, c.pool).QueryRow(ctx, query, category.Name).
		Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories SET name = $2, updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING id, name, active, created_at, updated_at;
	`

	var model converter.CategoryModel
	if err := q(ctx, c.pool).QueryRow(ctx, query, category.ID, category.Name).
		Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE categories SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true;
	`

	tag, err := q(ctx, c.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
	}

	return nil
}

func (c *CategoryRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM categories
		WHERE id = $1 AND active = true;
	`

	var model converter.CategoryModel
	if err := q(ctx, c.pool).QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCategoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) List(ctx context.Context, page *usecase.PageParams) ([]domain.Category, int64, error) {
	query := `
		SELECT id, name, active, created_at, updated_at, COUNT(*) OVER() AS total
		FROM categories
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`

	rows, err := q(ctx, c.pool).Query(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	models := make([]converter.CategoryModel, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt, &total); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), total, nil
}

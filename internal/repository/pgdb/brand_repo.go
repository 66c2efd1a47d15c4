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

// BrandRepo реализует репозиторий брендов поверх PostgreSQL.
type BrandRepo struct {
	pool *pgxpool.Pool
	conv converter.BrandConverter
}

func NewBrandRepo(pool *pgxpool.Pool, conv converter.BrandConverter) *BrandRepo {
	return &BrandRepo{pool: pool, conv: conv}
}

func (b *BrandRepo) Create(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	query := `
		INSERT INTO brands (name) VALUES ($1)
		RETURNING id, name, active, created_at, updated_at;
	`

	var model converter.BrandModel
	if err := q(ctx, b.pool).QueryRow(ctx, query, brand.Name).
		Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BrandRepo) Update(ctx context.Context, brand *domain.Brand) (*domain.Brand, error) {
	query := `
		UPDATE brands SET name = $2, updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING id, name, active, created_at, updated_at;
	`

	var model converter.BrandModel
	if err := q(ctx, b.pool).QueryRow(ctx, query, brand.ID, brand.Name).
		Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrBrandNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BrandRepo) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE brands SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true;
	`

	tag, err := q(ctx, b.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrBrandNotFound)
	}

	return nil
}

func (b *BrandRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Brand, error) {
	query := `
		SELECT id, name, active, created_at, updated_at
		FROM brands
		WHERE id = $1 AND active = true;
	`

	var model converter.BrandModel
	if err := q(ctx, b.pool).QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrBrandNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToEntity(&model), nil
}

func (b *BrandRepo) List(ctx context.Context, page *usecase.PageParams) ([]domain.Brand, int64, error) {
	query := `
		SELECT id, name, active, created_at, updated_at, COUNT(*) OVER() AS total
		FROM brands
		WHERE active = true
		ORDER BY name
		LIMIT $1 OFFSET $2;
	`

	rows, err := q(ctx, b.pool).Query(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	models := make([]converter.BrandModel, 0)
	for rows.Next() {
		var model converter.BrandModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Active, &model.CreatedAt, &model.UpdatedAt, &total); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return b.conv.ToArrEntity(models), total, nil
}

package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// WarrantyRepo реализует репозиторий гарантий поверх PostgreSQL.
type WarrantyRepo struct {
	pool *pgxpool.Pool
}

func NewWarrantyRepo(pool *pgxpool.Pool) *WarrantyRepo {
	return &WarrantyRepo{pool: pool}
}

func (w *WarrantyRepo) Create(ctx context.Context, warranty *domain.Warranty) (*domain.Warranty, error) {
	query := `
		INSERT INTO warranties (brand_id, name, description, duration_months)
		VALUES ($1, $2, $3, $4)
		RETURNING id, brand_id, name, description, duration_months, created_at, updated_at;
	`

	var created domain.Warranty
	if err := q(ctx, w.pool).QueryRow(ctx, query,
		warranty.BrandID, warranty.Name, warranty.Description, warranty.DurationMonths,
	).Scan(
		&created.ID, &created.BrandID, &created.Name, &created.Description,
		&created.DurationMonths, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (w *WarrantyRepo) GetByID(ctx context.Context, id int64) (*domain.Warranty, error) {
	query := `
		SELECT id, brand_id, name, description, duration_months, created_at, updated_at
		FROM warranties
		WHERE id = $1;
	`

	var warranty domain.Warranty
	if err := q(ctx, w.pool).QueryRow(ctx, query, id).Scan(
		&warranty.ID, &warranty.BrandID, &warranty.Name, &warranty.Description,
		&warranty.DurationMonths, &warranty.CreatedAt, &warranty.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrWarrantyNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &warranty, nil
}

func (w *WarrantyRepo) List(ctx context.Context, page *usecase.PageParams) ([]domain.Warranty, int64, error) {
	query := `
		SELECT id, brand_id, name, description, duration_months, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM warranties
		ORDER BY id
		LIMIT $1 OFFSET $2;
	`

	rows, err := q(ctx, w.pool).Query(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]domain.Warranty, 0)
	for rows.Next() {
		var warranty domain.Warranty
		if err := rows.Scan(
			&warranty.ID, &warranty.BrandID, &warranty.Name, &warranty.Description,
			&warranty.DurationMonths, &warranty.CreatedAt, &warranty.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, warranty)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}

func (w *WarrantyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := q(ctx, w.pool).Exec(ctx, `DELETE FROM warranties WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrWarrantyNotFound)
	}

	return nil
}

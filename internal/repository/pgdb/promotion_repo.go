package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PromotionRepo реализует репозиторий акций поверх PostgreSQL.
type PromotionRepo struct {
	pool *pgxpool.Pool
}

func NewPromotionRepo(pool *pgxpool.Pool) *PromotionRepo {
	return &PromotionRepo{pool: pool}
}

const promotionColumns = `id, title, description, discount_percentage, start_date, end_date, active, created_at, updated_at`

func (p *PromotionRepo) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	query := `
		INSERT INTO promotions (title, description, discount_percentage, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + promotionColumns + `;
	`

	var created domain.Promotion
	if err := q(ctx, p.pool).QueryRow(ctx, query,
		promotion.Title, promotion.Description, promotion.DiscountPercentage,
		promotion.StartDate, promotion.EndDate,
	).Scan(
		&created.ID, &created.Title, &created.Description, &created.DiscountPercentage,
		&created.StartDate, &created.EndDate, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (p *PromotionRepo) Update(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	query := `
		UPDATE promotions SET
			title = $2,
			description = $3,
			discount_percentage = $4,
			start_date = $5,
			end_date = $6,
			updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING ` + promotionColumns + `;
	`

	var updated domain.Promotion
	if err := q(ctx, p.pool).QueryRow(ctx, query,
		promotion.ID, promotion.Title, promotion.Description,
		promotion.DiscountPercentage, promotion.StartDate, promotion.EndDate,
	).Scan(
		&updated.ID, &updated.Title, &updated.Description, &updated.DiscountPercentage,
		&updated.StartDate, &updated.EndDate, &updated.Active, &updated.CreatedAt, &updated.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPromotionNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &updated, nil
}

func (p *PromotionRepo) Deactivate(ctx context.Context, id int64) error {
	query := `
		UPDATE promotions SET active = false, updated_at = NOW()
		WHERE id = $1 AND active = true;
	`

	tag, err := q(ctx, p.pool).Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrPromotionNotFound)
	}

	return nil
}

func (p *PromotionRepo) GetByID(ctx context.Context, id int64) (*domain.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE id = $1 AND active = true;
	`

	var promotion domain.Promotion
	if err := q(ctx, p.pool).QueryRow(ctx, query, id).Scan(
		&promotion.ID, &promotion.Title, &promotion.Description, &promotion.DiscountPercentage,
		&promotion.StartDate, &promotion.EndDate, &promotion.Active, &promotion.CreatedAt, &promotion.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPromotionNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &promotion, nil
}

func (p *PromotionRepo) List(ctx context.Context, page *usecase.PageParams) ([]domain.Promotion, int64, error) {
	query := `
		SELECT ` + promotionColumns + `, COUNT(*) OVER() AS total
		FROM promotions
		WHERE active = true
		ORDER BY start_date DESC
		LIMIT $1 OFFSET $2;
	`

	rows, err := q(ctx, p.pool).Query(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]domain.Promotion, 0)
	for rows.Next() {
		var promotion domain.Promotion
		if err := rows.Scan(
			&promotion.ID, &promotion.Title, &promotion.Description, &promotion.DiscountPercentage,
			&promotion.StartDate, &promotion.EndDate, &promotion.Active,
			&promotion.CreatedAt, &promotion.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, promotion)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, total, nil
}

func (p *PromotionRepo) AddProduct(ctx context.Context, promotionID, productID int64) error {
	query := `
		INSERT INTO promotion_products (promotion_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (promotion_id, product_id) DO NOTHING;
	`

	if _, err := q(ctx, p.pool).Exec(ctx, query, promotionID, productID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *PromotionRepo) RemoveProduct(ctx context.Context, promotionID, productID int64) error {
	tag, err := q(ctx, p.pool).Exec(ctx,
		`DELETE FROM promotion_products WHERE promotion_id = $1 AND product_id = $2;`,
		promotionID, productID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *PromotionRepo) ListProducts(ctx context.Context, promotionID int64) ([]int64, error) {
	query := `
		SELECT product_id
		FROM promotion_products
		WHERE promotion_id = $1
		ORDER BY id;
	`

	rows, err := q(ctx, p.pool).Query(ctx, query, promotionID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return ids, nil
}

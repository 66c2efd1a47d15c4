package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// InventoryRepo реализует репозиторий складских остатков поверх PostgreSQL.
type InventoryRepo struct {
	pool *pgxpool.Pool
}

func NewInventoryRepo(pool *pgxpool.Pool) *InventoryRepo {
	return &InventoryRepo{pool: pool}
}

// Upsert идемпотентно создаёт или обновляет остаток и цены по product_id.
func (i *InventoryRepo) Upsert(ctx context.Context, inv *domain.Inventory) (*domain.Inventory, error) {
	query := `
		INSERT INTO inventory (product_id, stock, price_usd, price_bs)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id)
		DO UPDATE SET
			stock = EXCLUDED.stock,
			price_usd = EXCLUDED.price_usd,
			price_bs = EXCLUDED.price_bs,
			updated_at = NOW()
		RETURNING id, product_id, stock, price_usd, price_bs, created_at, updated_at;
	`

	var result domain.Inventory
	if err := q(ctx, i.pool).QueryRow(ctx, query,
		inv.ProductID, inv.Stock, inv.PriceUSD, inv.PriceBS,
	).Scan(
		&result.ID, &result.ProductID, &result.Stock,
		&result.PriceUSD, &result.PriceBS, &result.CreatedAt, &result.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &result, nil
}

func (i *InventoryRepo) GetByProductID(ctx context.Context, productID int64) (*domain.Inventory, error) {
	query := `
		SELECT id, product_id, stock, price_usd, price_bs, created_at, updated_at
		FROM inventory
		WHERE product_id = $1;
	`

	var inv domain.Inventory
	if err := q(ctx, i.pool).QueryRow(ctx, query, productID).Scan(
		&inv.ID, &inv.ProductID, &inv.Stock,
		&inv.PriceUSD, &inv.PriceBS, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInventoryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &inv, nil
}

// AdjustStock атомарно изменяет остаток; уход в минус отклоняется на уровне SQL.
func (i *InventoryRepo) AdjustStock(ctx context.Context, productID int64, delta int32) (*domain.Inventory, error) {
	query := `
		UPDATE inventory
		SET stock = stock + $2, updated_at = NOW()
		WHERE product_id = $1 AND stock + $2 >= 0
		RETURNING id, product_id, stock, price_usd, price_bs, created_at, updated_at;
	`

	var inv domain.Inventory
	if err := q(ctx, i.pool).QueryRow(ctx, query, productID, delta).Scan(
		&inv.ID, &inv.ProductID, &inv.Stock,
		&inv.PriceUSD, &inv.PriceBS, &inv.CreatedAt, &inv.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidQuantity)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &inv, nil
}

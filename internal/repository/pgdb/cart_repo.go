package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует репозиторий корзин поверх PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
}

func NewCartRepo(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// GetOrCreateActive возвращает активную корзину пользователя, создавая её
// при отсутствии. У пользователя не более одной активной корзины.
func (c *CartRepo) GetOrCreateActive(ctx context.Context, userID int64) (*domain.ShoppingCart, error) {
	query := `
		INSERT INTO shopping_carts (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) WHERE active DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, active, created_at, updated_at;
	`

	var cart domain.ShoppingCart
	if err := q(ctx, c.pool).QueryRow(ctx, query, userID).Scan(
		&cart.ID, &cart.UserID, &cart.Active, &cart.CreatedAt, &cart.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := c.listItems(ctx, cart.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cart.Items = items

	return &cart, nil
}

// GetActiveByUser возвращает активную корзину с позициями.
func (c *CartRepo) GetActiveByUser(ctx context.Context, userID int64) (*domain.ShoppingCart, error) {
	query := `
		SELECT id, user_id, active, created_at, updated_at
		FROM shopping_carts
		WHERE user_id = $1 AND active = true;
	`

	var cart domain.ShoppingCart
	if err := q(ctx, c.pool).QueryRow(ctx, query, userID).Scan(
		&cart.ID, &cart.UserID, &cart.Active, &cart.CreatedAt, &cart.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := c.listItems(ctx, cart.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cart.Items = items

	return &cart, nil
}

// UpsertItem добавляет позицию или суммирует количество существующей.
func (c *CartRepo) UpsertItem(ctx context.Context, cartID, productID int64, quantity int32) (*domain.CartItem, error) {
	query := `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET
			quantity = cart_items.quantity + EXCLUDED.quantity,
			updated_at = NOW()
		RETURNING id, cart_id, product_id, quantity, created_at, updated_at;
	`

	var item domain.CartItem
	if err := q(ctx, c.pool).QueryRow(ctx, query, cartID, productID, quantity).Scan(
		&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &item, nil
}

func (c *CartRepo) RemoveItem(ctx context.Context, cartID, productID int64) error {
	tag, err := q(ctx, c.pool).Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2;`, cartID, productID)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCartNotFound)
	}

	return nil
}

func (c *CartRepo) Clear(ctx context.Context, cartID int64) error {
	if _, err := q(ctx, c.pool).Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id = $1;`, cartID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) listItems(ctx context.Context, cartID int64) ([]domain.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY id;
	`

	rows, err := q(ctx, c.pool).Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.ID, &item.CartID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

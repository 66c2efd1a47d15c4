package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/internal/usecase"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Create вставляет заказ вместе с позициями. Позиции несут снимок цены
// на момент оформления.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	querier := q(ctx, o.pool)

	orderQuery := `
		INSERT INTO orders (user_id, total_amount, currency, status, payment_method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, total_amount, currency, status, payment_method, active, created_at, updated_at;
	`

	var created domain.Order
	if err := querier.QueryRow(ctx, orderQuery,
		order.UserID, order.TotalAmount, order.Currency, order.Status, order.PaymentMethod,
	).Scan(
		&created.ID, &created.UserID, &created.TotalAmount, &created.Currency,
		&created.Status, &created.PaymentMethod, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, product_id, quantity, unit_price;
	`

	created.Items = make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		var inserted domain.OrderItem
		if err := querier.QueryRow(ctx, itemQuery,
			created.ID, item.ProductID, item.Quantity, item.UnitPrice,
		).Scan(
			&inserted.ID, &inserted.OrderID, &inserted.ProductID, &inserted.Quantity, &inserted.UnitPrice,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created.Items = append(created.Items, inserted)
	}

	return &created, nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT id, user_id, total_amount, currency, status, payment_method, active, created_at, updated_at
		FROM orders
		WHERE id = $1 AND active = true;
	`

	var order domain.Order
	if err := q(ctx, o.pool).QueryRow(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.TotalAmount, &order.Currency,
		&order.Status, &order.PaymentMethod, &order.Active, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := o.listItems(ctx, order.ID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	order.Items = items

	return &order, nil
}

func (o *OrderRepo) ListByUser(ctx context.Context, userID int64, page *usecase.PageParams) ([]domain.Order, int64, error) {
	query := `
		SELECT id, user_id, total_amount, currency, status, payment_method, active, created_at, updated_at,
			COUNT(*) OVER() AS total
		FROM orders
		WHERE user_id = $1 AND active = true
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`

	rows, err := q(ctx, o.pool).Query(ctx, query, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var total int64
	result := make([]domain.Order, 0)
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID, &order.UserID, &order.TotalAmount, &order.Currency,
			&order.Status, &order.PaymentMethod, &order.Active, &order.CreatedAt, &order.UpdatedAt, &total,
		); err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, order)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range result {
		items, err := o.listItems(ctx, result[i].ID)
		if err != nil {
			return nil, 0, e.Wrap(whereami.WhereAmI(), err)
		}
		result[i].Items = items
	}

	return result, total, nil
}

func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	query := `
		UPDATE orders SET status = $2, updated_at = NOW()
		WHERE id = $1 AND active = true
		RETURNING id, user_id, total_amount, currency, status, payment_method, active, created_at, updated_at;
	`

	var order domain.Order
	if err := q(ctx, o.pool).QueryRow(ctx, query, id, status).Scan(
		&order.ID, &order.UserID, &order.TotalAmount, &order.Currency,
		&order.Status, &order.PaymentMethod, &order.Active, &order.CreatedAt, &order.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &order, nil
}

func (o *OrderRepo) listItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id;
	`

	rows, err := q(ctx, o.pool).Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.UnitPrice,
		); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

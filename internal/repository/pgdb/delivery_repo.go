package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// DeliveryRepo реализует репозиторий доставок поверх PostgreSQL.
type DeliveryRepo struct {
	pool *pgxpool.Pool
}

func NewDeliveryRepo(pool *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

const deliveryColumns = `id, order_id, address, status, tracking_info, estimated_arrival, created_at, updated_at`

func (d *DeliveryRepo) Create(ctx context.Context, delivery *domain.Delivery) (*domain.Delivery, error) {
	query := `
		INSERT INTO deliveries (order_id, address, status, estimated_arrival)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + deliveryColumns + `;
	`

	var created domain.Delivery
	if err := q(ctx, d.pool).QueryRow(ctx, query,
		delivery.OrderID, delivery.Address, delivery.Status, delivery.EstimatedArrival,
	).Scan(
		&created.ID, &created.OrderID, &created.Address, &created.Status,
		&created.TrackingInfo, &created.EstimatedArrival, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		if postgresDuplicate(err) {
			// По заказу допустима только одна доставка
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (d *DeliveryRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE order_id = $1;
	`

	var delivery domain.Delivery
	if err := q(ctx, d.pool).QueryRow(ctx, query, orderID).Scan(
		&delivery.ID, &delivery.OrderID, &delivery.Address, &delivery.Status,
		&delivery.TrackingInfo, &delivery.EstimatedArrival, &delivery.CreatedAt, &delivery.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDeliveryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &delivery, nil
}

func (d *DeliveryRepo) UpdateStatus(ctx context.Context, id int64, status, trackingInfo string) (*domain.Delivery, error) {
	query := `
		UPDATE deliveries SET status = $2, tracking_info = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + deliveryColumns + `;
	`

	var delivery domain.Delivery
	if err := q(ctx, d.pool).QueryRow(ctx, query, id, status, trackingInfo).Scan(
		&delivery.ID, &delivery.OrderID, &delivery.Address, &delivery.Status,
		&delivery.TrackingInfo, &delivery.EstimatedArrival, &delivery.CreatedAt, &delivery.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrDeliveryNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &delivery, nil
}

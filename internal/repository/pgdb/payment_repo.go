package pgdb

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/internal/domain"
	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PaymentRepo реализует репозиторий платежей поверх PostgreSQL.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

const paymentColumns = `id, order_id, amount, method, status, transaction_id, created_at, updated_at`

func (p *PaymentRepo) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (order_id, amount, method, status, transaction_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + paymentColumns + `;
	`

	var created domain.Payment
	if err := q(ctx, p.pool).QueryRow(ctx, query,
		payment.OrderID, payment.Amount, payment.Method, payment.Status, payment.TransactionID,
	).Scan(
		&created.ID, &created.OrderID, &created.Amount, &created.Method,
		&created.Status, &created.TransactionID, &created.CreatedAt, &created.UpdatedAt,
	); err != nil {
		if postgresDuplicate(err) {
			// По заказу допустим только один платёж
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrStatusBadRequest)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &created, nil
}

func (p *PaymentRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE order_id = $1;
	`

	var payment domain.Payment
	if err := q(ctx, p.pool).QueryRow(ctx, query, orderID).Scan(
		&payment.ID, &payment.OrderID, &payment.Amount, &payment.Method,
		&payment.Status, &payment.TransactionID, &payment.CreatedAt, &payment.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPaymentNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &payment, nil
}

func (p *PaymentRepo) UpdateStatus(ctx context.Context, id int64, status, transactionID string) (*domain.Payment, error) {
	query := `
		UPDATE payments SET status = $2, transaction_id = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + paymentColumns + `;
	`

	var payment domain.Payment
	if err := q(ctx, p.pool).QueryRow(ctx, query, id, status, transactionID).Scan(
		&payment.ID, &payment.OrderID, &payment.Amount, &payment.Method,
		&payment.Status, &payment.TransactionID, &payment.CreatedAt, &payment.UpdatedAt,
	); err != nil {
		if noRows(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrPaymentNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &payment, nil
}

package pgdb

import (
	"context"
	"errors"

	"github.com/AVTech-ve/ecommerce-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier объединяет pgx.Tx и pgxpool.Pool для выполнения запросов.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// q возвращает транзакцию из контекста, если она есть, иначе пул.
// Записи внутри единицы работы идут через транзакцию, одиночные — через пул.
func q(ctx context.Context, pool *pgxpool.Pool) querier {
	if tx, err := tr.TxFromCtx(ctx); err == nil {
		return tx
	}

	return pool
}

// postgresDuplicate определяет нарушение уникального ограничения (SQLSTATE 23505).
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}

	return false
}

// noRows определяет отсутствие строк в результате запроса.
func noRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

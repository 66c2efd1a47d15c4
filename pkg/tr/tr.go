// Package tr передаёт объект транзакции pgx через context.
package tr

import (
	"context"

	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

type txKey struct{}

// ContextWithTx кладёт объект транзакции в контекст. Значение хранится
// нетипизированным: менеджер транзакций отдаёт его как interface{},
// проверка типа выполняется в TxFromCtx.
func ContextWithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	txAny := ctx.Value(txKey{})
	tx, ok := txAny.(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

package tr

import (
	"context"
	"testing"

	"github.com/AVTech-ve/ecommerce-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTx реализует pgx.Tx для проверки прохождения транзакции через контекст.
type stubTx struct{}

func (stubTx) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }
func (stubTx) Commit(ctx context.Context) error          { return nil }
func (stubTx) Rollback(ctx context.Context) error        { return nil }
func (stubTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (stubTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (stubTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (stubTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (stubTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (stubTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (stubTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (stubTx) Conn() *pgx.Conn                                              { return nil }

func TestContextWithTx_RoundTrip(t *testing.T) {
	// Значение кладётся нетипизированным, как его отдаёт менеджер транзакций.
	var untyped any = stubTx{}
	ctx := ContextWithTx(context.Background(), untyped)

	tx, err := TxFromCtx(ctx)
	require.NoError(t, err)
	assert.Equal(t, stubTx{}, tx)
}

func TestTxFromCtx_MissingTransaction(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtx_NonTransactionValue(t *testing.T) {
	ctx := ContextWithTx(context.Background(), "not a transaction")

	_, err := TxFromCtx(ctx)
	assert.ErrorIs(t, err, e.ErrTransactionNotFound)
}

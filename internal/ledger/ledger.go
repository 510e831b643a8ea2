// Package ledger defines the external ledger service this core posts
// against, plus an in-memory reference implementation used by tests and
// the CLI host.
package ledger

import (
	"context"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

// TxType classifies a single-sided ledger mutation.
type TxType string

const (
	TxIncome  TxType = "income"
	TxExpense TxType = "expense"
)

// Service is the ledger contract the executor depends on. Amounts are
// integer rupiah. The transfer operation must apply its two rows and two
// balance updates atomically; errors propagate verbatim to the caller.
type Service interface {
	CreateTransaction(ctx context.Context, txType TxType, amount int64, pocketID, note string) (models.TransactionResult, error)
	Transfer(ctx context.Context, fromID, toID string, amount int64, note string) (models.TransferResult, error)
	DeleteTransaction(ctx context.Context, transactionID string) (models.DeleteResult, error)
}

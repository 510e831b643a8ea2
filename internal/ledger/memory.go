package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

// Sentinel errors of the in-memory ledger.
var (
	ErrPocketNotFound      = errors.New("pocket not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

type account struct {
	id      string
	name    string
	balance decimal.Decimal
}

// row is one posted transaction. Delta is the signed balance effect on the
// pocket, so deletion reverses it without caring about the row type.
type row struct {
	id       string
	pocketID string
	txType   TxType
	delta    decimal.Decimal
	note     string
}

// Memory is a mutex-guarded in-memory ledger. The transfer sequence (two
// rows plus two balance updates) runs under one lock, matching the
// multi-row atomicity the executor assumes of the real store.
type Memory struct {
	mu       sync.Mutex
	accounts map[string]*account
	order    []string
	rows     map[string]*row
	rowOrder []string
	seq      int
}

// NewMemory builds an empty ledger over the given pocket catalog, all
// balances zero.
func NewMemory(pockets []models.PocketOption) *Memory {
	m := &Memory{
		accounts: make(map[string]*account, len(pockets)),
		rows:     make(map[string]*row),
	}
	for _, p := range pockets {
		m.accounts[p.ID] = &account{id: p.ID, name: p.Name, balance: decimal.Zero}
		m.order = append(m.order, p.ID)
	}
	return m
}

// SetBalance seeds an opening balance. Test and host setup only.
func (m *Memory) SetBalance(pocketID string, balance decimal.Decimal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[pocketID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPocketNotFound, pocketID)
	}
	acc.balance = balance
	return nil
}

// CreateTransaction posts one income or expense row.
func (m *Memory) CreateTransaction(_ context.Context, txType TxType, amount int64, pocketID, note string) (models.TransactionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[pocketID]
	if !ok {
		return models.TransactionResult{}, fmt.Errorf("%w: %s", ErrPocketNotFound, pocketID)
	}
	if amount <= 0 {
		return models.TransactionResult{}, fmt.Errorf("amount must be positive, got %d", amount)
	}

	delta := decimal.NewFromInt(amount)
	if txType == TxExpense {
		delta = delta.Neg()
	}
	r := m.post(pocketID, txType, delta, note)
	return models.TransactionResult{
		TransactionID:      r.id,
		PocketBalanceAfter: acc.balance,
		TotalBalanceAfter:  m.totalLocked(),
	}, nil
}

// Transfer moves amount between two pockets atomically: an outgoing row on
// from, an incoming row on to.
func (m *Memory) Transfer(_ context.Context, fromID, toID string, amount int64, note string) (models.TransferResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	from, ok := m.accounts[fromID]
	if !ok {
		return models.TransferResult{}, fmt.Errorf("%w: %s", ErrPocketNotFound, fromID)
	}
	to, ok := m.accounts[toID]
	if !ok {
		return models.TransferResult{}, fmt.Errorf("%w: %s", ErrPocketNotFound, toID)
	}
	if fromID == toID {
		return models.TransferResult{}, fmt.Errorf("transfer endpoints must differ: %s", fromID)
	}
	if amount <= 0 {
		return models.TransferResult{}, fmt.Errorf("amount must be positive, got %d", amount)
	}

	delta := decimal.NewFromInt(amount)
	out := m.post(fromID, TxExpense, delta.Neg(), note)
	in := m.post(toID, TxIncome, delta, note)
	return models.TransferResult{
		TransactionIDs:   [2]string{out.id, in.id},
		FromBalanceAfter: from.balance,
		ToBalanceAfter:   to.balance,
	}, nil
}

// DeleteTransaction removes a row and reverses its balance effect.
func (m *Memory) DeleteTransaction(_ context.Context, transactionID string) (models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.rows[transactionID]
	if !ok {
		return models.DeleteResult{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, transactionID)
	}
	acc := m.accounts[r.pocketID]
	acc.balance = acc.balance.Sub(r.delta)
	delete(m.rows, transactionID)
	for i, id := range m.rowOrder {
		if id == transactionID {
			m.rowOrder = append(m.rowOrder[:i], m.rowOrder[i+1:]...)
			break
		}
	}
	return models.DeleteResult{
		PocketBalanceAfter: acc.balance,
		TotalBalanceAfter:  m.totalLocked(),
	}, nil
}

// post appends a row and applies its delta. Caller holds the lock.
func (m *Memory) post(pocketID string, txType TxType, delta decimal.Decimal, note string) *row {
	m.seq++
	r := &row{
		id:       fmt.Sprintf("tx-%06d", m.seq),
		pocketID: pocketID,
		txType:   txType,
		delta:    delta,
		note:     note,
	}
	m.rows[r.id] = r
	m.rowOrder = append(m.rowOrder, r.id)
	m.accounts[pocketID].balance = m.accounts[pocketID].balance.Add(delta)
	return r
}

// Balance returns a pocket's current balance.
func (m *Memory) Balance(pocketID string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	acc, ok := m.accounts[pocketID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrPocketNotFound, pocketID)
	}
	return acc.balance, nil
}

// TotalBalance sums every pocket.
func (m *Memory) TotalBalance() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.totalLocked()
}

// TransactionCount reports the number of live rows.
func (m *Memory) TransactionCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

func (m *Memory) totalLocked() decimal.Decimal {
	total := decimal.Zero
	for _, id := range m.order {
		total = total.Add(m.accounts[id].balance)
	}
	return total
}

package container

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/boterror"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/config"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/ledger"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/logging"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Undo.Window = 2 * time.Minute
	return cfg
}

func newTestContainer(t *testing.T, deps Deps) *Container {
	t.Helper()
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}
	c, err := New(testConfig(), deps)
	require.NoError(t, err)
	return c
}

func TestHandleTurn_FullIncomeConversation(t *testing.T) {
	led := ledger.NewMemory(defaultPockets)
	c := newTestContainer(t, Deps{Ledger: led})
	ctx := context.Background()

	res, err := c.HandleTurn(ctx, "sess-1", "aku dapat gaji 3jt400 hari ini")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "pocket mana")
	assert.False(t, res.Executed)

	res, err = c.HandleTurn(ctx, "sess-1", "Tabungan")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "catatan")

	res, err = c.HandleTurn(ctx, "sess-1", "tidak")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "Rp3.400.000")

	res, err = c.HandleTurn(ctx, "sess-1", "ya")
	require.NoError(t, err)
	require.True(t, res.Executed)
	assert.NotEmpty(t, res.UndoToken)
	assert.Contains(t, res.Message, "undo "+res.UndoToken)

	bal, err := led.Balance("poc-tabungan")
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.NewFromInt(3_400_000)))
}

func TestHandleTurn_ThenUndo(t *testing.T) {
	led := ledger.NewMemory(defaultPockets)
	require.NoError(t, led.SetBalance("poc-tabungan", decimal.NewFromInt(500_000)))
	c := newTestContainer(t, Deps{Ledger: led})
	ctx := context.Background()

	for _, msg := range []string{"bayar makan 50rb dari tabungan", "tidak"} {
		_, err := c.HandleTurn(ctx, "sess-1", msg)
		require.NoError(t, err)
	}
	res, err := c.HandleTurn(ctx, "sess-1", "ya")
	require.NoError(t, err)
	require.True(t, res.Executed)

	require.NoError(t, c.Undo(ctx, res.UndoToken))

	bal, err := led.Balance("poc-tabungan")
	require.NoError(t, err)
	assert.True(t, bal.Equal(decimal.NewFromInt(500_000)))

	err = c.Undo(ctx, res.UndoToken)
	var notFound *boterror.UndoNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestHandleTurn_SessionsAreIsolated(t *testing.T) {
	c := newTestContainer(t, Deps{})
	ctx := context.Background()

	_, err := c.HandleTurn(ctx, "sess-a", "aku dapat gaji 1jt")
	require.NoError(t, err)

	// A different session starts from scratch and gets the clarification.
	res, err := c.HandleTurn(ctx, "sess-b", "Tabungan")
	require.NoError(t, err)
	assert.Contains(t, res.Message, "belum paham")
}

// brokenLedger fails every mutation, for rollback tests.
type brokenLedger struct{}

func (brokenLedger) CreateTransaction(context.Context, ledger.TxType, int64, string, string) (models.TransactionResult, error) {
	return models.TransactionResult{}, errors.New("ledger down")
}

func (brokenLedger) Transfer(context.Context, string, string, int64, string) (models.TransferResult, error) {
	return models.TransferResult{}, errors.New("ledger down")
}

func (brokenLedger) DeleteTransaction(context.Context, string) (models.DeleteResult, error) {
	return models.DeleteResult{}, errors.New("ledger down")
}

func TestHandleTurn_ExecutionFailureRollsBackToConfirm(t *testing.T) {
	c := newTestContainer(t, Deps{Ledger: brokenLedger{}})
	ctx := context.Background()

	for _, msg := range []string{"aku dapat gaji 1jt", "Tabungan", "tidak"} {
		_, err := c.HandleTurn(ctx, "sess-1", msg)
		require.NoError(t, err)
	}

	res, err := c.HandleTurn(ctx, "sess-1", "ya")
	require.NoError(t, err)
	assert.False(t, res.Executed)
	assert.Contains(t, res.Message, "gagal menyimpan")

	// The conversation is back at the confirmation question: an affirmative
	// retries execution rather than being treated as a new message.
	res, err = c.HandleTurn(ctx, "sess-1", "ya")
	require.NoError(t, err)
	assert.False(t, res.Executed)
	assert.Contains(t, res.Message, "gagal menyimpan")
}

func TestFormatBalance(t *testing.T) {
	led := ledger.NewMemory(defaultPockets)
	require.NoError(t, led.SetBalance("poc-tabungan", decimal.NewFromInt(1_250_000)))
	c := newTestContainer(t, Deps{Ledger: led})

	got, ok := c.FormatBalance("poc-tabungan")
	require.True(t, ok)
	assert.Equal(t, "Rp1.250.000", got)

	_, ok = c.FormatBalance("poc-missing")
	assert.False(t, ok)
}

func TestFormatBalance_NonMemoryLedger(t *testing.T) {
	c := newTestContainer(t, Deps{Ledger: brokenLedger{}})

	_, ok := c.FormatBalance("poc-tabungan")
	assert.False(t, ok)
}

package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

func testEntry(token string) models.JournalEntry {
	return models.JournalEntry{
		ID:   "jr-1",
		Kind: models.PlanIncome,
		Plan: models.ExecutionPlan{
			Kind:     models.PlanIncome,
			Amount:   250_000,
			PocketID: "poc-tabungan",
		},
		AffectedTransactionIDs: []string{"tx-000001"},
		UndoToken:              token,
		CreatedAt:              time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestAppendAndFind(t *testing.T) {
	store := NewMemory()
	entry := testEntry("tok-1")

	require.NoError(t, store.Append(entry))

	got, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entry, *got)
	assert.Equal(t, 1, store.Len())
}

func TestFind_UnknownTokenReturnsNilNil(t *testing.T) {
	store := NewMemory()

	got, err := store.FindByToken("tok-missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestAppend_DuplicateTokenRejected(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Append(testEntry("tok-1")))

	err := store.Append(testEntry("tok-1"))
	assert.Error(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestDeleteByToken(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Append(testEntry("tok-1")))

	require.NoError(t, store.DeleteByToken("tok-1"))
	got, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op.
	assert.NoError(t, store.DeleteByToken("tok-1"))
}

func TestFind_ReturnsCopy(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Append(testEntry("tok-1")))

	got, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	got.Plan.Amount = 1

	again, err := store.FindByToken("tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(250_000), again.Plan.Amount)
}

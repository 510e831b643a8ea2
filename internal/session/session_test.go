package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

func TestGet_UnknownSessionReturnsInitDefaults(t *testing.T) {
	store := NewMemory()

	st, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, models.NewDialogState(), st)
}

func TestPutGet_RoundTrip(t *testing.T) {
	store := NewMemory()
	st := models.NewDialogState()
	st.Intent = models.IntentTransfer
	st.Amount = 200_000
	st.PocketFrom = &models.PocketOption{ID: "poc-tabungan", Name: "Tabungan"}
	st.Step = models.StepAskPocketTo

	require.NoError(t, store.Put("sess-1", st))

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestGet_StoredStateIsDetachedFromCaller(t *testing.T) {
	store := NewMemory()
	st := models.NewDialogState()
	st.Pocket = &models.PocketOption{ID: "poc-tabungan", Name: "Tabungan"}
	require.NoError(t, store.Put("sess-1", st))

	// Mutating the caller's copy after Put must not leak into the store.
	st.Pocket.Name = "changed"

	got, err := store.Get("sess-1")
	require.NoError(t, err)
	require.NotNil(t, got.Pocket)
	assert.Equal(t, "Tabungan", got.Pocket.Name)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewMemory()
	a := models.NewDialogState()
	a.Intent = models.IntentIncome
	require.NoError(t, store.Put("sess-a", a))

	got, err := store.Get("sess-b")
	require.NoError(t, err)
	assert.Equal(t, models.NewDialogState(), got)
}

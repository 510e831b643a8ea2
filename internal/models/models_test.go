package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutionPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		plan    ExecutionPlan
		wantErr bool
	}{
		{"valid income", ExecutionPlan{Kind: PlanIncome, Amount: 1000, PocketID: "poc-1"}, false},
		{"valid expense", ExecutionPlan{Kind: PlanExpense, Amount: 1000, PocketID: "poc-1"}, false},
		{"valid transfer", ExecutionPlan{Kind: PlanTransfer, Amount: 1000, FromID: "poc-1", ToID: "poc-2"}, false},
		{"zero amount", ExecutionPlan{Kind: PlanIncome, Amount: 0, PocketID: "poc-1"}, true},
		{"income without pocket", ExecutionPlan{Kind: PlanIncome, Amount: 1000}, true},
		{"transfer missing endpoint", ExecutionPlan{Kind: PlanTransfer, Amount: 1000, FromID: "poc-1"}, true},
		{"transfer same endpoints", ExecutionPlan{Kind: PlanTransfer, Amount: 1000, FromID: "poc-1", ToID: "poc-1"}, true},
		{"unknown kind", ExecutionPlan{Kind: "split", Amount: 1000}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDialogState_CloneIsDeep(t *testing.T) {
	st := NewDialogState()
	st.Pocket = &PocketOption{ID: "poc-1", Name: "Tabungan"}

	clone := st.Clone()
	clone.Pocket.Name = "changed"

	assert.Equal(t, "Tabungan", st.Pocket.Name)
}

func TestDialogState_NormalizeFillsStep(t *testing.T) {
	var st DialogState

	assert.Equal(t, StepInit, st.Normalize().Step)
}

func TestDialogStep_IsAskStep(t *testing.T) {
	assert.True(t, StepAskAmount.IsAskStep())
	assert.True(t, StepAskNote.IsAskStep())
	assert.False(t, StepInit.IsAskStep())
	assert.False(t, StepConfirm.IsAskStep())
	assert.False(t, StepExecuted.IsAskStep())
}

func TestPocketAlias_HasAlias(t *testing.T) {
	p := PocketAlias{
		ID:      "poc-1",
		Name:    "Kebutuhan Pokok",
		Aliases: []string{"kebutuhan pokok", "kebutuhan", "keb"},
	}

	assert.True(t, p.HasAlias("keb"))
	assert.False(t, p.HasAlias("tabungan"))
}

func TestIntent_IsKnown(t *testing.T) {
	require.True(t, IntentIncome.IsKnown())
	require.True(t, IntentExpense.IsKnown())
	require.True(t, IntentTransfer.IsKnown())
	assert.False(t, IntentUnknown.IsKnown())
	assert.False(t, Intent("greeting").IsKnown())
}

package models

import "fmt"

// PlanKind tags an ExecutionPlan (and the journal entry written for it).
type PlanKind string

const (
	PlanIncome   PlanKind = "income"
	PlanExpense  PlanKind = "expense"
	PlanTransfer PlanKind = "transfer"
)

// ExecutionPlan is a fully-resolved, ready-to-run description of a
// financial mutation. It is built only once every required slot for the
// intent is present, consumed immediately by the executor, and never
// persisted as-is (the journal keeps its own copy for reversal).
type ExecutionPlan struct {
	Kind     PlanKind `json:"kind"`
	Amount   int64    `json:"amount"`
	PocketID string   `json:"pocket_id,omitempty"` // income/expense
	FromID   string   `json:"from_id,omitempty"`   // transfer
	ToID     string   `json:"to_id,omitempty"`     // transfer
	Note     string   `json:"note,omitempty"`
}

// Validate checks the per-kind slot requirements. A failure here is an
// internal consistency fault: the dialog machine only builds plans from
// fully-filled states.
func (p ExecutionPlan) Validate() error {
	if p.Amount <= 0 {
		return fmt.Errorf("plan %s: amount must be positive, got %d", p.Kind, p.Amount)
	}
	switch p.Kind {
	case PlanIncome, PlanExpense:
		if p.PocketID == "" {
			return fmt.Errorf("plan %s: pocket id is empty", p.Kind)
		}
	case PlanTransfer:
		if p.FromID == "" || p.ToID == "" {
			return fmt.Errorf("plan transfer: both endpoints are required")
		}
		if p.FromID == p.ToID {
			return fmt.Errorf("plan transfer: endpoints must differ, got %s", p.FromID)
		}
	default:
		return fmt.Errorf("plan: unknown kind %q", p.Kind)
	}
	return nil
}

package models

import "time"

// JournalEntry records one successful execution, keyed by a single-use
// undo token. Exactly one entry exists per token; the entry is deleted on
// successful undo, so its absence after lookup means "already undone or
// invalid token".
type JournalEntry struct {
	ID                     string        `json:"id"`
	Kind                   PlanKind      `json:"kind"`
	Plan                   ExecutionPlan `json:"plan"`
	AffectedTransactionIDs []string      `json:"affected_transaction_ids"`
	UndoToken              string        `json:"undo_token"`
	CreatedAt              time.Time     `json:"created_at"`
}

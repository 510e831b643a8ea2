// Package boterror defines the typed errors of the conversation core.
// Parse ambiguity and slot validation never surface as errors (the dialog
// machine re-prompts instead); what remains is execution failure, undo
// failure and the internal incomplete-plan fault.
package boterror

import "fmt"

// UndoNotFoundError means the undo token does not exist in the journal:
// it was already used or never issued. Terminal, not retryable.
type UndoNotFoundError struct {
	Token string
}

func (e *UndoNotFoundError) Error() string {
	return fmt.Sprintf("undo token %q not found: already undone or invalid", e.Token)
}

// LedgerError wraps a failure of the underlying ledger service. During
// undo it is retryable: the journal entry stays intact.
type LedgerError struct {
	Op  string
	Err error
}

func (e *LedgerError) Error() string {
	return fmt.Sprintf("ledger %s failed: %v", e.Op, e.Err)
}

func (e *LedgerError) Unwrap() error {
	return e.Err
}

// IncompletePlanError reports an execution plan requested with missing
// slots. The dialog machine enforces slot completeness before Confirm, so
// seeing this is an internal consistency fault.
type IncompletePlanError struct {
	Reason string
}

func (e *IncompletePlanError) Error() string {
	return fmt.Sprintf("execution plan incomplete: %s", e.Reason)
}

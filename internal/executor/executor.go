// Package executor performs execution plans against the ledger and keeps
// the undo journal that allows exactly-once compensating reversal.
package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/boterror"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/journal"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/ledger"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/logging"
	"github.com/iamgading/dompet-digital-g-finance-sub000/internal/models"
)

// DefaultUndoWindow is the advisory undo expiry returned to callers.
const DefaultUndoWindow = 2 * time.Minute

// Result carries the ledger's answer plus the undo affordance. The expiry
// is presentation metadata only; Undo itself never checks it.
type Result struct {
	UndoToken              string
	UndoExpiresAt          time.Time
	AffectedTransactionIDs []string

	// Balance details reported by the ledger for caller display. For
	// transfers, Transfer is set; otherwise Transaction.
	Transaction *models.TransactionResult
	Transfer    *models.TransferResult
}

// Executor dispatches plans to the ledger and journals each success under
// a fresh single-use token.
type Executor struct {
	ledger     ledger.Service
	journal    journal.Store
	log        logging.Logger
	undoWindow time.Duration

	// injectable for tests
	now      func() time.Time
	newToken func() string
}

// Option configures an Executor.
type Option func(*Executor)

// WithUndoWindow overrides the advisory undo window.
func WithUndoWindow(d time.Duration) Option {
	return func(e *Executor) { e.undoWindow = d }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) { e.now = now }
}

// WithTokenSource overrides undo token minting.
func WithTokenSource(newToken func() string) Option {
	return func(e *Executor) { e.newToken = newToken }
}

// New wires an executor. A nil logger is replaced by a no-op one.
func New(ledgerSvc ledger.Service, journalStore journal.Store, log logging.Logger, opts ...Option) *Executor {
	if log == nil {
		log = logging.Nop()
	}
	e := &Executor{
		ledger:     ledgerSvc,
		journal:    journalStore,
		log:        log,
		undoWindow: DefaultUndoWindow,
		now:        time.Now,
		newToken:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute performs the plan against the ledger. On ledger failure the
// error propagates verbatim and no journal row is written. On success a
// journal entry is appended under a freshly minted token.
func (e *Executor) Execute(ctx context.Context, plan models.ExecutionPlan) (Result, error) {
	if err := plan.Validate(); err != nil {
		return Result{}, &boterror.IncompletePlanError{Reason: err.Error()}
	}

	res := Result{}
	switch plan.Kind {
	case models.PlanIncome:
		tx, err := e.ledger.CreateTransaction(ctx, ledger.TxIncome, plan.Amount, plan.PocketID, plan.Note)
		if err != nil {
			return Result{}, err
		}
		res.Transaction = &tx
		res.AffectedTransactionIDs = []string{tx.TransactionID}
	case models.PlanExpense:
		tx, err := e.ledger.CreateTransaction(ctx, ledger.TxExpense, plan.Amount, plan.PocketID, plan.Note)
		if err != nil {
			return Result{}, err
		}
		res.Transaction = &tx
		res.AffectedTransactionIDs = []string{tx.TransactionID}
	case models.PlanTransfer:
		tr, err := e.ledger.Transfer(ctx, plan.FromID, plan.ToID, plan.Amount, plan.Note)
		if err != nil {
			return Result{}, err
		}
		res.Transfer = &tr
		res.AffectedTransactionIDs = tr.TransactionIDs[:]
	}

	now := e.now()
	res.UndoToken = e.newToken()
	res.UndoExpiresAt = now.Add(e.undoWindow)

	entry := models.JournalEntry{
		ID:                     e.newToken(),
		Kind:                   plan.Kind,
		Plan:                   plan,
		AffectedTransactionIDs: res.AffectedTransactionIDs,
		UndoToken:              res.UndoToken,
		CreatedAt:              now,
	}
	if err := e.journal.Append(entry); err != nil {
		// The ledger mutation stands; without a journal row the action is
		// simply not undoable.
		e.log.WithError(err).Error("Failed to append journal entry after execution")
		return res, fmt.Errorf("journal append: %w", err)
	}

	e.log.WithFields(
		logging.Field{Key: logging.FieldPlanKind, Value: string(plan.Kind)},
		logging.Field{Key: logging.FieldAmount, Value: plan.Amount},
		logging.Field{Key: logging.FieldUndoToken, Value: res.UndoToken},
	).Info("Plan executed and journaled")
	return res, nil
}

// Undo reverses the execution recorded under token. An unknown token is
// terminal. For income and expense the affected transaction is deleted;
// for transfers a compensating opposite transfer is posted and the
// original rows stay in place. On ledger failure the journal entry is kept
// so the token remains valid for retry; on success it is deleted, which is
// what enforces single use.
func (e *Executor) Undo(ctx context.Context, token string) error {
	entry, err := e.journal.FindByToken(token)
	if err != nil {
		return fmt.Errorf("journal lookup: %w", err)
	}
	if entry == nil {
		return &boterror.UndoNotFoundError{Token: token}
	}

	switch entry.Kind {
	case models.PlanIncome, models.PlanExpense:
		if len(entry.AffectedTransactionIDs) == 0 {
			return &boterror.IncompletePlanError{Reason: "journal entry has no transaction id"}
		}
		if _, err := e.ledger.DeleteTransaction(ctx, entry.AffectedTransactionIDs[0]); err != nil {
			return &boterror.LedgerError{Op: "delete", Err: err}
		}
	case models.PlanTransfer:
		note := "Undo: transfer"
		if entry.Plan.Note != "" {
			note = "Undo: " + entry.Plan.Note
		}
		if _, err := e.ledger.Transfer(ctx, entry.Plan.ToID, entry.Plan.FromID, entry.Plan.Amount, note); err != nil {
			return &boterror.LedgerError{Op: "transfer", Err: err}
		}
	default:
		return &boterror.IncompletePlanError{Reason: fmt.Sprintf("journal entry has unknown kind %q", entry.Kind)}
	}

	if err := e.journal.DeleteByToken(token); err != nil {
		return fmt.Errorf("journal delete: %w", err)
	}
	e.log.WithFields(
		logging.Field{Key: logging.FieldPlanKind, Value: string(entry.Kind)},
		logging.Field{Key: logging.FieldUndoToken, Value: token},
	).Info("Execution undone")
	return nil
}
